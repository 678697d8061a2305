package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"turismo_agenda/internal/adapter/http/handlers/mocks"
	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/domain/scheduling"
	"turismo_agenda/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBudgetRouter(uc usecase.IBudgetUseCase) *gin.Engine {
	h := NewBudgetHandler(uc)
	r := gin.New()
	r.POST("/v1/budgets/check", h.CheckBudget)
	r.POST("/v1/budgets", h.CreateBudget)
	r.GET("/v1/budgets", h.ListBudgets)
	r.GET("/v1/budgets/:id", h.GetBudget)
	r.PUT("/v1/budgets/:id", h.UpdateBudget)
	r.DELETE("/v1/budgets/:id", h.DeleteBudget)
	r.PATCH("/v1/budgets/:id/approve", h.ApproveBudget)
	r.PATCH("/v1/budgets/:id/reject", h.RejectBudget)
	r.PATCH("/v1/budgets/:id/cancel", h.CancelBudget)
	return r
}

const budgetBody = `{"client_id":" c1 ","items":[{"tour_name":"City Tour","date":"2026-03-11","price":80}],"acknowledge_warnings":true}`

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl))

		w := doJSON(r, http.MethodPost, "/v1/budgets", `{"client_id":"c1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.BudgetCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.BudgetCommand) (usecase.BudgetResult, error) {
				if cmd.ClientID != "c1" || !cmd.AcknowledgeWarnings || len(cmd.Items) != 1 {
					t.Fatalf("unexpected command %+v", cmd)
				}
				return usecase.BudgetResult{Budget: entities.Budget{ID: "bud-1", Number: "Orc.0001", Status: entities.BudgetStatusPendente}}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/budgets", budgetBody)
		if w.Code != http.StatusCreated || !bytes.Contains(w.Body.Bytes(), []byte(`"Orc.0001"`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("overlap warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.BudgetResult{}, &usecase.ConflictWarningError{
			Warnings: []scheduling.Warning{{Kind: scheduling.WarningBudgetDayOverlap}},
		})

		w := doJSON(r, http.MethodPost, "/v1/budgets", budgetBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("no free number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.BudgetResult{}, usecase.ErrBudgetNumberExhaust)

		w := doJSON(r, http.MethodPost, "/v1/budgets", budgetBody)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_StatusChanges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve returns promoted bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().Approve(gomock.Any(), "bud-1").Return(usecase.BudgetResult{
			Budget:   entities.Budget{ID: "bud-1", Status: entities.BudgetStatusAprovado, PromotedOrderNumber: "Orc.0001"},
			Bookings: []entities.Booking{{ID: "r1"}, {ID: "r2"}},
		}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/budgets/bud-1/approve", "")
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"r2"`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("approve incomplete promotion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().Approve(gomock.Any(), "bud-1").Return(usecase.BudgetResult{}, &usecase.PartialOrderWriteError{
			OrderNumber: "Orc.0001", Stage: "promote", Total: 2, Err: usecase.ErrPromotionIncomplete,
		})

		w := doJSON(r, http.MethodPatch, "/v1/budgets/bud-1/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		path   string
		expect func(uc *mocks.MockIBudgetUseCase)
		status int
	}{
		{
			name: "reject",
			path: "/v1/budgets/bud-1/reject",
			expect: func(uc *mocks.MockIBudgetUseCase) {
				uc.EXPECT().Reject(gomock.Any(), "bud-1").Return(entities.Budget{ID: "bud-1", Status: entities.BudgetStatusRejeitado}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "reject not pending",
			path: "/v1/budgets/bud-1/reject",
			expect: func(uc *mocks.MockIBudgetUseCase) {
				uc.EXPECT().Reject(gomock.Any(), "bud-1").Return(entities.Budget{}, fmt.Errorf("%w: APROVADO -> REJEITADO", usecase.ErrBudgetTransition))
			},
			status: http.StatusConflict,
		},
		{
			name: "approve past dated item",
			path: "/v1/budgets/bud-1/approve",
			expect: func(uc *mocks.MockIBudgetUseCase) {
				uc.EXPECT().Approve(gomock.Any(), "bud-1").Return(usecase.BudgetResult{},
					fmt.Errorf("item 0: %w", &scheduling.RetroactiveDateError{TourName: "City Tour", Date: "2026-03-11", Today: "2026-03-15"}))
			},
			status: http.StatusUnprocessableEntity,
		},
		{
			name: "approve over another order",
			path: "/v1/budgets/bud-1/approve",
			expect: func(uc *mocks.MockIBudgetUseCase) {
				uc.EXPECT().Approve(gomock.Any(), "bud-1").Return(usecase.BudgetResult{}, fmt.Errorf("%w: Orc.0002", usecase.ErrOrderNumberCollision))
			},
			status: http.StatusConflict,
		},
		{
			name: "cancel",
			path: "/v1/budgets/bud-1/cancel",
			expect: func(uc *mocks.MockIBudgetUseCase) {
				uc.EXPECT().Cancel(gomock.Any(), "bud-1").Return(entities.Budget{ID: "bud-1", Status: entities.BudgetStatusCancelado}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "cancel missing",
			path: "/v1/budgets/bud-1/cancel",
			expect: func(uc *mocks.MockIBudgetUseCase) {
				uc.EXPECT().Cancel(gomock.Any(), "bud-1").Return(entities.Budget{}, usecase.ErrBudgetNotFound)
			},
			status: http.StatusNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBudgetUseCase(ctrl)
			r := newBudgetRouter(uc)
			tc.expect(uc)

			w := doJSON(r, http.MethodPatch, tc.path, "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestBudgetHandler_Queries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list requires client id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl))

		w := doJSON(r, http.MethodGet, "/v1/budgets", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().ListByClient(gomock.Any(), "c1").Return([]entities.Budget{{ID: "bud-1"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/budgets?client_id=c1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().CheckItems(gomock.Any(), "c1", "bud-1", gomock.Len(1)).Return([]scheduling.Warning{{Kind: scheduling.WarningBudgetDayOverlap}}, nil)

		w := doJSON(r, http.MethodPost, "/v1/budgets/check", `{"client_id":"c1","budget_id":"bud-1","items":[{"tour_name":"City Tour","date":"2026-03-11"}]}`)
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"allowed":false`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("update not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().Update(gomock.Any(), "bud-1", gomock.Any()).Return(usecase.BudgetResult{}, usecase.ErrBudgetNotPending)

		w := doJSON(r, http.MethodPut, "/v1/budgets/bud-1", budgetBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete store down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().Delete(gomock.Any(), "bud-1").Return(fmt.Errorf("%w: %w", usecase.ErrPersistenceUnavailable, errors.New("x")))

		w := doJSON(r, http.MethodDelete, "/v1/budgets/bud-1", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "bud-1").Return(entities.Budget{ID: "bud-1"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/budgets/bud-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
