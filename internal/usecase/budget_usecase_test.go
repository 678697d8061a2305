package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"turismo_agenda/internal/adapter/persistence/memory"
	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/domain/scheduling"
	"turismo_agenda/internal/usecase/interfaces"
	mock_interfaces "turismo_agenda/internal/usecase/interfaces/mocks"
	"turismo_agenda/pkg/logger"
	"turismo_agenda/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type budgetFixture struct {
	uc       *BudgetUseCase
	budgets  *memory.BudgetRepository
	bookings *memory.BookingRepository
}

func newBudgetFixture() budgetFixture {
	clock := func() time.Time { return fixedNow }
	bookings := memory.NewBookingRepository()
	budgets := memory.NewBudgetRepository()
	counters := memory.NewCounterRepository()
	clients := memory.NewClientRepository(entities.Client{ID: "c1", Name: "Ana"}, entities.Client{ID: "c2", Name: "Bruno"})

	orders := NewOrderUseCase(bookings, counters, nil, clients, nil, nil, logger.NewNop(), nil).WithClock(clock)
	uc := NewBudgetUseCase(budgets, counters, clients, orders, nil, logger.NewNop(), nil).WithClock(clock)
	return budgetFixture{uc: uc, budgets: budgets, bookings: bookings}
}

func budgetItem(tour, date, price string) entities.BudgetItem {
	return entities.BudgetItem{TourName: tour, Date: date, Pax: entities.Pax{Adult: 1}, Price: decimal.RequireFromString(price)}
}

func TestBudgetUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing client", func(t *testing.T) {
		f := newBudgetFixture()
		_, err := f.uc.Create(ctx, BudgetCommand{Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")}})
		if !errors.Is(err, ErrMissingClient) {
			t.Fatalf("expected ErrMissingClient, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		f := newBudgetFixture()
		_, err := f.uc.Create(ctx, BudgetCommand{ClientID: "ghost", Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")}})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		f := newBudgetFixture()
		_, err := f.uc.Create(ctx, BudgetCommand{ClientID: "c1"})
		if !errors.Is(err, ErrEmptyBudget) {
			t.Fatalf("expected ErrEmptyBudget, got %v", err)
		}
	})

	t.Run("retroactive item", func(t *testing.T) {
		f := newBudgetFixture()
		_, err := f.uc.Create(ctx, BudgetCommand{ClientID: "c1", Items: []entities.BudgetItem{budgetItem("City Tour", past, "10")}})
		var retro *scheduling.RetroactiveDateError
		if !errors.As(err, &retro) {
			t.Fatalf("expected RetroactiveDateError, got %v", err)
		}
	})

	t.Run("numbers, total and client name", func(t *testing.T) {
		f := newBudgetFixture()
		res, err := f.uc.Create(ctx, BudgetCommand{
			ClientID: "c1",
			Items: []entities.BudgetItem{
				budgetItem("City Tour", tomorrow, "100.10"),
				budgetItem("Rio By Night", tomorrow, "49.90"),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := res.Budget
		if b.Number != "Orc.0001" || b.ClientName != "Ana" || b.Status != entities.BudgetStatusPendente {
			t.Fatalf("unexpected budget %+v", b)
		}
		if !b.Total.Equal(decimal.RequireFromString("150")) {
			t.Fatalf("expected total 150, got %s", b.Total)
		}
		for _, it := range b.Items {
			if it.ID == "" {
				t.Fatalf("expected item ids")
			}
		}

		second, err := f.uc.Create(ctx, BudgetCommand{ClientID: "c2", Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")}})
		if err != nil || second.Budget.Number != "Orc.0002" {
			t.Fatalf("expected Orc.0002, got %+v (%v)", second.Budget, err)
		}
	})

	t.Run("two day tours on one date warn", func(t *testing.T) {
		f := newBudgetFixture()
		cmd := BudgetCommand{
			ClientID: "c1",
			Items: []entities.BudgetItem{
				budgetItem("City Tour", tomorrow, "10"),
				budgetItem("Beach Day", tomorrow, "10"),
			},
		}
		_, err := f.uc.Create(ctx, cmd)
		kinds := warningKinds(err)
		if len(kinds) != 1 || kinds[0] != scheduling.WarningBudgetDayOverlap {
			t.Fatalf("expected budget_day_overlap, got %v", err)
		}

		cmd.AcknowledgeWarnings = true
		res, err := f.uc.Create(ctx, cmd)
		if err != nil || len(res.Warnings) != 1 {
			t.Fatalf("expected acknowledged save, got %+v (%v)", res, err)
		}
	})

	t.Run("overlap across the client's other budgets only", func(t *testing.T) {
		f := newBudgetFixture()
		if _, err := f.uc.Create(ctx, BudgetCommand{ClientID: "c1", AcknowledgeWarnings: true, Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := f.uc.Create(ctx, BudgetCommand{ClientID: "c2", Items: []entities.BudgetItem{budgetItem("Beach Day", tomorrow, "10")}}); err != nil {
			t.Fatalf("another client must not conflict: %v", err)
		}

		_, err := f.uc.Create(ctx, BudgetCommand{ClientID: "c1", Items: []entities.BudgetItem{budgetItem("Beach Day", tomorrow, "10")}})
		var w *ConflictWarningError
		if !errors.As(err, &w) || w.Warnings[0].BudgetID == "" {
			t.Fatalf("expected cross-budget warning, got %v", err)
		}
	})
}

func TestBudgetUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()

	newPending := func(t *testing.T, f budgetFixture) entities.Budget {
		t.Helper()
		res, err := f.uc.Create(ctx, BudgetCommand{
			ClientID: "c1",
			Items: []entities.BudgetItem{
				budgetItem("City Tour", tomorrow, "100"),
				budgetItem("Rio By Night", tomorrow, "40"),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return res.Budget
	}

	t.Run("approve promotes once", func(t *testing.T) {
		f := newBudgetFixture()
		b := newPending(t, f)

		res, err := f.uc.Approve(ctx, b.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Budget.Status != entities.BudgetStatusAprovado || res.Budget.PromotedOrderNumber != entities.OrderNumber(b.Number) {
			t.Fatalf("unexpected budget %+v", res.Budget)
		}
		if len(res.Bookings) != 2 {
			t.Fatalf("expected 2 promoted rows, got %d", len(res.Bookings))
		}

		again, err := f.uc.Approve(ctx, b.ID)
		if err != nil || again.Budget.Status != entities.BudgetStatusAprovado {
			t.Fatalf("expected idempotent approve, got %+v (%v)", again, err)
		}
		if n, _ := f.bookings.Count(ctx); n != 2 {
			t.Fatalf("expected 2 rows, got %d", n)
		}
	})

	t.Run("update only while pending", func(t *testing.T) {
		f := newBudgetFixture()
		b := newPending(t, f)

		res, err := f.uc.Update(ctx, b.ID, BudgetCommand{
			ClientID: "c2",
			Items:    []entities.BudgetItem{budgetItem("Museum", tomorrow, "25")},
			Note:     "changed",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Budget.ClientID != "c1" || len(res.Budget.Items) != 1 || !res.Budget.Total.Equal(decimal.RequireFromString("25")) {
			t.Fatalf("unexpected budget %+v", res.Budget)
		}

		if _, err := f.uc.Reject(ctx, b.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = f.uc.Update(ctx, b.ID, BudgetCommand{Items: []entities.BudgetItem{budgetItem("Museum", tomorrow, "25")}})
		if !errors.Is(err, ErrBudgetNotPending) {
			t.Fatalf("expected ErrBudgetNotPending, got %v", err)
		}
	})

	t.Run("update does not conflict with itself", func(t *testing.T) {
		f := newBudgetFixture()
		b := newPending(t, f)
		_, err := f.uc.Update(ctx, b.ID, BudgetCommand{Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "90")}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected and cancelled budgets cannot be approved", func(t *testing.T) {
		f := newBudgetFixture()
		b := newPending(t, f)
		if _, err := f.uc.Cancel(ctx, b.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.Approve(ctx, b.ID); !errors.Is(err, ErrBudgetTransition) {
			t.Fatalf("expected ErrBudgetTransition, got %v", err)
		}
		if _, err := f.uc.Reject(ctx, b.ID); !errors.Is(err, ErrBudgetTransition) {
			t.Fatalf("expected ErrBudgetTransition, got %v", err)
		}
		got, err := f.uc.Cancel(ctx, b.ID)
		if err != nil || got.Status != entities.BudgetStatusCancelado {
			t.Fatalf("expected idempotent cancel, got %+v (%v)", got, err)
		}
	})

	t.Run("cancelled budgets leave the overlap check", func(t *testing.T) {
		f := newBudgetFixture()
		b := newPending(t, f)
		if _, err := f.uc.Cancel(ctx, b.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		warnings, err := f.uc.CheckItems(ctx, "c1", "", []entities.BudgetItem{budgetItem("Beach Day", tomorrow, "10")})
		if err != nil || len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %+v (%v)", warnings, err)
		}
	})

	t.Run("get, list and delete", func(t *testing.T) {
		f := newBudgetFixture()
		b := newPending(t, f)

		list, err := f.uc.ListByClient(ctx, "c1")
		if err != nil || len(list) != 1 {
			t.Fatalf("expected one budget, got %d (%v)", len(list), err)
		}
		if err := f.uc.Delete(ctx, b.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.GetByID(ctx, b.ID); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
		if _, err := f.uc.GetByID(ctx, " "); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
		if _, err := f.uc.ListByClient(ctx, ""); !errors.Is(err, ErrMissingClient) {
			t.Fatalf("expected ErrMissingClient, got %v", err)
		}
	})
}

func TestBudgetUseCase_ApproveFailures(t *testing.T) {
	ctx := context.Background()
	pending := entities.Budget{
		ID:       "bud-1",
		Number:   "Orc.0009",
		ClientID: "c1",
		Status:   entities.BudgetStatusPendente,
		Items:    []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")},
	}

	t.Run("promotion failure keeps the budget pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		promoter := &fakePromoter{err: &PartialOrderWriteError{OrderNumber: "Orc.0009", Stage: "create", Total: 1, Err: errors.New("throttled")}}
		uc := NewBudgetUseCase(repo, nil, nil, promoter, nil, logger.NewNop(), nil)

		repo.EXPECT().GetByID(gomock.Any(), "bud-1").Return(pending, nil)

		_, err := uc.Approve(ctx, "bud-1")
		var partial *PartialOrderWriteError
		if !errors.As(err, &partial) {
			t.Fatalf("expected PartialOrderWriteError, got %v", err)
		}
	})

	t.Run("budget without number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, &fakePromoter{}, nil, logger.NewNop(), nil)

		b := pending
		b.Number = ""
		repo.EXPECT().GetByID(gomock.Any(), "bud-1").Return(b, nil)

		if _, err := uc.Approve(ctx, "bud-1"); !errors.Is(err, ErrBudgetNumberMissing) {
			t.Fatalf("expected ErrBudgetNumberMissing, got %v", err)
		}
	})

	t.Run("status write failure after promotion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		promoter := &fakePromoter{rows: []entities.Booking{{ID: "r1"}}}
		uc := NewBudgetUseCase(repo, nil, nil, promoter, nil, logger.NewNop(), nil)

		repo.EXPECT().GetByID(gomock.Any(), "bud-1").Return(pending, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Budget{}, errors.New("db"))

		res, err := uc.Approve(ctx, "bud-1")
		if !errors.Is(err, ErrPersistenceUnavailable) {
			t.Fatalf("expected ErrPersistenceUnavailable, got %v", err)
		}
		if len(res.Bookings) != 1 {
			t.Fatalf("expected promoted rows in the result")
		}
	})

	t.Run("counter failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		counter := mock_interfaces.NewMockICounterRepository(ctrl)
		uc := NewBudgetUseCase(repo, counter, nil, nil, nil, logger.NewNop(), nil).WithClock(func() time.Time { return fixedNow })

		repo.EXPECT().ListByClientID(gomock.Any(), "c1").Return(nil, nil)
		counter.EXPECT().Next(gomock.Any(), interfaces.CounterBudgets).Return(0, errors.New("throttled"))

		_, err := uc.Create(ctx, BudgetCommand{ClientID: "c1", ClientName: "Ana", Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")}})
		if !errors.Is(err, ErrPersistenceUnavailable) {
			t.Fatalf("expected ErrPersistenceUnavailable, got %v", err)
		}
	})
}

type fakePromoter struct {
	rows []entities.Booking
	err  error
}

func (p *fakePromoter) PromoteBudget(_ context.Context, b entities.Budget) (entities.OrderNumber, []entities.Booking, error) {
	return entities.OrderNumber(b.Number), p.rows, p.err
}

func TestBudgetUseCase_Numbering(t *testing.T) {
	ctx := context.Background()

	t.Run("counterless numbering skips a number freed by a delete", func(t *testing.T) {
		clock := func() time.Time { return fixedNow }
		bookings := memory.NewBookingRepository()
		budgets := memory.NewBudgetRepository()
		clients := memory.NewClientRepository(entities.Client{ID: "c1", Name: "Ana"}, entities.Client{ID: "c2", Name: "Bruno"})
		orders := NewOrderUseCase(bookings, nil, nil, clients, nil, nil, logger.NewNop(), nil).WithClock(clock)
		uc := NewBudgetUseCase(budgets, nil, clients, orders, nil, logger.NewNop(), nil).WithClock(clock)

		a, err := uc.Create(ctx, BudgetCommand{ClientID: "c1", AcknowledgeWarnings: true, Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")}})
		if err != nil {
			t.Fatalf("create a: %v", err)
		}
		b, err := uc.Create(ctx, BudgetCommand{ClientID: "c1", AcknowledgeWarnings: true, Items: []entities.BudgetItem{budgetItem("Reef Tour", tomorrow, "90")}})
		if err != nil {
			t.Fatalf("create b: %v", err)
		}
		if _, err := uc.Approve(ctx, b.Budget.ID); err != nil {
			t.Fatalf("approve b: %v", err)
		}
		if err := uc.Delete(ctx, a.Budget.ID); err != nil {
			t.Fatalf("delete a: %v", err)
		}

		c, err := uc.Create(ctx, BudgetCommand{ClientID: "c2", AcknowledgeWarnings: true, Items: []entities.BudgetItem{budgetItem("Sunset By Night", tomorrow, "60")}})
		if err != nil {
			t.Fatalf("create c: %v", err)
		}
		if c.Budget.Number == b.Budget.Number {
			t.Fatalf("budget number %s issued twice", c.Budget.Number)
		}

		res, err := uc.Approve(ctx, c.Budget.ID)
		if err != nil {
			t.Fatalf("approve c: %v", err)
		}
		if len(res.Bookings) != 1 || res.Bookings[0].ClientID != "c2" || res.Bookings[0].TourName != "Sunset By Night" {
			t.Fatalf("approval returned foreign bookings %+v", res.Bookings)
		}
		if rows, _ := bookings.ListByOrderNumber(ctx, entities.OrderNumber(b.Budget.Number)); len(rows) != 1 || rows[0].TourName != "Reef Tour" {
			t.Fatalf("first order was touched: %+v", rows)
		}
	})

	t.Run("taken counter value is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		counter := mock_interfaces.NewMockICounterRepository(ctrl)
		uc := NewBudgetUseCase(repo, counter, nil, nil, nil, logger.NewNop(), nil).WithClock(func() time.Time { return fixedNow })

		repo.EXPECT().ListByClientID(gomock.Any(), "c1").Return(nil, nil)
		gomock.InOrder(
			counter.EXPECT().Next(gomock.Any(), interfaces.CounterBudgets).Return(1, nil),
			counter.EXPECT().Next(gomock.Any(), interfaces.CounterBudgets).Return(2, nil),
		)
		repo.EXPECT().GetByNumber(gomock.Any(), "Orc.0001").Return(entities.Budget{ID: "legacy"}, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "Orc.0002").Return(entities.Budget{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Budget) (entities.Budget, error) {
			return b, nil
		})

		res, err := uc.Create(ctx, BudgetCommand{ClientID: "c1", ClientName: "Ana", Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Budget.Number != "Orc.0002" {
			t.Fatalf("expected Orc.0002, got %s", res.Budget.Number)
		}
	})

	t.Run("every candidate taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil, logger.NewNop(), nil).WithClock(func() time.Time { return fixedNow })

		repo.EXPECT().ListByClientID(gomock.Any(), "c1").Return(nil, nil)
		repo.EXPECT().Count(gomock.Any()).Return(0, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Return(entities.Budget{ID: "taken"}, nil).Times(maxMintProbes)

		_, err := uc.Create(ctx, BudgetCommand{ClientID: "c1", ClientName: "Ana", Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")}})
		if !errors.Is(err, ErrBudgetNumberExhaust) {
			t.Fatalf("expected ErrBudgetNumberExhaust, got %v", err)
		}
	})
}

func TestBudgetUseCase_ApprovePastDate(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	clock := func() time.Time { return now }
	bookings := memory.NewBookingRepository()
	budgets := memory.NewBudgetRepository()
	clients := memory.NewClientRepository(entities.Client{ID: "c1", Name: "Ana"})
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("test", reg)
	orders := NewOrderUseCase(bookings, memory.NewCounterRepository(), nil, clients, nil, nil, logger.NewNop(), m).WithClock(clock)
	uc := NewBudgetUseCase(budgets, memory.NewCounterRepository(), clients, orders, nil, logger.NewNop(), metrics.Discard()).WithClock(clock)

	created, err := uc.Create(ctx, BudgetCommand{ClientID: "c1", AcknowledgeWarnings: true, Items: []entities.BudgetItem{budgetItem("City Tour", tomorrow, "10")}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	now = fixedNow.AddDate(0, 0, 5)

	_, err = uc.Approve(ctx, created.Budget.ID)
	var retro *scheduling.RetroactiveDateError
	if !errors.As(err, &retro) || retro.Date != tomorrow {
		t.Fatalf("expected RetroactiveDateError for %s, got %v", tomorrow, err)
	}
	got, _ := budgets.GetByID(ctx, created.Budget.ID)
	if got.Status != entities.BudgetStatusPendente || got.PromotedOrderNumber != "" {
		t.Fatalf("budget must stay pending, got %+v", got)
	}
	if c, _ := bookings.Count(ctx); c != 0 {
		t.Fatalf("expected no bookings, got %d", c)
	}
	if v := counterValue(t, reg, "test_retroactive_denied_total"); v != 1 {
		t.Fatalf("expected one retroactive denial, got %v", v)
	}
}

func TestBudgetUseCase_ObserveWrappedRetroactive(t *testing.T) {
	reg := prometheus.NewRegistry()
	uc := NewBudgetUseCase(nil, nil, nil, nil, nil, logger.NewNop(), metrics.NewMetrics("test", reg))

	uc.observe(nil, fmt.Errorf("item 0: %w", &scheduling.RetroactiveDateError{TourName: "City Tour", Date: past}))
	uc.observe(nil, scheduling.ErrInvalidDate)

	if v := counterValue(t, reg, "test_retroactive_denied_total"); v != 1 {
		t.Fatalf("expected one retroactive denial, got %v", v)
	}
	if v := counterValue(t, reg, "test_conflict_checks_total"); v != 2 {
		t.Fatalf("expected two checks, got %v", v)
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name && len(mf.GetMetric()) > 0 {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}
