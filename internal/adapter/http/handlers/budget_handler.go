package handlers

import (
	"context"
	"net/http"
	"strings"

	request "turismo_agenda/internal/adapter/http/dto/request"
	response "turismo_agenda/internal/adapter/http/dto/response"
	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles HTTP requests for client quotations.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) CheckBudget(c *gin.Context) {
	var payload request.BudgetCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	warnings, err := h.usecase.CheckItems(c.Request.Context(), payload.ClientID, payload.BudgetID, payload.ToItems())
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.BudgetCheckResponse{Allowed: len(warnings) == 0, Warnings: warnings})
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), toBudgetCommand(payload))
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudgetResult(res.Budget, res.Warnings, nil))
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Update(c.Request.Context(), c.Param("id"), toBudgetCommand(payload))
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetResult(res.Budget, res.Warnings, nil))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// ListBudgets requires the client_id query parameter.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	clientID := strings.TrimSpace(c.Query("client_id"))
	if clientID == "" {
		abortWithError(c, errInvalidQuery)
		return
	}

	list, err := h.usecase.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(list))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveBudget promotes the budget into confirmed bookings.
func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	res, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetResult(res.Budget, nil, res.Bookings))
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reject)
}

func (h *BudgetHandler) CancelBudget(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *BudgetHandler) patchStatus(c *gin.Context, updater func(ctx context.Context, id string) (entities.Budget, error)) {
	b, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func toBudgetCommand(p request.BudgetRequest) usecase.BudgetCommand {
	return usecase.BudgetCommand{
		ClientID:            strings.TrimSpace(p.ClientID),
		ClientName:          strings.TrimSpace(p.ClientName),
		Items:               p.ToItems(),
		Note:                p.Note,
		ValidUntil:          strings.TrimSpace(p.ValidUntil),
		AcknowledgeWarnings: p.AcknowledgeWarnings,
	}
}
