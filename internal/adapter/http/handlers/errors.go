package handlers

import (
	"errors"
	"net/http"

	"turismo_agenda/internal/domain/scheduling"
	"turismo_agenda/internal/usecase"
	"turismo_agenda/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

type partialWriteDetails struct {
	OrderNumber string   `json:"order_number,omitempty"`
	Stage       string   `json:"stage"`
	Written     []string `json:"written"`
	Total       int      `json:"total"`
}

// mapSchedulingError translates use-case errors. Retroactive dates are 422,
// unacknowledged warnings 409 with the warning list, partial writes 502 with
// what was persisted, and an unreachable store 503.
func mapSchedulingError(err error) *pkg.AppError {
	var (
		retro   *scheduling.RetroactiveDateError
		warn    *usecase.ConflictWarningError
		partial *usecase.PartialOrderWriteError
	)
	switch {
	case errors.As(err, &retro):
		return pkg.NewDomainError("RETROACTIVE_DATE", "Tours cannot be booked for a past date", err, http.StatusUnprocessableEntity).
			WithDetails(retro)
	case errors.As(err, &warn):
		return pkg.NewDomainError("SCHEDULING_CONFLICT", "Scheduling conflict: confirm to proceed", err, http.StatusConflict).
			WithDetails(warn.Warnings)
	case errors.Is(err, usecase.ErrPromotionIncomplete):
		return pkg.NewDomainError("PROMOTION_INCOMPLETE", "Budget was only partially promoted; verify its bookings", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNumberCollision):
		return pkg.NewDomainError("ORDER_NUMBER_COLLISION", "Order number already carries another order", err, http.StatusConflict)
	case errors.As(err, &partial):
		return pkg.NewDomainError("PARTIAL_ORDER_WRITE", "Failed to save the order; verify and retry", err, http.StatusBadGateway).
			WithDetails(partialWriteDetails{OrderNumber: partial.OrderNumber.String(), Stage: partial.Stage, Written: partial.Written, Total: partial.Total})
	case errors.Is(err, usecase.ErrLedgerEntryFailed):
		return pkg.NewDomainError("LEDGER_ENTRY_FAILED", "Order saved but the financial entry failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPersistenceUnavailable), errors.Is(err, usecase.ErrOrderNumberExhausted),
		errors.Is(err, usecase.ErrBudgetNumberExhaust):
		return pkg.NewDomainError("PERSISTENCE_UNAVAILABLE", "Storage unavailable; nothing was saved, retry later", err, http.StatusServiceUnavailable)
	case errors.Is(err, scheduling.ErrInvalidDate), errors.Is(err, scheduling.ErrInvalidTime), errors.Is(err, scheduling.ErrMissingTour),
		errors.Is(err, usecase.ErrEmptyOrder), errors.Is(err, usecase.ErrEmptyBudget), errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPrice), errors.Is(err, usecase.ErrMissingClient), errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidOrderNumber), errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGuideNotFound):
		return pkg.NewDomainErrorSimple("GUIDE_NOT_FOUND", "Guide not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotPending), errors.Is(err, usecase.ErrBudgetTransition):
		return pkg.NewDomainError("BUDGET_STATUS_CONFLICT", "Budget status does not allow this operation", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	_ = c.Error(appErr)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
