package usecase

import (
	"errors"
	"fmt"
	"strings"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/domain/scheduling"
)

var (
	ErrEmptyOrder             = errors.New("order has no line-items")
	ErrInvalidBookingID       = errors.New("invalid booking id")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidOrderNumber     = errors.New("invalid order number")
	ErrInvalidStatus          = errors.New("invalid booking status")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrMissingClient          = errors.New("missing client")
	ErrClientNotFound         = errors.New("client not found")
	ErrGuideNotFound          = errors.New("guide not found")
	ErrOrderNumberExhausted   = errors.New("could not mint a free order number")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
	ErrLedgerEntryFailed      = errors.New("order saved but ledger entry failed")
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrPromotionIncomplete    = errors.New("budget promotion incomplete")
	ErrOrderNumberCollision   = errors.New("order number already carries another order")

	ErrInvalidBudgetID     = errors.New("invalid budget id")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrEmptyBudget         = errors.New("budget has no items")
	ErrBudgetNotPending    = errors.New("budget is not pending")
	ErrBudgetTransition    = errors.New("budget status transition not allowed")
	ErrBudgetNumberMissing = errors.New("budget has no number")
	ErrBudgetNumberExhaust = errors.New("could not mint a free budget number")
)

// ConflictWarningError carries advisory conflicts back to the caller. The
// operation did not write anything; resubmitting with the warnings
// acknowledged proceeds.
type ConflictWarningError struct {
	Warnings []scheduling.Warning
}

func (e *ConflictWarningError) Error() string {
	kinds := make([]string, 0, len(e.Warnings))
	for _, w := range e.Warnings {
		kinds = append(kinds, string(w.Kind))
	}
	return fmt.Sprintf("scheduling conflict (%s): confirm to proceed", strings.Join(kinds, ", "))
}

// PartialOrderWriteError reports a multi-row write that stopped midway. Rows
// listed in Written stay persisted; nothing is rolled back.
type PartialOrderWriteError struct {
	OrderNumber entities.OrderNumber
	Stage       string
	Written     []string
	Total       int
	Err         error
}

func (e *PartialOrderWriteError) Error() string {
	return fmt.Sprintf("failed to save order %s (%s: %d of %d rows done); verify and retry: %v",
		e.OrderNumber, e.Stage, len(e.Written), e.Total, e.Err)
}

func (e *PartialOrderWriteError) Unwrap() error {
	return e.Err
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistenceUnavailable, op, err)
}
