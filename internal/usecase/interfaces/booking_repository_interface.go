package interfaces

import (
	"context"
	"strings"

	"turismo_agenda/internal/domain/entities"
)

// BookingFilter narrows List. Empty fields are not applied.
type BookingFilter struct {
	GuideID          string
	Date             string
	TourName         string
	ClientID         string
	OrderNumber      entities.OrderNumber
	IncludeCancelled bool
}

// Match reports whether b passes the filter. Tour names compare case and
// whitespace insensitively.
func (f BookingFilter) Match(b entities.Booking) bool {
	if !f.IncludeCancelled && b.Cancelled() {
		return false
	}
	if f.GuideID != "" && b.GuideID != f.GuideID {
		return false
	}
	if f.Date != "" && strings.TrimSpace(b.Date) != f.Date {
		return false
	}
	if f.ClientID != "" && b.ClientID != f.ClientID {
		return false
	}
	if !f.OrderNumber.IsZero() && b.OrderNumber != f.OrderNumber {
		return false
	}
	if f.TourName != "" && !strings.EqualFold(strings.Join(strings.Fields(b.TourName), " "), strings.Join(strings.Fields(f.TourName), " ")) {
		return false
	}
	return true
}

// IBookingRepository abstracts persistence of booking rows.
//
// The engine needs:
//   - list rows by field (guide/date for the calendar, tour/date for double sales)
//   - create and delete single rows
//   - fetch every row of an order by its number
//   - a total row count to mint the next order number
//
// GetByID returns a zero Booking and nil error when the row does not exist.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context, f BookingFilter) ([]entities.Booking, error)
	ListByOrderNumber(ctx context.Context, n entities.OrderNumber) ([]entities.Booking, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// IOrderReplacer is implemented by stores able to swap the rows of an order in
// a single transaction. Stores without it get sequential delete+create.
type IOrderReplacer interface {
	ReplaceOrder(ctx context.Context, removeIDs []string, rows []entities.Booking) ([]entities.Booking, error)
}
