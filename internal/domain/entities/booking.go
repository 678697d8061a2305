package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the label carried by every row of an order.
//
// Status is only a label: moving to CONFIRMADO does not talk to any payment
// provider, it just drives the ledger trigger.
type BookingStatus string

const (
	BookingStatusPendente   BookingStatus = "PENDENTE"
	BookingStatusConfirmado BookingStatus = "CONFIRMADO"
	BookingStatusCancelado  BookingStatus = "CANCELADO"
	BookingStatusConcluido  BookingStatus = "CONCLUIDO"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPendente, BookingStatusConfirmado, BookingStatusCancelado, BookingStatusConcluido:
		return true
	}
	return false
}

// DateLayout is the civil date format used for tour dates ("2025-06-01").
const DateLayout = "2006-01-02"

// TimeLayout is the optional departure time format ("08:30").
const TimeLayout = "15:04"

// OrderNumberPrefix prefixes the human readable order counter.
const OrderNumberPrefix = "Agend."

// OrderNumber groups sibling bookings. The empty value means the booking is an
// order of size one.
type OrderNumber string

func (n OrderNumber) IsZero() bool {
	return strings.TrimSpace(string(n)) == ""
}

func (n OrderNumber) String() string {
	return string(n)
}

// FormatOrderNumber renders a counter as "Agend.0001". Counters above 9999
// simply widen.
func FormatOrderNumber(counter int) OrderNumber {
	return OrderNumber(fmt.Sprintf("%s%04d", OrderNumberPrefix, counter))
}

// Pax is the passenger breakdown of a line-item.
type Pax struct {
	Adult int `json:"adult"`
	Child int `json:"child"`
	Free  int `json:"free"`
}

func (p Pax) Total() int {
	return p.Adult + p.Child + p.Free
}

// Booking is one persisted order line.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_number-index): order_number
//
// GuidePayout is a snapshot of the guide daily rate taken when the order was
// committed; later rate changes never touch it.
type Booking struct {
	ID            string          `json:"id"`
	OrderNumber   OrderNumber     `json:"order_number,omitempty"`
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	ClientContact string          `json:"client_contact,omitempty"`
	TourName      string          `json:"tour_name"`
	Date          string          `json:"date"`
	Time          string          `json:"time,omitempty"`
	Pax           Pax             `json:"pax"`
	Price         decimal.Decimal `json:"price"`
	Status        BookingStatus   `json:"status"`
	GuideID       string          `json:"guide_id,omitempty"`
	GuideName     string          `json:"guide_name,omitempty"`
	GuidePayout   decimal.Decimal `json:"guide_payout"`
	Location      string          `json:"location,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Cancelled reports whether the row no longer occupies the calendar.
func (b Booking) Cancelled() bool {
	return b.Status == BookingStatusCancelado
}

// LineItem is a cart entry staged before the order is committed. It has no
// identity until persisted.
type LineItem struct {
	TourName string          `json:"tour_name"`
	Date     string          `json:"date"`
	Time     string          `json:"time,omitempty"`
	Pax      Pax             `json:"pax"`
	Price    decimal.Decimal `json:"price"`
	Note     string          `json:"note,omitempty"`
}

// OrderShared holds the fields written identically to every sibling row.
type OrderShared struct {
	ClientID      string        `json:"client_id"`
	ClientName    string        `json:"client_name"`
	ClientContact string        `json:"client_contact,omitempty"`
	GuideID       string        `json:"guide_id,omitempty"`
	Location      string        `json:"location,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Status        BookingStatus `json:"status"`
}

// SumPrices totals the line prices of an order.
func SumPrices(bookings []Booking) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bookings {
		total = total.Add(b.Price)
	}
	return total.Round(2)
}

// ParseDate validates a civil date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseTime validates an optional departure time. An empty string is valid.
func ParseTime(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	_, err := time.Parse(TimeLayout, s)
	return err
}
