package response

import (
	"time"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/domain/scheduling"
)

type PaxResponse struct {
	Adult int `json:"adult"`
	Child int `json:"child"`
	Free  int `json:"free"`
	Total int `json:"total"`
}

type BookingResponse struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"order_number,omitempty"`
	ClientID      string      `json:"client_id"`
	ClientName    string      `json:"client_name"`
	ClientContact string      `json:"client_contact,omitempty"`
	TourName      string      `json:"tour_name"`
	Date          string      `json:"date"`
	Time          string      `json:"time,omitempty"`
	Pax           PaxResponse `json:"pax"`
	Price         string      `json:"price"`
	Status        string      `json:"status"`
	GuideID       string      `json:"guide_id,omitempty"`
	GuideName     string      `json:"guide_name,omitempty"`
	GuidePayout   string      `json:"guide_payout"`
	Location      string      `json:"location,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Note          string      `json:"note,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		OrderNumber:   b.OrderNumber.String(),
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		ClientContact: b.ClientContact,
		TourName:      b.TourName,
		Date:          b.Date,
		Time:          b.Time,
		Pax:           PaxResponse{Adult: b.Pax.Adult, Child: b.Pax.Child, Free: b.Pax.Free, Total: b.Pax.Total()},
		Price:         b.Price.StringFixed(2),
		Status:        string(b.Status),
		GuideID:       b.GuideID,
		GuideName:     b.GuideName,
		GuidePayout:   b.GuidePayout.StringFixed(2),
		Location:      b.Location,
		PaymentMethod: b.PaymentMethod,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromBookings(rows []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(rows))
	for _, b := range rows {
		out = append(out, FromBooking(b))
	}
	return out
}

type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Direction   string    `json:"direction"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	Originator  string    `json:"originator"`
	OrderNumber string    `json:"order_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromLedgerEntry(e entities.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount.StringFixed(2),
		Direction:   string(e.Direction),
		Status:      string(e.Status),
		Date:        e.Date,
		Originator:  e.Originator,
		OrderNumber: e.OrderNumber.String(),
		CreatedAt:   e.CreatedAt,
	}
}

func FromLedgerEntries(entries []entities.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromLedgerEntry(e))
	}
	return out
}

// OrderResponse is one order: every sibling row plus the computed total.
type OrderResponse struct {
	OrderNumber string               `json:"order_number,omitempty"`
	Total       string               `json:"total"`
	Bookings    []BookingResponse    `json:"bookings"`
	Warnings    []scheduling.Warning `json:"warnings,omitempty"`
	LedgerEntry *LedgerEntryResponse `json:"ledger_entry,omitempty"`
}

func FromOrder(n entities.OrderNumber, rows []entities.Booking, warnings []scheduling.Warning, entry *entities.LedgerEntry) OrderResponse {
	resp := OrderResponse{
		OrderNumber: n.String(),
		Total:       entities.SumPrices(rows).StringFixed(2),
		Bookings:    FromBookings(rows),
		Warnings:    warnings,
	}
	if entry != nil {
		le := FromLedgerEntry(*entry)
		resp.LedgerEntry = &le
	}
	return resp
}

type CheckResponse struct {
	Allowed   bool                 `json:"allowed"`
	Night     bool                 `json:"night"`
	Candidate scheduling.Candidate `json:"candidate"`
	Warnings  []scheduling.Warning `json:"warnings"`
}

func FromReport(r scheduling.Report) CheckResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []scheduling.Warning{}
	}
	return CheckResponse{Allowed: r.Allowed(), Night: r.Night, Candidate: r.Candidate, Warnings: warnings}
}

type OccupancyResponse struct {
	GuideID string                  `json:"guide_id"`
	Date    string                  `json:"date"`
	Slots   []scheduling.Occupation `json:"slots"`
}

type DeleteOrderResponse struct {
	Deleted int `json:"deleted"`
}
