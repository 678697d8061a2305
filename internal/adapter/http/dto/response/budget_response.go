package response

import (
	"time"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/domain/scheduling"
)

type BudgetItemResponse struct {
	ID       string      `json:"id"`
	TourName string      `json:"tour_name"`
	Date     string      `json:"date"`
	Time     string      `json:"time,omitempty"`
	Pax      PaxResponse `json:"pax"`
	Price    string      `json:"price"`
	Note     string      `json:"note,omitempty"`
}

type BudgetResponse struct {
	ID                  string               `json:"id"`
	Number              string               `json:"number"`
	ClientID            string               `json:"client_id"`
	ClientName          string               `json:"client_name"`
	Items               []BudgetItemResponse `json:"items"`
	Status              string               `json:"status"`
	Total               string               `json:"total"`
	Note                string               `json:"note,omitempty"`
	ValidUntil          string               `json:"valid_until,omitempty"`
	PromotedOrderNumber string               `json:"promoted_order_number,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			ID:       it.ID,
			TourName: it.TourName,
			Date:     it.Date,
			Time:     it.Time,
			Pax:      PaxResponse{Adult: it.Pax.Adult, Child: it.Pax.Child, Free: it.Pax.Free, Total: it.Pax.Total()},
			Price:    it.Price.StringFixed(2),
			Note:     it.Note,
		})
	}
	return BudgetResponse{
		ID:                  b.ID,
		Number:              b.Number,
		ClientID:            b.ClientID,
		ClientName:          b.ClientName,
		Items:               items,
		Status:              string(b.Status),
		Total:               b.Total.StringFixed(2),
		Note:                b.Note,
		ValidUntil:          b.ValidUntil,
		PromotedOrderNumber: b.PromotedOrderNumber.String(),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func FromBudgets(list []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBudget(b))
	}
	return out
}

// BudgetSaveResponse wraps a saved budget with the acknowledged warnings and,
// after an approval, the bookings promoted from it.
type BudgetSaveResponse struct {
	Budget   BudgetResponse       `json:"budget"`
	Warnings []scheduling.Warning `json:"warnings,omitempty"`
	Bookings []BookingResponse    `json:"bookings,omitempty"`
}

func FromBudgetResult(b entities.Budget, warnings []scheduling.Warning, rows []entities.Booking) BudgetSaveResponse {
	resp := BudgetSaveResponse{Budget: FromBudget(b), Warnings: warnings}
	if len(rows) > 0 {
		resp.Bookings = FromBookings(rows)
	}
	return resp
}

type BudgetCheckResponse struct {
	Allowed  bool                 `json:"allowed"`
	Warnings []scheduling.Warning `json:"warnings"`
}
