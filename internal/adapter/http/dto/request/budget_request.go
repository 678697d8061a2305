package request

import (
	"strings"

	"turismo_agenda/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BudgetItemRequest struct {
	ID       string          `json:"id"`
	TourName string          `json:"tour_name" binding:"required"`
	Date     string          `json:"date" binding:"required"`
	Time     string          `json:"time"`
	Pax      PaxRequest      `json:"pax"`
	Price    decimal.Decimal `json:"price"`
	Note     string          `json:"note"`
}

type BudgetRequest struct {
	ClientID            string              `json:"client_id"`
	ClientName          string              `json:"client_name"`
	Items               []BudgetItemRequest `json:"items" binding:"required,min=1,dive"`
	Note                string              `json:"note"`
	ValidUntil          string              `json:"valid_until"`
	AcknowledgeWarnings bool                `json:"acknowledge_warnings"`
}

func (r BudgetRequest) ToItems() []entities.BudgetItem {
	return toBudgetItems(r.Items)
}

// BudgetCheckRequest evaluates items without saving. BudgetID excludes the
// budget being edited from the comparison.
type BudgetCheckRequest struct {
	ClientID string              `json:"client_id"`
	BudgetID string              `json:"budget_id"`
	Items    []BudgetItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r BudgetCheckRequest) ToItems() []entities.BudgetItem {
	return toBudgetItems(r.Items)
}

func toBudgetItems(in []BudgetItemRequest) []entities.BudgetItem {
	items := make([]entities.BudgetItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.BudgetItem{
			ID:       strings.TrimSpace(it.ID),
			TourName: strings.TrimSpace(it.TourName),
			Date:     strings.TrimSpace(it.Date),
			Time:     strings.TrimSpace(it.Time),
			Pax:      it.Pax.ToEntity(),
			Price:    it.Price,
			Note:     it.Note,
		})
	}
	return items
}
