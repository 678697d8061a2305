package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget (orçamento / quotation).
//
// Domain notes:
//   - Only PENDENTE budgets accept item changes.
//   - The PENDENTE -> APROVADO edge promotes every item into a confirmed booking.
type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "PENDENTE"
	BudgetStatusAprovado  BudgetStatus = "APROVADO"
	BudgetStatusRejeitado BudgetStatus = "REJEITADO"
	BudgetStatusCancelado BudgetStatus = "CANCELADO"
)

// BudgetNumberPrefix prefixes the budget counter ("Orc.0007").
const BudgetNumberPrefix = "Orc."

func FormatBudgetNumber(counter int) string {
	return fmt.Sprintf("%s%04d", BudgetNumberPrefix, counter)
}

// Active reports whether the budget still takes part in the client's
// day-tour overlap check.
func (s BudgetStatus) Active() bool {
	return s != BudgetStatusCancelado && s != BudgetStatusRejeitado
}

// BudgetItem is one quoted tour. Items carry their own date, pax and price.
type BudgetItem struct {
	ID       string          `json:"id"`
	TourName string          `json:"tour_name"`
	Date     string          `json:"date"`
	Time     string          `json:"time,omitempty"`
	Pax      Pax             `json:"pax"`
	Price    decimal.Decimal `json:"price"`
	Note     string          `json:"note,omitempty"`
}

// Budget is a client quotation with nested items.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//   - GSI2 (number-index): number
//   - items stored as a nested list
type Budget struct {
	ID                  string          `json:"id"`
	Number              string          `json:"number"`
	ClientID            string          `json:"client_id"`
	ClientName          string          `json:"client_name"`
	Items               []BudgetItem    `json:"items"`
	Status              BudgetStatus    `json:"status"`
	Total               decimal.Decimal `json:"total"`
	Note                string          `json:"note,omitempty"`
	ValidUntil          string          `json:"valid_until,omitempty"`
	PromotedOrderNumber OrderNumber     `json:"promoted_order_number,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// SumBudgetItems totals the item prices.
func SumBudgetItems(items []BudgetItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total.Round(2)
}
