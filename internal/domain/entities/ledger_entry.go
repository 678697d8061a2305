package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type LedgerDirection string

const (
	LedgerDirectionEntrada LedgerDirection = "ENTRADA"
	LedgerDirectionSaida   LedgerDirection = "SAIDA"
)

type LedgerStatus string

const (
	LedgerStatusPendente LedgerStatus = "PENDENTE"
	LedgerStatusPago     LedgerStatus = "PAGO"
)

// LedgerEntry is a financial transaction row.
//
// Entries created by the booking engine are written once, when an order first
// reaches CONFIRMADO, and are never edited by the engine afterwards.
//
// Storage model (DynamoDB):
//   - PK: id
type LedgerEntry struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   LedgerDirection `json:"direction"`
	Status      LedgerStatus    `json:"status"`
	Date        string          `json:"date"`
	Originator  string          `json:"originator"`
	OrderNumber OrderNumber     `json:"order_number,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
