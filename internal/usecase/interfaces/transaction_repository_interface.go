package interfaces

import (
	"context"

	"turismo_agenda/internal/domain/entities"
)

// ITransactionRepository abstracts persistence for ledger entries.
// from/to are inclusive civil dates; empty means unbounded.
type ITransactionRepository interface {
	Create(ctx context.Context, e entities.LedgerEntry) (entities.LedgerEntry, error)
	List(ctx context.Context, from, to string) ([]entities.LedgerEntry, error)
}
