// Package postgres implements the repository ports on a pgx pool. Money
// columns are NUMERIC(12,2), read back as text into decimals; civil dates are
// DATE columns read back as YYYY-MM-DD text.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
