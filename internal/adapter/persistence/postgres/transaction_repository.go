package postgres

import (
	"context"
	"fmt"
	"strings"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.ITransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, e entities.LedgerEntry) (entities.LedgerEntry, error) {
	const q = `
INSERT INTO transactions (id, description, category, amount, direction, status, entry_date, originator, order_number, created_at)
VALUES ($1, $2, $3, $4::text::numeric, $5, $6, $7::text::date, $8, $9, $10)`
	_, err := r.db.Exec(ctx, q,
		e.ID, e.Description, e.Category, money(e.Amount), string(e.Direction), string(e.Status),
		e.Date, e.Originator, e.OrderNumber.String(), e.CreatedAt,
	)
	if err != nil {
		return entities.LedgerEntry{}, err
	}
	return e, nil
}

func (r *TransactionRepository) List(ctx context.Context, from, to string) ([]entities.LedgerEntry, error) {
	var (
		conds []string
		args  []any
	)
	if from != "" {
		args = append(args, from)
		conds = append(conds, fmt.Sprintf("entry_date >= $%d::text::date", len(args)))
	}
	if to != "" {
		args = append(args, to)
		conds = append(conds, fmt.Sprintf("entry_date <= $%d::text::date", len(args)))
	}

	q := `SELECT id, description, category, amount::text, direction, status, entry_date::text, originator, order_number, created_at FROM transactions`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY entry_date, created_at`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.LedgerEntry, 0)
	for rows.Next() {
		var (
			e                                   entities.LedgerEntry
			amount, direction, status, orderNum string
		)
		if err := rows.Scan(&e.ID, &e.Description, &e.Category, &amount, &direction, &status,
			&e.Date, &e.Originator, &orderNum, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Amount = parseDecimal(amount)
		e.Direction = entities.LedgerDirection(direction)
		e.Status = entities.LedgerStatus(status)
		e.OrderNumber = entities.OrderNumber(orderNum)
		out = append(out, e)
	}
	return out, rows.Err()
}
