package postgres

import (
	"context"
	"errors"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/infrastructure/database"
	"turismo_agenda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `id, number, client_id, client_name, status, total::text, note, valid_until,
promoted_order_number, created_at, updated_at`

// BudgetRepository stores budgets in budgets/budget_items. Writes touching
// both tables run in one transaction.
type BudgetRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IBudgetRepository = (*BudgetRepository)(nil)

func NewBudgetRepository(db *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		const q = `
INSERT INTO budgets (id, number, client_id, client_name, status, total, note, valid_until, promoted_order_number, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6::text::numeric, $7, $8, $9, $10, $11)`
		if _, err := tx.Exec(ctx, q,
			b.ID, b.Number, b.ClientID, b.ClientName, string(b.Status), money(b.Total), b.Note, b.ValidUntil,
			b.PromotedOrderNumber.String(), b.CreatedAt, b.UpdatedAt,
		); err != nil {
			return err
		}
		return insertBudgetItems(ctx, tx, b.ID, b.Items)
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	return r.getOne(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id = $1`, id)
}

func (r *BudgetRepository) GetByNumber(ctx context.Context, number string) (entities.Budget, error) {
	return r.getOne(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE number = $1 ORDER BY created_at LIMIT 1`, number)
}

func (r *BudgetRepository) getOne(ctx context.Context, q string, arg string) (entities.Budget, error) {
	b, err := scanBudget(r.db.QueryRow(ctx, q, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Budget{}, nil
	}
	if err != nil {
		return entities.Budget{}, err
	}

	items, err := r.loadItems(ctx, []string{b.ID})
	if err != nil {
		return entities.Budget{}, err
	}
	b.Items = items[b.ID]
	return b, nil
}

func (r *BudgetRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error) {
	rows, err := r.db.Query(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE client_id = $1 ORDER BY number`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Budget, 0)
	ids := make([]string, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return out, nil
}

// Update replaces the budget row and its items. A missing id yields a zero Budget.
func (r *BudgetRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	found := false
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		const q = `
UPDATE budgets
SET client_name = $2, status = $3, total = $4::text::numeric, note = $5, valid_until = $6,
    promoted_order_number = $7, updated_at = $8
WHERE id = $1`
		tag, err := tx.Exec(ctx, q,
			b.ID, b.ClientName, string(b.Status), money(b.Total), b.Note, b.ValidUntil,
			b.PromotedOrderNumber.String(), b.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		found = true
		if _, err := tx.Exec(ctx, `DELETE FROM budget_items WHERE budget_id = $1`, b.ID); err != nil {
			return err
		}
		return insertBudgetItems(ctx, tx, b.ID, b.Items)
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if !found {
		return entities.Budget{}, nil
	}
	return b, nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	return err
}

func (r *BudgetRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM budgets`).Scan(&n)
	return n, err
}

func (r *BudgetRepository) loadItems(ctx context.Context, budgetIDs []string) (map[string][]entities.BudgetItem, error) {
	const q = `
SELECT budget_id, id, tour_name, tour_date::text, tour_time, pax_adult, pax_child, pax_free, price::text, note
FROM budget_items
WHERE budget_id = ANY($1)
ORDER BY budget_id, position`
	rows, err := r.db.Query(ctx, q, budgetIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]entities.BudgetItem, len(budgetIDs))
	for rows.Next() {
		var (
			budgetID, price string
			it              entities.BudgetItem
		)
		if err := rows.Scan(&budgetID, &it.ID, &it.TourName, &it.Date, &it.Time,
			&it.Pax.Adult, &it.Pax.Child, &it.Pax.Free, &price, &it.Note); err != nil {
			return nil, err
		}
		it.Price = parseDecimal(price)
		out[budgetID] = append(out[budgetID], it)
	}
	return out, rows.Err()
}

func insertBudgetItems(ctx context.Context, db execer, budgetID string, items []entities.BudgetItem) error {
	const q = `
INSERT INTO budget_items (id, budget_id, position, tour_name, tour_date, tour_time, pax_adult, pax_child, pax_free, price, note)
VALUES ($1, $2, $3, $4, $5::text::date, $6, $7, $8, $9, $10::text::numeric, $11)`
	for i, it := range items {
		if _, err := db.Exec(ctx, q,
			it.ID, budgetID, i, it.TourName, it.Date, it.Time,
			it.Pax.Adult, it.Pax.Child, it.Pax.Free, money(it.Price), it.Note,
		); err != nil {
			return err
		}
	}
	return nil
}

func scanBudget(row rowScanner) (entities.Budget, error) {
	var (
		b                    entities.Budget
		status, total, promo string
	)
	if err := row.Scan(&b.ID, &b.Number, &b.ClientID, &b.ClientName, &status, &total, &b.Note, &b.ValidUntil,
		&promo, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return entities.Budget{}, err
	}
	b.Status = entities.BudgetStatus(status)
	b.Total = parseDecimal(total)
	b.PromotedOrderNumber = entities.OrderNumber(promo)
	return b, nil
}
