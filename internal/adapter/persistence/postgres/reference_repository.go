package postgres

import (
	"context"
	"errors"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuideRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IGuideRepository = (*GuideRepository)(nil)

func NewGuideRepository(db *pgxpool.Pool) *GuideRepository {
	return &GuideRepository{db: db}
}

func (r *GuideRepository) GetByID(ctx context.Context, id string) (entities.Guide, error) {
	var (
		g    entities.Guide
		rate string
	)
	err := r.db.QueryRow(ctx, `SELECT id, name, role, daily_rate::text, active FROM guides WHERE id = $1`, id).
		Scan(&g.ID, &g.Name, &g.Role, &rate, &g.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Guide{}, nil
	}
	if err != nil {
		return entities.Guide{}, err
	}
	g.DailyRate = parseDecimal(rate)
	return g, nil
}

type ClientRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var c entities.Client
	err := r.db.QueryRow(ctx, `SELECT id, name, phone, email FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Client{}, nil
	}
	return c, err
}

// CounterRepository issues monotonic counters from the counters table.
type CounterRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.ICounterRepository = (*CounterRepository)(nil)

func NewCounterRepository(db *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{db: db}
}

func (r *CounterRepository) Next(ctx context.Context, name string) (int, error) {
	const q = `
INSERT INTO counters (name, value) VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
RETURNING value`
	var v int
	err := r.db.QueryRow(ctx, q, name).Scan(&v)
	return v, err
}
