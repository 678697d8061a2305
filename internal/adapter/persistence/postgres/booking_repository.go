package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/infrastructure/database"
	"turismo_agenda/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, COALESCE(order_number, ''), client_id, client_name, client_contact, tour_name,
tour_date::text, tour_time, pax_adult, pax_child, pax_free, price::text, status, guide_id, guide_name,
guide_payout::text, location, payment_method, note, created_at, updated_at`

// BookingRepository stores booking rows. It implements interfaces.IOrderReplacer,
// so an edit swaps the order rows in one transaction.
type BookingRepository struct {
	db *pgxpool.Pool
}

var (
	_ interfaces.IBookingRepository = (*BookingRepository)(nil)
	_ interfaces.IOrderReplacer     = (*BookingRepository)(nil)
)

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	if err := insertBooking(ctx, r.db, b); err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Booking{}, nil
	}
	return b, err
}

func (r *BookingRepository) List(ctx context.Context, f interfaces.BookingFilter) ([]entities.Booking, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.GuideID != "" {
		add("guide_id = $%d", f.GuideID)
	}
	if f.Date != "" {
		add("tour_date = $%d::text::date", f.Date)
	}
	if f.ClientID != "" {
		add("client_id = $%d", f.ClientID)
	}
	if !f.OrderNumber.IsZero() {
		add("order_number = $%d", f.OrderNumber.String())
	}
	if f.TourName != "" {
		add("lower(regexp_replace(trim(tour_name), '\\s+', ' ', 'g')) = lower($%d)", strings.Join(strings.Fields(f.TourName), " "))
	}
	if !f.IncludeCancelled {
		add("status <> $%d", string(entities.BookingStatusCancelado))
	}

	q := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY tour_date, tour_time, created_at`
	return r.queryBookings(ctx, q, args...)
}

func (r *BookingRepository) ListByOrderNumber(ctx context.Context, n entities.OrderNumber) ([]entities.Booking, error) {
	if n.IsZero() {
		return []entities.Booking{}, nil
	}
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_number = $1 ORDER BY tour_date, tour_time, created_at`
	return r.queryBookings(ctx, q, n.String())
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return err
}

func (r *BookingRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM bookings`).Scan(&n)
	return n, err
}

// ReplaceOrder deletes removeIDs and inserts rows atomically.
func (r *BookingRepository) ReplaceOrder(ctx context.Context, removeIDs []string, rows []entities.Booking) ([]entities.Booking, error) {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if len(removeIDs) > 0 {
			if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = ANY($1)`, removeIDs); err != nil {
				return err
			}
		}
		for _, b := range rows {
			if err := insertBooking(ctx, tx, b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingRepository) queryBookings(ctx context.Context, q string, args ...any) ([]entities.Booking, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func insertBooking(ctx context.Context, db execer, b entities.Booking) error {
	const q = `
INSERT INTO bookings (
    id, order_number, client_id, client_name, client_contact, tour_name, tour_date, tour_time,
    pax_adult, pax_child, pax_free, price, status, guide_id, guide_name, guide_payout,
    location, payment_method, note, created_at, updated_at
) VALUES (
    $1, NULLIF($2, ''), $3, $4, $5, $6, $7::text::date, $8,
    $9, $10, $11, $12::text::numeric, $13, $14, $15, $16::text::numeric,
    $17, $18, $19, $20, $21
)`
	_, err := db.Exec(ctx, q,
		b.ID, b.OrderNumber.String(), b.ClientID, b.ClientName, b.ClientContact, b.TourName, b.Date, b.Time,
		b.Pax.Adult, b.Pax.Child, b.Pax.Free, money(b.Price), string(b.Status), b.GuideID, b.GuideName, money(b.GuidePayout),
		b.Location, b.PaymentMethod, b.Note, b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func scanBooking(row rowScanner) (entities.Booking, error) {
	var (
		b                   entities.Booking
		orderNumber, status string
		price, payout       string
	)
	err := row.Scan(
		&b.ID, &orderNumber, &b.ClientID, &b.ClientName, &b.ClientContact, &b.TourName,
		&b.Date, &b.Time, &b.Pax.Adult, &b.Pax.Child, &b.Pax.Free, &price, &status, &b.GuideID, &b.GuideName,
		&payout, &b.Location, &b.PaymentMethod, &b.Note, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return entities.Booking{}, err
	}
	b.OrderNumber = entities.OrderNumber(orderNumber)
	b.Status = entities.BookingStatus(status)
	b.Price = parseDecimal(price)
	b.GuidePayout = parseDecimal(payout)
	return b, nil
}
