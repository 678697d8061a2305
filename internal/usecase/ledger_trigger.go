package usecase

import (
	"context"
	"strings"
	"time"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase/interfaces"
	"turismo_agenda/pkg/logger"
	"turismo_agenda/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LedgerCategoryPasseios = "Passeios"
	ledgerOriginatorPrefix = "Agendamento"
)

// StatusChange is the previous/current status pair of one order save.
// Previous is empty for a brand-new order.
type StatusChange struct {
	Previous    entities.BookingStatus
	Current     entities.BookingStatus
	OrderNumber entities.OrderNumber
	ClientName  string
	Bookings    []entities.Booking
}

// ILedgerTrigger emits the financial entry of an order reaching CONFIRMADO.
type ILedgerTrigger interface {
	OnStatusChange(ctx context.Context, ch StatusChange) (*entities.LedgerEntry, error)
	ListEntries(ctx context.Context, from, to string) ([]entities.LedgerEntry, error)
}

type LedgerTrigger struct {
	repo    interfaces.ITransactionRepository
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ ILedgerTrigger = (*LedgerTrigger)(nil)

func NewLedgerTrigger(repo interfaces.ITransactionRepository, log logger.Logger, m *metrics.Metrics) *LedgerTrigger {
	if m == nil {
		m = metrics.Discard()
	}
	return &LedgerTrigger{repo: repo, log: log, metrics: m, now: time.Now}
}

// WithClock overrides the clock used to date entries.
func (t *LedgerTrigger) WithClock(now func() time.Time) *LedgerTrigger {
	t.now = now
	return t
}

// ShouldEmit is the trigger rule: crossing into CONFIRMADO with a positive total.
// Re-saving an order that was already CONFIRMADO never emits.
func ShouldEmit(previous, current entities.BookingStatus, amount decimal.Decimal) bool {
	return previous != entities.BookingStatusConfirmado &&
		current == entities.BookingStatusConfirmado &&
		amount.GreaterThan(decimal.Zero)
}

// OnStatusChange writes at most one entry. It returns nil when the rule does
// not fire. There is no reversal entry when an order leaves CONFIRMADO.
func (t *LedgerTrigger) OnStatusChange(ctx context.Context, ch StatusChange) (*entities.LedgerEntry, error) {
	amount := entities.SumPrices(ch.Bookings)
	if !ShouldEmit(ch.Previous, ch.Current, amount) {
		return nil, nil
	}

	now := t.now()
	e := entities.LedgerEntry{
		ID:          uuid.NewString(),
		Description: ledgerDescription(ch),
		Category:    LedgerCategoryPasseios,
		Amount:      amount,
		Direction:   entities.LedgerDirectionEntrada,
		Status:      entities.LedgerStatusPago,
		Date:        now.Format(entities.DateLayout),
		Originator:  strings.TrimSpace(ledgerOriginatorPrefix + " " + ch.OrderNumber.String()),
		OrderNumber: ch.OrderNumber,
		CreatedAt:   now.UTC(),
	}

	created, err := t.repo.Create(ctx, e)
	if err != nil {
		t.metrics.ErrorsCount.WithLabelValues("ledger_create").Inc()
		t.log.Error("ledger entry create failed", "order_number", ch.OrderNumber, "amount", amount.StringFixed(2), "err", err)
		return nil, err
	}
	t.metrics.LedgerEntries.Inc()
	t.log.Info("ledger entry emitted", "order_number", ch.OrderNumber, "entry_id", created.ID, "amount", amount.StringFixed(2))
	return &created, nil
}

func (t *LedgerTrigger) ListEntries(ctx context.Context, from, to string) ([]entities.LedgerEntry, error) {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := entities.ParseDate(d); err != nil {
			return nil, ErrInvalidDateRange
		}
	}
	if from != "" && to != "" && from > to {
		return nil, ErrInvalidDateRange
	}
	entries, err := t.repo.List(ctx, from, to)
	if err != nil {
		return nil, unavailable("list transactions", err)
	}
	return entries, nil
}

// ledgerDescription joins the tour names with " + " and appends the client.
func ledgerDescription(ch StatusChange) string {
	tours := make([]string, 0, len(ch.Bookings))
	for _, b := range ch.Bookings {
		if name := strings.TrimSpace(b.TourName); name != "" {
			tours = append(tours, name)
		}
	}
	desc := strings.Join(tours, " + ")
	if client := strings.TrimSpace(ch.ClientName); client != "" {
		if desc == "" {
			return client
		}
		desc += " - " + client
	}
	return desc
}
