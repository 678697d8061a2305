package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/domain/scheduling"
	"turismo_agenda/internal/usecase/interfaces"
	"turismo_agenda/pkg/logger"
	"turismo_agenda/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxMintProbes bounds how many taken numbers are skipped before giving up.
const maxMintProbes = 25

// OrderCommand is one submission of the order modal.
type OrderCommand struct {
	Items               []entities.LineItem
	Shared              entities.OrderShared
	AcknowledgeWarnings bool
}

// OrderResult is what a committed order looks like after the write loop.
type OrderResult struct {
	OrderNumber entities.OrderNumber
	Bookings    []entities.Booking
	Warnings    []scheduling.Warning
	LedgerEntry *entities.LedgerEntry
}

// IOrderUseCase manages grouped bookings: rows sharing one order number.
//
// Check-then-act is not atomic: two sessions can both pass the conflict check
// for the same guide/date and both commit. Stores implementing
// interfaces.IOrderReplacer make an edit's delete+recreate atomic, but the
// check itself is still unserialized.
type IOrderUseCase interface {
	CheckLineItem(ctx context.Context, cand scheduling.Candidate) (scheduling.Report, error)
	Create(ctx context.Context, cmd OrderCommand) (OrderResult, error)
	Edit(ctx context.Context, bookingID string, cmd OrderCommand) (OrderResult, error)
	Delete(ctx context.Context, bookingID string) (int, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	GetBooking(ctx context.Context, id string) (entities.Booking, error)
	GetOrder(ctx context.Context, n entities.OrderNumber) ([]entities.Booking, error)
	ListBookings(ctx context.Context, f interfaces.BookingFilter) ([]entities.Booking, error)
	Occupancy(ctx context.Context, guideID, date string) ([]scheduling.Occupation, error)
	PromoteBudget(ctx context.Context, b entities.Budget) (entities.OrderNumber, []entities.Booking, error)
}

type OrderUseCase struct {
	repo    interfaces.IBookingRepository
	counter interfaces.ICounterRepository
	guides  interfaces.IGuideRepository
	clients interfaces.IClientRepository
	ledger  ILedgerTrigger
	checker *scheduling.Checker
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IBookingRepository,
	counter interfaces.ICounterRepository,
	guides interfaces.IGuideRepository,
	clients interfaces.IClientRepository,
	ledger ILedgerTrigger,
	checker *scheduling.Checker,
	log logger.Logger,
	m *metrics.Metrics,
) *OrderUseCase {
	if checker == nil {
		checker = scheduling.NewChecker(nil)
	}
	if m == nil {
		m = metrics.Discard()
	}
	return &OrderUseCase{
		repo:    repo,
		counter: counter,
		guides:  guides,
		clients: clients,
		ledger:  ledger,
		checker: checker,
		log:     log,
		metrics: m,
		now:     time.Now,
	}
}

// WithClock overrides the clock that defines "today".
func (u *OrderUseCase) WithClock(now func() time.Time) *OrderUseCase {
	u.now = now
	return u
}

func (u *OrderUseCase) CheckLineItem(ctx context.Context, cand scheduling.Candidate) (scheduling.Report, error) {
	cal, err := u.loadCalendar(ctx, []string{cand.Date}, nil)
	if err != nil {
		return scheduling.Report{}, err
	}
	rep, err := u.checker.Check(cand, cal, u.now())
	u.observe(rep.Warnings, err)
	return rep, err
}

func (u *OrderUseCase) Create(ctx context.Context, cmd OrderCommand) (OrderResult, error) {
	cmd, err := u.normalize(ctx, cmd)
	if err != nil {
		return OrderResult{}, err
	}

	warnings, err := u.evaluate(ctx, cmd, nil, nil)
	if err != nil {
		return OrderResult{}, err
	}

	guide, err := u.resolveGuide(ctx, cmd.Shared.GuideID)
	if err != nil {
		return OrderResult{}, err
	}

	n, err := u.mintOrderNumber(ctx)
	if err != nil {
		return OrderResult{}, err
	}

	rows := u.buildRows(n, cmd, guide)
	written, err := u.writeRows(ctx, n, rows)
	if err != nil {
		return OrderResult{OrderNumber: n, Bookings: written, Warnings: warnings}, err
	}
	u.metrics.OrdersCommitted.WithLabelValues("create").Inc()
	u.log.Info("order created", "order_number", n, "rows", len(written), "guide_id", cmd.Shared.GuideID, "status", cmd.Shared.Status)

	res := OrderResult{OrderNumber: n, Bookings: written, Warnings: warnings}
	return u.trigger(ctx, res, "", cmd.Shared)
}

// Edit replaces the whole order containing bookingID. Every sibling row is
// deleted and the submitted items are recreated under the original number;
// rows not resubmitted are gone.
func (u *OrderUseCase) Edit(ctx context.Context, bookingID string, cmd OrderCommand) (OrderResult, error) {
	existing, err := u.orderRows(ctx, bookingID)
	if err != nil {
		return OrderResult{}, err
	}
	cmd, err = u.normalize(ctx, cmd)
	if err != nil {
		return OrderResult{}, err
	}

	exclude := make(map[string]bool, len(existing))
	carried := make(map[string]bool, len(existing))
	for _, b := range existing {
		exclude[b.ID] = true
		carried[itemKey(b.TourName, b.Date)] = true
	}
	today := scheduling.Today(u.now())
	// A past item already in the order is carried over untouched; only new
	// items are subject to the retroactive rule.
	exempt := func(it entities.LineItem) bool {
		return carried[itemKey(it.TourName, it.Date)] && strings.TrimSpace(it.Date) < today
	}

	warnings, err := u.evaluate(ctx, cmd, exclude, exempt)
	if err != nil {
		return OrderResult{}, err
	}

	guide, err := u.resolveGuide(ctx, cmd.Shared.GuideID)
	if err != nil {
		return OrderResult{}, err
	}

	n := existing[0].OrderNumber
	if n.IsZero() {
		if n, err = u.mintOrderNumber(ctx); err != nil {
			return OrderResult{}, err
		}
	}
	previous := previousStatus(existing)

	rows := u.buildRows(n, cmd, guide)
	written, err := u.replaceRows(ctx, n, existing, rows)
	if err != nil {
		return OrderResult{OrderNumber: n, Bookings: written, Warnings: warnings}, err
	}
	u.metrics.OrdersCommitted.WithLabelValues("edit").Inc()
	u.log.Info("order replaced", "order_number", n, "removed", len(existing), "rows", len(written), "previous_status", previous, "status", cmd.Shared.Status)

	res := OrderResult{OrderNumber: n, Bookings: written, Warnings: warnings}
	return u.trigger(ctx, res, previous, cmd.Shared)
}

// Delete removes every row of the order containing bookingID. A row without
// an order number is an order of one.
func (u *OrderUseCase) Delete(ctx context.Context, bookingID string) (int, error) {
	rows, err := u.orderRows(ctx, bookingID)
	if err != nil {
		return 0, err
	}
	n := rows[0].OrderNumber
	deleted, err := u.deleteRows(ctx, n, rows)
	if err != nil {
		return len(deleted), err
	}
	u.metrics.OrdersCommitted.WithLabelValues("delete").Inc()
	u.log.Info("order deleted", "order_number", n, "rows", len(deleted))
	return len(deleted), nil
}

func (u *OrderUseCase) DeleteBooking(ctx context.Context, bookingID string) error {
	b, err := u.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, b.ID); err != nil {
		return unavailable("delete booking", err)
	}
	u.log.Info("booking deleted", "booking_id", b.ID, "order_number", b.OrderNumber)
	return nil
}

func (u *OrderUseCase) GetBooking(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, unavailable("get booking", err)
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, n entities.OrderNumber) ([]entities.Booking, error) {
	if n.IsZero() {
		return nil, ErrInvalidOrderNumber
	}
	rows, err := u.repo.ListByOrderNumber(ctx, entities.OrderNumber(strings.TrimSpace(n.String())))
	if err != nil {
		return nil, unavailable("list order", err)
	}
	if len(rows) == 0 {
		return nil, ErrOrderNotFound
	}
	return rows, nil
}

func (u *OrderUseCase) ListBookings(ctx context.Context, f interfaces.BookingFilter) ([]entities.Booking, error) {
	rows, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, unavailable("list bookings", err)
	}
	return rows, nil
}

// Occupancy is the calendar view of one guide on one date.
func (u *OrderUseCase) Occupancy(ctx context.Context, guideID, date string) ([]scheduling.Occupation, error) {
	guideID = strings.TrimSpace(guideID)
	if guideID == "" {
		return nil, ErrGuideNotFound
	}
	if _, err := entities.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %q", scheduling.ErrInvalidDate, date)
	}
	rows, err := u.repo.List(ctx, interfaces.BookingFilter{GuideID: guideID, Date: strings.TrimSpace(date)})
	if err != nil {
		return nil, unavailable("list bookings", err)
	}
	return scheduling.NewCalendar(u.checker.Night(), rows).Occupancy(guideID, strings.TrimSpace(date)), nil
}

// PromoteBudget writes one CONFIRMADO booking per budget item under an order
// number equal to the budget number. Budgets carry no guide, so the rows have
// no guide and a zero payout. Promotion never emits a ledger entry.
//
// A budget already fully promoted is returned as is; a partially promoted one
// is reported instead of being topped up. Rows under the number that do not
// match this budget's client and items belong to another order and are never
// handed back. Items dated before today are rejected before anything is written.
func (u *OrderUseCase) PromoteBudget(ctx context.Context, b entities.Budget) (entities.OrderNumber, []entities.Booking, error) {
	n := entities.OrderNumber(strings.TrimSpace(b.Number))
	if n.IsZero() {
		return "", nil, ErrInvalidOrderNumber
	}
	if len(b.Items) == 0 {
		return n, nil, ErrEmptyOrder
	}

	existing, err := u.repo.ListByOrderNumber(ctx, n)
	if err != nil {
		return n, nil, unavailable("list order", err)
	}
	if len(existing) > 0 {
		if !promotedFrom(b, existing) {
			u.log.Error("order number carries another order", "budget_id", b.ID, "order_number", n, "rows", len(existing))
			return n, nil, fmt.Errorf("%w: %s", ErrOrderNumberCollision, n)
		}
		if len(existing) == len(b.Items) {
			u.log.Info("budget already promoted", "budget_id", b.ID, "order_number", n)
			return n, existing, nil
		}
		return n, existing, &PartialOrderWriteError{OrderNumber: n, Stage: "promote", Written: bookingIDs(existing), Total: len(b.Items), Err: ErrPromotionIncomplete}
	}

	for i, it := range b.Items {
		err := scheduling.ValidateDate(it.TourName, it.Date, u.now())
		u.observe(nil, err)
		if err != nil {
			return n, nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	now := u.now().UTC()
	rows := make([]entities.Booking, 0, len(b.Items))
	for _, it := range b.Items {
		rows = append(rows, entities.Booking{
			ID:          uuid.NewString(),
			OrderNumber: n,
			ClientID:    b.ClientID,
			ClientName:  b.ClientName,
			TourName:    strings.TrimSpace(it.TourName),
			Date:        strings.TrimSpace(it.Date),
			Time:        strings.TrimSpace(it.Time),
			Pax:         it.Pax,
			Price:       it.Price.Round(2),
			Status:      entities.BookingStatusConfirmado,
			GuidePayout: decimal.Zero,
			Note:        it.Note,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	written, err := u.writeRows(ctx, n, rows)
	if err != nil {
		return n, written, err
	}
	u.metrics.BudgetsPromoted.Inc()
	u.log.Info("budget promoted", "budget_id", b.ID, "order_number", n, "rows", len(written))
	return n, written, nil
}

func (u *OrderUseCase) normalize(ctx context.Context, cmd OrderCommand) (OrderCommand, error) {
	if len(cmd.Items) == 0 {
		return cmd, ErrEmptyOrder
	}
	s := &cmd.Shared
	s.ClientID = strings.TrimSpace(s.ClientID)
	s.ClientName = strings.TrimSpace(s.ClientName)
	s.GuideID = strings.TrimSpace(s.GuideID)
	if s.Status == "" {
		s.Status = entities.BookingStatusPendente
	}
	if !s.Status.Valid() {
		return cmd, ErrInvalidStatus
	}
	if s.ClientID == "" && s.ClientName == "" {
		return cmd, ErrMissingClient
	}
	if s.ClientID != "" && (s.ClientName == "" || s.ClientContact == "") && u.clients != nil {
		c, err := u.clients.GetByID(ctx, s.ClientID)
		if err != nil {
			return cmd, unavailable("get client", err)
		}
		if c.ID == "" {
			return cmd, ErrClientNotFound
		}
		if s.ClientName == "" {
			s.ClientName = c.Name
		}
		if s.ClientContact == "" {
			s.ClientContact = c.Contact()
		}
	}

	items := make([]entities.LineItem, len(cmd.Items))
	for i, it := range cmd.Items {
		if it.Price.IsNegative() {
			return cmd, fmt.Errorf("item %d: %w", i, ErrInvalidPrice)
		}
		it.TourName = strings.TrimSpace(it.TourName)
		it.Date = strings.TrimSpace(it.Date)
		it.Time = strings.TrimSpace(it.Time)
		it.Price = it.Price.Round(2)
		items[i] = it
	}
	cmd.Items = items
	return cmd, nil
}

// evaluate runs the checker for every item against the calendar of the
// affected dates, staging each item so later items of the same cart see it.
// Hard errors abort; warnings abort unless acknowledged.
func (u *OrderUseCase) evaluate(ctx context.Context, cmd OrderCommand, exclude map[string]bool, exempt func(entities.LineItem) bool) ([]scheduling.Warning, error) {
	dates := make([]string, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		dates = append(dates, it.Date)
	}
	cal, err := u.loadCalendar(ctx, dates, exclude)
	if err != nil {
		return nil, err
	}

	now := u.now()
	warnings := []scheduling.Warning{}
	for i, it := range cmd.Items {
		if exempt != nil && exempt(it) {
			cal.Stage(cmd.Shared.GuideID, it)
			continue
		}
		rep, err := u.checker.Check(scheduling.Candidate{
			GuideID:  cmd.Shared.GuideID,
			TourName: it.TourName,
			Date:     it.Date,
			Time:     it.Time,
		}, cal, now)
		u.observe(rep.Warnings, err)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		for _, w := range rep.Warnings {
			w.ItemIndex = i
			warnings = append(warnings, w)
		}
		cal.Stage(cmd.Shared.GuideID, it)
	}

	if len(warnings) > 0 && !cmd.AcknowledgeWarnings {
		return warnings, &ConflictWarningError{Warnings: warnings}
	}
	return warnings, nil
}

// loadCalendar reads every booking on the given dates. One read per distinct
// date covers both the guide rule and the system-wide tour rule.
func (u *OrderUseCase) loadCalendar(ctx context.Context, dates []string, exclude map[string]bool) (*scheduling.Calendar, error) {
	seen := make(map[string]bool, len(dates))
	var rows []entities.Booking
	for _, d := range dates {
		d = strings.TrimSpace(d)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		if _, err := entities.ParseDate(d); err != nil {
			// The checker reports the malformed date.
			continue
		}
		list, err := u.repo.List(ctx, interfaces.BookingFilter{Date: d})
		if err != nil {
			u.metrics.ErrorsCount.WithLabelValues("load_calendar").Inc()
			return nil, unavailable("list bookings", err)
		}
		for _, b := range list {
			if !exclude[b.ID] {
				rows = append(rows, b)
			}
		}
	}
	return scheduling.NewCalendar(u.checker.Night(), rows), nil
}

func (u *OrderUseCase) resolveGuide(ctx context.Context, guideID string) (entities.Guide, error) {
	if guideID == "" {
		return entities.Guide{}, nil
	}
	if u.guides == nil {
		return entities.Guide{ID: guideID}, nil
	}
	g, err := u.guides.GetByID(ctx, guideID)
	if err != nil {
		return entities.Guide{}, unavailable("get guide", err)
	}
	if g.ID == "" {
		return entities.Guide{}, ErrGuideNotFound
	}
	return g, nil
}

// mintOrderNumber takes the next value of the order counter, skipping
// numbers already carried by rows written before the counter existed. Without
// a counter store the row count seeds the sequence, which is not safe under
// concurrent creation.
func (u *OrderUseCase) mintOrderNumber(ctx context.Context) (entities.OrderNumber, error) {
	next, err := u.nextCounter(ctx, 0)
	if err != nil {
		return "", err
	}
	for i := 0; i < maxMintProbes; i++ {
		n := entities.FormatOrderNumber(next)
		rows, err := u.repo.ListByOrderNumber(ctx, n)
		if err != nil {
			return "", unavailable("list order", err)
		}
		if len(rows) == 0 {
			return n, nil
		}
		u.log.Warn("order number already in use", "order_number", n)
		if next, err = u.nextCounter(ctx, next); err != nil {
			return "", err
		}
	}
	return "", ErrOrderNumberExhausted
}

func (u *OrderUseCase) nextCounter(ctx context.Context, last int) (int, error) {
	if u.counter != nil {
		v, err := u.counter.Next(ctx, interfaces.CounterOrders)
		if err != nil {
			return 0, unavailable("next order counter", err)
		}
		return v, nil
	}
	if last > 0 {
		return last + 1, nil
	}
	count, err := u.repo.Count(ctx)
	if err != nil {
		return 0, unavailable("count bookings", err)
	}
	return count + 1, nil
}

// buildRows stamps the shared fields and the guide payout snapshot on every item.
func (u *OrderUseCase) buildRows(n entities.OrderNumber, cmd OrderCommand, guide entities.Guide) []entities.Booking {
	now := u.now().UTC()
	payout := guide.DailyRate.Round(2)
	rows := make([]entities.Booking, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		rows = append(rows, entities.Booking{
			ID:            uuid.NewString(),
			OrderNumber:   n,
			ClientID:      cmd.Shared.ClientID,
			ClientName:    cmd.Shared.ClientName,
			ClientContact: cmd.Shared.ClientContact,
			TourName:      it.TourName,
			Date:          it.Date,
			Time:          it.Time,
			Pax:           it.Pax,
			Price:         it.Price,
			Status:        cmd.Shared.Status,
			GuideID:       guide.ID,
			GuideName:     guide.Name,
			GuidePayout:   payout,
			Location:      cmd.Shared.Location,
			PaymentMethod: cmd.Shared.PaymentMethod,
			Note:          it.Note,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return rows
}

// writeRows is the sequential, non-transactional commit loop.
func (u *OrderUseCase) writeRows(ctx context.Context, n entities.OrderNumber, rows []entities.Booking) ([]entities.Booking, error) {
	written := make([]entities.Booking, 0, len(rows))
	for _, b := range rows {
		created, err := u.repo.Create(ctx, b)
		if err != nil {
			u.metrics.PartialWrites.Inc()
			u.log.Error("order row write failed", "order_number", n, "written", len(written), "total", len(rows), "err", err)
			return written, &PartialOrderWriteError{OrderNumber: n, Stage: "create", Written: bookingIDs(written), Total: len(rows), Err: err}
		}
		u.metrics.BookingRowsWrite.Inc()
		written = append(written, created)
	}
	return written, nil
}

func (u *OrderUseCase) deleteRows(ctx context.Context, n entities.OrderNumber, rows []entities.Booking) ([]string, error) {
	deleted := make([]string, 0, len(rows))
	for _, b := range rows {
		if err := u.repo.Delete(ctx, b.ID); err != nil {
			u.metrics.PartialWrites.Inc()
			u.log.Error("order row delete failed", "order_number", n, "booking_id", b.ID, "deleted", len(deleted), "err", err)
			return deleted, &PartialOrderWriteError{OrderNumber: n, Stage: "delete", Written: deleted, Total: len(rows), Err: err}
		}
		deleted = append(deleted, b.ID)
	}
	return deleted, nil
}

func (u *OrderUseCase) replaceRows(ctx context.Context, n entities.OrderNumber, existing, rows []entities.Booking) ([]entities.Booking, error) {
	if tx, ok := u.repo.(interfaces.IOrderReplacer); ok {
		written, err := tx.ReplaceOrder(ctx, bookingIDs(existing), rows)
		if err != nil {
			u.metrics.ErrorsCount.WithLabelValues("replace_order").Inc()
			return nil, unavailable("replace order", err)
		}
		u.metrics.BookingRowsWrite.Add(float64(len(written)))
		return written, nil
	}

	if _, err := u.deleteRows(ctx, n, existing); err != nil {
		return nil, err
	}
	return u.writeRows(ctx, n, rows)
}

// orderRows resolves the order a booking belongs to.
func (u *OrderUseCase) orderRows(ctx context.Context, bookingID string) ([]entities.Booking, error) {
	anchor, err := u.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if anchor.OrderNumber.IsZero() {
		return []entities.Booking{anchor}, nil
	}
	rows, err := u.repo.ListByOrderNumber(ctx, anchor.OrderNumber)
	if err != nil {
		return nil, unavailable("list order", err)
	}
	if len(rows) == 0 {
		return []entities.Booking{anchor}, nil
	}
	return rows, nil
}

func (u *OrderUseCase) trigger(ctx context.Context, res OrderResult, previous entities.BookingStatus, shared entities.OrderShared) (OrderResult, error) {
	if u.ledger == nil {
		return res, nil
	}
	entry, err := u.ledger.OnStatusChange(ctx, StatusChange{
		Previous:    previous,
		Current:     shared.Status,
		OrderNumber: res.OrderNumber,
		ClientName:  shared.ClientName,
		Bookings:    res.Bookings,
	})
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrLedgerEntryFailed, err)
	}
	res.LedgerEntry = entry
	return res, nil
}

func (u *OrderUseCase) observe(warnings []scheduling.Warning, err error) {
	u.metrics.ConflictChecks.Inc()
	var re *scheduling.RetroactiveDateError
	if errors.As(err, &re) {
		u.metrics.RetroactiveDenied.Inc()
	}
	for _, w := range warnings {
		u.metrics.ConflictWarnings.WithLabelValues(string(w.Kind)).Inc()
	}
}

// previousStatus is CONFIRMADO when any sibling already was, so a re-save of a
// paid order can never emit a second entry.
func previousStatus(rows []entities.Booking) entities.BookingStatus {
	for _, b := range rows {
		if b.Status == entities.BookingStatusConfirmado {
			return entities.BookingStatusConfirmado
		}
	}
	if len(rows) == 0 {
		return ""
	}
	return rows[0].Status
}

func bookingIDs(rows []entities.Booking) []string {
	ids := make([]string, 0, len(rows))
	for _, b := range rows {
		ids = append(ids, b.ID)
	}
	return ids
}

// promotedFrom reports whether rows were written by promoting b: same client,
// and every row matches a distinct budget item by tour and date.
func promotedFrom(b entities.Budget, rows []entities.Booking) bool {
	if len(rows) > len(b.Items) {
		return false
	}
	remaining := make(map[string]int, len(b.Items))
	for _, it := range b.Items {
		remaining[itemKey(it.TourName, it.Date)]++
	}
	for _, r := range rows {
		k := itemKey(r.TourName, r.Date)
		if r.ClientID != b.ClientID || remaining[k] == 0 {
			return false
		}
		remaining[k]--
	}
	return true
}

func itemKey(tour, date string) string {
	return strings.ToLower(strings.Join(strings.Fields(tour), " ")) + "|" + strings.TrimSpace(date)
}
