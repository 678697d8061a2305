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
)

// BudgetCommand is one submission of the quotation form.
type BudgetCommand struct {
	ClientID            string
	ClientName          string
	Items               []entities.BudgetItem
	Note                string
	ValidUntil          string
	AcknowledgeWarnings bool
}

// BudgetResult carries the saved budget and the warnings that were acknowledged.
type BudgetResult struct {
	Budget   entities.Budget
	Warnings []scheduling.Warning
	// Bookings holds the rows written when an approval promoted the budget.
	Bookings []entities.Booking
}

// IBudgetPromoter turns an approved budget into confirmed bookings.
type IBudgetPromoter interface {
	PromoteBudget(ctx context.Context, b entities.Budget) (entities.OrderNumber, []entities.Booking, error)
}

// IBudgetUseCase exposes quotation operations.
//
// Budgets mirror the booking conflict rule for one client only: two day tours
// on the same date, inside the budget or across the client's other active
// budgets, warn. The guide is not known at quotation time.
type IBudgetUseCase interface {
	CheckItems(ctx context.Context, clientID, budgetID string, items []entities.BudgetItem) ([]scheduling.Warning, error)
	Create(ctx context.Context, cmd BudgetCommand) (BudgetResult, error)
	Update(ctx context.Context, id string, cmd BudgetCommand) (BudgetResult, error)
	Approve(ctx context.Context, id string) (BudgetResult, error)
	Reject(ctx context.Context, id string) (entities.Budget, error)
	Cancel(ctx context.Context, id string) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Budget, error)
	Delete(ctx context.Context, id string) error
}

type BudgetUseCase struct {
	repo     interfaces.IBudgetRepository
	counter  interfaces.ICounterRepository
	clients  interfaces.IClientRepository
	promoter IBudgetPromoter
	checker  *scheduling.Checker
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	counter interfaces.ICounterRepository,
	clients interfaces.IClientRepository,
	promoter IBudgetPromoter,
	checker *scheduling.Checker,
	log logger.Logger,
	m *metrics.Metrics,
) *BudgetUseCase {
	if checker == nil {
		checker = scheduling.NewChecker(nil)
	}
	if m == nil {
		m = metrics.Discard()
	}
	return &BudgetUseCase{
		repo:     repo,
		counter:  counter,
		clients:  clients,
		promoter: promoter,
		checker:  checker,
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

func (u *BudgetUseCase) WithClock(now func() time.Time) *BudgetUseCase {
	u.now = now
	return u
}

// CheckItems evaluates items against each other and against the client's other
// budgets. budgetID, when set, is excluded from the comparison.
func (u *BudgetUseCase) CheckItems(ctx context.Context, clientID, budgetID string, items []entities.BudgetItem) ([]scheduling.Warning, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBudget
	}
	others, err := u.otherBudgets(ctx, strings.TrimSpace(clientID), strings.TrimSpace(budgetID))
	if err != nil {
		return nil, err
	}
	warnings, err := u.checker.CheckBudgetItems(items, others, u.now())
	u.observe(warnings, err)
	return warnings, err
}

func (u *BudgetUseCase) Create(ctx context.Context, cmd BudgetCommand) (BudgetResult, error) {
	cmd.ClientID = strings.TrimSpace(cmd.ClientID)
	if cmd.ClientID == "" {
		return BudgetResult{}, ErrMissingClient
	}
	if err := u.resolveClient(ctx, &cmd); err != nil {
		return BudgetResult{}, err
	}
	items, err := normalizeBudgetItems(cmd.Items)
	if err != nil {
		return BudgetResult{}, err
	}

	warnings, err := u.gate(ctx, cmd.ClientID, "", items, cmd.AcknowledgeWarnings)
	if err != nil {
		return BudgetResult{}, err
	}

	number, err := u.mintNumber(ctx)
	if err != nil {
		return BudgetResult{}, err
	}

	now := u.now().UTC()
	b := entities.Budget{
		ID:         uuid.NewString(),
		Number:     number,
		ClientID:   cmd.ClientID,
		ClientName: cmd.ClientName,
		Items:      items,
		Status:     entities.BudgetStatusPendente,
		Total:      entities.SumBudgetItems(items),
		Note:       cmd.Note,
		ValidUntil: strings.TrimSpace(cmd.ValidUntil),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return BudgetResult{}, unavailable("create budget", err)
	}
	u.log.Info("budget created", "budget_id", created.ID, "number", created.Number, "client_id", created.ClientID, "items", len(created.Items))
	return BudgetResult{Budget: created, Warnings: warnings}, nil
}

// Update replaces the items of a pending budget and recomputes its total. The
// client cannot change.
func (u *BudgetUseCase) Update(ctx context.Context, id string, cmd BudgetCommand) (BudgetResult, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return BudgetResult{}, err
	}
	if b.Status != entities.BudgetStatusPendente {
		return BudgetResult{}, ErrBudgetNotPending
	}
	items, err := normalizeBudgetItems(cmd.Items)
	if err != nil {
		return BudgetResult{}, err
	}

	warnings, err := u.gate(ctx, b.ClientID, b.ID, items, cmd.AcknowledgeWarnings)
	if err != nil {
		return BudgetResult{}, err
	}

	b.Items = items
	b.Total = entities.SumBudgetItems(items)
	b.Note = cmd.Note
	if v := strings.TrimSpace(cmd.ValidUntil); v != "" {
		b.ValidUntil = v
	}
	b.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return BudgetResult{}, unavailable("update budget", err)
	}
	u.log.Info("budget updated", "budget_id", updated.ID, "items", len(updated.Items), "total", updated.Total.StringFixed(2))
	return BudgetResult{Budget: updated, Warnings: warnings}, nil
}

// Approve promotes a pending budget into confirmed bookings and marks it
// APROVADO. Approving an approved budget returns it unchanged.
func (u *BudgetUseCase) Approve(ctx context.Context, id string) (BudgetResult, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return BudgetResult{}, err
	}
	switch b.Status {
	case entities.BudgetStatusAprovado:
		return BudgetResult{Budget: b}, nil
	case entities.BudgetStatusPendente:
	default:
		return BudgetResult{}, fmt.Errorf("%w: %s -> %s", ErrBudgetTransition, b.Status, entities.BudgetStatusAprovado)
	}
	if strings.TrimSpace(b.Number) == "" {
		return BudgetResult{}, ErrBudgetNumberMissing
	}

	var rows []entities.Booking
	if u.promoter != nil {
		n, written, err := u.promoter.PromoteBudget(ctx, b)
		if err != nil {
			u.log.Error("budget promotion failed", "budget_id", b.ID, "number", b.Number, "written", len(written), "err", err)
			return BudgetResult{Budget: b, Bookings: written}, err
		}
		b.PromotedOrderNumber = n
		rows = written
	}

	b.Status = entities.BudgetStatusAprovado
	b.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return BudgetResult{Budget: b, Bookings: rows}, unavailable("update budget", err)
	}
	u.log.Info("budget approved", "budget_id", updated.ID, "order_number", updated.PromotedOrderNumber, "bookings", len(rows))
	return BudgetResult{Budget: updated, Bookings: rows}, nil
}

func (u *BudgetUseCase) Reject(ctx context.Context, id string) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status == entities.BudgetStatusRejeitado {
		return b, nil
	}
	if b.Status != entities.BudgetStatusPendente {
		return entities.Budget{}, fmt.Errorf("%w: %s -> %s", ErrBudgetTransition, b.Status, entities.BudgetStatusRejeitado)
	}
	return u.setStatus(ctx, b, entities.BudgetStatusRejeitado)
}

// Cancel withdraws a budget. Bookings already promoted from it are not touched.
func (u *BudgetUseCase) Cancel(ctx context.Context, id string) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status == entities.BudgetStatusCancelado {
		return b, nil
	}
	return u.setStatus(ctx, b, entities.BudgetStatusCancelado)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, unavailable("get budget", err)
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Budget, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrMissingClient
	}
	list, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, unavailable("list budgets", err)
	}
	return list, nil
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, b.ID); err != nil {
		return unavailable("delete budget", err)
	}
	u.log.Info("budget deleted", "budget_id", b.ID, "number", b.Number)
	return nil
}

func (u *BudgetUseCase) setStatus(ctx context.Context, b entities.Budget, status entities.BudgetStatus) (entities.Budget, error) {
	previous := b.Status
	b.Status = status
	b.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, unavailable("update budget", err)
	}
	u.log.Info("budget status changed", "budget_id", updated.ID, "from", previous, "to", status)
	return updated, nil
}

func (u *BudgetUseCase) gate(ctx context.Context, clientID, budgetID string, items []entities.BudgetItem, ack bool) ([]scheduling.Warning, error) {
	warnings, err := u.CheckItems(ctx, clientID, budgetID, items)
	if err != nil {
		return nil, err
	}
	if len(warnings) > 0 && !ack {
		return warnings, &ConflictWarningError{Warnings: warnings}
	}
	return warnings, nil
}

func (u *BudgetUseCase) otherBudgets(ctx context.Context, clientID, excludeID string) ([]entities.Budget, error) {
	if clientID == "" {
		return nil, nil
	}
	list, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		u.metrics.ErrorsCount.WithLabelValues("list_budgets").Inc()
		return nil, unavailable("list budgets", err)
	}
	out := make([]entities.Budget, 0, len(list))
	for _, b := range list {
		if b.ID != excludeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (u *BudgetUseCase) resolveClient(ctx context.Context, cmd *BudgetCommand) error {
	cmd.ClientName = strings.TrimSpace(cmd.ClientName)
	if cmd.ClientName != "" || u.clients == nil {
		return nil
	}
	c, err := u.clients.GetByID(ctx, cmd.ClientID)
	if err != nil {
		return unavailable("get client", err)
	}
	if c.ID == "" {
		return ErrClientNotFound
	}
	cmd.ClientName = c.Name
	return nil
}

// mintNumber takes the next budget counter value, skipping numbers another
// budget already carries. Without a counter store the budget count seeds the
// sequence, so a deleted budget would otherwise hand its successor a taken number.
func (u *BudgetUseCase) mintNumber(ctx context.Context) (string, error) {
	next, err := u.nextCounter(ctx, 0)
	if err != nil {
		return "", err
	}
	for i := 0; i < maxMintProbes; i++ {
		number := entities.FormatBudgetNumber(next)
		taken, err := u.repo.GetByNumber(ctx, number)
		if err != nil {
			return "", unavailable("get budget by number", err)
		}
		if taken.ID == "" {
			return number, nil
		}
		u.log.Warn("budget number already in use", "number", number, "budget_id", taken.ID)
		if next, err = u.nextCounter(ctx, next); err != nil {
			return "", err
		}
	}
	return "", ErrBudgetNumberExhaust
}

func (u *BudgetUseCase) nextCounter(ctx context.Context, last int) (int, error) {
	if u.counter != nil {
		v, err := u.counter.Next(ctx, interfaces.CounterBudgets)
		if err != nil {
			return 0, unavailable("next budget counter", err)
		}
		return v, nil
	}
	if last > 0 {
		return last + 1, nil
	}
	count, err := u.repo.Count(ctx)
	if err != nil {
		return 0, unavailable("count budgets", err)
	}
	return count + 1, nil
}

func (u *BudgetUseCase) observe(warnings []scheduling.Warning, err error) {
	u.metrics.ConflictChecks.Inc()
	var re *scheduling.RetroactiveDateError
	if errors.As(err, &re) {
		u.metrics.RetroactiveDenied.Inc()
	}
	for _, w := range warnings {
		u.metrics.ConflictWarnings.WithLabelValues(string(w.Kind)).Inc()
	}
}

func normalizeBudgetItems(items []entities.BudgetItem) ([]entities.BudgetItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBudget
	}
	out := make([]entities.BudgetItem, len(items))
	for i, it := range items {
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("item %d: %w", i, ErrInvalidPrice)
		}
		if strings.TrimSpace(it.ID) == "" {
			it.ID = uuid.NewString()
		}
		it.TourName = strings.TrimSpace(it.TourName)
		it.Date = strings.TrimSpace(it.Date)
		it.Time = strings.TrimSpace(it.Time)
		it.Price = it.Price.Round(2)
		out[i] = it
	}
	return out, nil
}
