// Package memory keeps every repository port in process memory. It backs the
// STORAGE_DRIVER=memory mode and the end-to-end tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase/interfaces"
)

// BookingRepository stores booking rows. Like the DynamoDB store it offers no
// multi-row transaction, so edits go through sequential delete+create.
type BookingRepository struct {
	mu   sync.RWMutex
	rows map[string]entities.Booking
}

var _ interfaces.IBookingRepository = (*BookingRepository)(nil)

func NewBookingRepository(seed ...entities.Booking) *BookingRepository {
	r := &BookingRepository{rows: make(map[string]entities.Booking, len(seed))}
	for _, b := range seed {
		r.rows[b.ID] = b
	}
	return r
}

func (r *BookingRepository) Create(_ context.Context, b entities.Booking) (entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[b.ID] = b
	return b, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (entities.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rows[id], nil
}

func (r *BookingRepository) List(_ context.Context, f interfaces.BookingFilter) ([]entities.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Booking, 0)
	for _, b := range r.rows {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *BookingRepository) ListByOrderNumber(_ context.Context, n entities.OrderNumber) ([]entities.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Booking, 0)
	if n.IsZero() {
		return out, nil
	}
	for _, b := range r.rows {
		if b.OrderNumber == n {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *BookingRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *BookingRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}

// BudgetRepository stores budgets with their items.
type BudgetRepository struct {
	mu   sync.RWMutex
	rows map[string]entities.Budget
}

var _ interfaces.IBudgetRepository = (*BudgetRepository)(nil)

func NewBudgetRepository() *BudgetRepository {
	return &BudgetRepository{rows: make(map[string]entities.Budget)}
}

func (r *BudgetRepository) Create(_ context.Context, b entities.Budget) (entities.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.Items = append([]entities.BudgetItem(nil), b.Items...)
	r.rows[b.ID] = b
	return b, nil
}

func (r *BudgetRepository) GetByID(_ context.Context, id string) (entities.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.rows[id]
	if !ok {
		return entities.Budget{}, nil
	}
	b.Items = append([]entities.BudgetItem(nil), b.Items...)
	return b, nil
}

func (r *BudgetRepository) GetByNumber(_ context.Context, number string) (entities.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.rows {
		if b.Number == number {
			b.Items = append([]entities.BudgetItem(nil), b.Items...)
			return b, nil
		}
	}
	return entities.Budget{}, nil
}

func (r *BudgetRepository) ListByClientID(_ context.Context, clientID string) ([]entities.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Budget, 0)
	for _, b := range r.rows {
		if b.ClientID == clientID {
			b.Items = append([]entities.BudgetItem(nil), b.Items...)
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// Update replaces the stored record. A missing id yields a zero Budget.
func (r *BudgetRepository) Update(_ context.Context, b entities.Budget) (entities.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[b.ID]; !ok {
		return entities.Budget{}, nil
	}
	b.Items = append([]entities.BudgetItem(nil), b.Items...)
	r.rows[b.ID] = b
	return b, nil
}

func (r *BudgetRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *BudgetRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}

// TransactionRepository stores ledger entries in insertion order.
type TransactionRepository struct {
	mu      sync.RWMutex
	entries []entities.LedgerEntry
}

var _ interfaces.ITransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Create(_ context.Context, e entities.LedgerEntry) (entities.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *TransactionRepository) List(_ context.Context, from, to string) ([]entities.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.LedgerEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if from != "" && e.Date < from {
			continue
		}
		if to != "" && e.Date > to {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// GuideRepository is a read-only guide directory.
type GuideRepository struct {
	mu     sync.RWMutex
	guides map[string]entities.Guide
}

var _ interfaces.IGuideRepository = (*GuideRepository)(nil)

func NewGuideRepository(guides ...entities.Guide) *GuideRepository {
	r := &GuideRepository{guides: make(map[string]entities.Guide, len(guides))}
	for _, g := range guides {
		r.guides[g.ID] = g
	}
	return r
}

func (r *GuideRepository) GetByID(_ context.Context, id string) (entities.Guide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guides[id], nil
}

// Put adds or replaces a guide.
func (r *GuideRepository) Put(g entities.Guide) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guides[g.ID] = g
}

// ClientRepository is a read-only client directory.
type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]entities.Client
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(clients ...entities.Client) *ClientRepository {
	r := &ClientRepository{clients: make(map[string]entities.Client, len(clients))}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients[id], nil
}

// CounterRepository issues monotonic counters.
type CounterRepository struct {
	mu     sync.Mutex
	values map[string]int
}

var _ interfaces.ICounterRepository = (*CounterRepository)(nil)

func NewCounterRepository() *CounterRepository {
	return &CounterRepository{values: make(map[string]int)}
}

func (r *CounterRepository) Next(_ context.Context, name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name]++
	return r.values[name], nil
}

func sortBookings(rows []entities.Booking) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return strings.Compare(a.ID, b.ID) < 0
	})
}
