package interfaces

import "context"

// Counter names used by the engine.
const (
	CounterOrders  = "orders"
	CounterBudgets = "budgets"
)

// ICounterRepository issues monotonic counters. Next atomically increments the
// named counter and returns the new value, starting at 1.
type ICounterRepository interface {
	Next(ctx context.Context, name string) (int, error)
}
