package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine counters.
type Metrics struct {
	ConflictChecks    prometheus.Counter
	ConflictWarnings  *prometheus.CounterVec
	RetroactiveDenied prometheus.Counter
	OrdersCommitted   *prometheus.CounterVec
	BookingRowsWrite  prometheus.Counter
	PartialWrites     prometheus.Counter
	LedgerEntries     prometheus.Counter
	BudgetsPromoted   prometheus.Counter
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics registers the counters on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ConflictChecks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflict_checks_total",
			Help:      "The total number of candidate line-items checked",
		}),
		ConflictWarnings: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflict_warnings_total",
			Help:      "Advisory scheduling conflicts reported, by kind",
		}, []string{"kind"}),
		RetroactiveDenied: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retroactive_denied_total",
			Help:      "Line-items rejected for being dated before today",
		}),
		OrdersCommitted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_committed_total",
			Help:      "Orders written, by operation",
		}, []string{"operation"}),
		BookingRowsWrite: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rows_written_total",
			Help:      "Booking rows persisted",
		}),
		PartialWrites: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partial_order_writes_total",
			Help:      "Orders left partially written after a failed row write",
		}),
		LedgerEntries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_entries_total",
			Help:      "Ledger entries emitted by the status trigger",
		}),
		BudgetsPromoted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "budgets_promoted_total",
			Help:      "Approved budgets promoted into bookings",
		}),
		ErrorsCount: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

// Discard returns metrics bound to a private registry that nobody scrapes.
func Discard() *Metrics {
	return NewMetrics("discard", prometheus.NewRegistry())
}
