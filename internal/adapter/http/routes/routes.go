package routes

import (
	"context"
	"net/http"
	"time"

	_ "turismo_agenda/docs" // swagger spec registration
	"turismo_agenda/internal/adapter/http/handlers"
	"turismo_agenda/internal/domain/scheduling"
	"turismo_agenda/internal/infrastructure/config"
	"turismo_agenda/internal/usecase"
	"turismo_agenda/pkg"
	"turismo_agenda/pkg/logger"
	"turismo_agenda/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Orders       *handlers.OrderHandler
	Budgets      *handlers.BudgetHandler
	Transactions *handlers.TransactionHandler
}

// Run wires the configured store into the use cases and serves HTTP until
// the listener fails.
func Run() {
	cfg := config.Load()
	log := logger.NewLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	st, closeStores, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.StorageDriver, "err", err)
		return
	}
	defer closeStores()

	m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)
	h := buildHandlers(cfg, st, log, m)

	router := NewRouter(h, log, promhttp.Handler())
	log.Info("starting server", "port", cfg.Port, "driver", cfg.StorageDriver, "timezone", cfg.Timezone)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("failed to start the application", "err", err)
	}
}

// businessLocation is the zone that defines "today" for every date rule.
func businessLocation(cfg config.Config, log logger.Logger) *time.Location {
	loc, err := cfg.ResolveLocation()
	if err != nil {
		log.Warn("unknown APP_TIMEZONE, using UTC", "timezone", cfg.Timezone, "err", err)
		return time.UTC
	}
	return loc
}

func buildHandlers(cfg config.Config, st stores, log logger.Logger, m *metrics.Metrics) Handlers {
	loc := businessLocation(cfg, log)
	clock := func() time.Time { return time.Now().In(loc) }
	checker := scheduling.NewChecker(scheduling.NewNightClassifier(cfg.NightKeywords...))

	ledger := usecase.NewLedgerTrigger(st.transactions, log.With("component", "ledger"), m).WithClock(clock)
	orders := usecase.NewOrderUseCase(st.bookings, st.counters, st.guides, st.clients, ledger, checker, log.With("component", "orders"), m).
		WithClock(clock)
	budgets := usecase.NewBudgetUseCase(st.budgets, st.counters, st.clients, orders, checker, log.With("component", "budgets"), m).
		WithClock(clock)

	return Handlers{
		Orders:       handlers.NewOrderHandler(orders),
		Budgets:      handlers.NewBudgetHandler(budgets),
		Transactions: handlers.NewTransactionHandler(ledger),
	}
}

// NewRouter mounts the API, swagger and metrics routes.
func NewRouter(h Handlers, log logger.Logger, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSchedulingRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, log logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
	router.Use(errorLogger(log))
}

// errorLogger logs the errors handlers attached to the context.
func errorLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		for _, e := range c.Errors {
			if c.Writer.Status() >= http.StatusInternalServerError {
				log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "status", c.Writer.Status(), "err", e.Err)
				continue
			}
			log.Debug("request rejected", "method", c.Request.Method, "path", c.FullPath(), "status", c.Writer.Status(), "err", e.Err)
		}
	}
}
