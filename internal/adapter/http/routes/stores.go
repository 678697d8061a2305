package routes

import (
	"context"
	"fmt"

	"turismo_agenda/internal/adapter/persistence/memory"
	"turismo_agenda/internal/adapter/persistence/postgres"
	"turismo_agenda/internal/adapter/persistence/repository"
	"turismo_agenda/internal/infrastructure/config"
	"turismo_agenda/internal/infrastructure/database"
	"turismo_agenda/internal/usecase/interfaces"
	"turismo_agenda/pkg/logger"
)

type stores struct {
	bookings     interfaces.IBookingRepository
	budgets      interfaces.IBudgetRepository
	transactions interfaces.ITransactionRepository
	guides       interfaces.IGuideRepository
	clients      interfaces.IClientRepository
	counters     interfaces.ICounterRepository
}

// openStores builds the repositories for STORAGE_DRIVER. The returned func
// releases the underlying connections.
func openStores(ctx context.Context, cfg config.Config, log logger.Logger) (stores, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg.Dynamo)
		if err != nil {
			return stores{}, nil, err
		}
		log.Info("using dynamodb storage", "region", cfg.Dynamo.Region, "endpoint", cfg.Dynamo.Endpoint)
		return stores{
			bookings:     repository.NewBookingDynamoRepository(ddb),
			budgets:      repository.NewBudgetDynamoRepository(ddb),
			transactions: repository.NewTransactionDynamoRepository(ddb),
			guides:       repository.NewGuideDynamoRepository(ddb),
			clients:      repository.NewClientDynamoRepository(ddb),
			counters:     repository.NewCounterDynamoRepository(ddb),
		}, func() {}, nil

	case config.StoragePostgres:
		if cfg.Postgres.DatabaseURL == "" {
			return stores{}, nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
		pool, err := database.OpenPostgres(ctx, cfg.Postgres.DatabaseURL)
		if err != nil {
			return stores{}, nil, err
		}
		log.Info("using postgres storage")
		return stores{
			bookings:     postgres.NewBookingRepository(pool),
			budgets:      postgres.NewBudgetRepository(pool),
			transactions: postgres.NewTransactionRepository(pool),
			guides:       postgres.NewGuideRepository(pool),
			clients:      postgres.NewClientRepository(pool),
			counters:     postgres.NewCounterRepository(pool),
		}, pool.Close, nil

	case config.StorageMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		return newMemoryStores(), func() {}, nil

	default:
		return stores{}, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func newMemoryStores() stores {
	return stores{
		bookings:     memory.NewBookingRepository(),
		budgets:      memory.NewBudgetRepository(),
		transactions: memory.NewTransactionRepository(),
		guides:       memory.NewGuideRepository(),
		clients:      memory.NewClientRepository(),
		counters:     memory.NewCounterRepository(),
	}
}
