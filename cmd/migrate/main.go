package main

import (
	"flag"
	"os"

	"turismo_agenda/internal/infrastructure/config"
	"turismo_agenda/internal/infrastructure/database"
	"turismo_agenda/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// Applies the SQL migrations of the Postgres store. Use -down to revert the
// latest one.
func main() {
	down := flag.Bool("down", false, "revert the most recent migration")
	flag.Parse()

	cfg := config.Load()
	log := logger.NewLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	url := cfg.Postgres.MigrationURL()
	if url == "" {
		log.Error("DATABASE_URL or DIRECT_URL must be set")
		os.Exit(1)
	}

	run, action := database.Migrate, "up"
	if *down {
		run, action = database.Rollback, "down"
	}
	if err := run(cfg.Postgres.MigrationsPath, url); err != nil {
		log.Error("migration failed", "action", action, "path", cfg.Postgres.MigrationsPath, "err", err)
		os.Exit(1)
	}
	log.Info("migrations applied", "action", action, "path", cfg.Postgres.MigrationsPath)
}
