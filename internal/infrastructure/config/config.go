package config

import (
	"os"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type DynamoConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type PostgresConfig struct {
	DatabaseURL    string
	DirectURL      string
	MigrationsPath string
}

// Config is read once at startup. Table names are resolved by each DynamoDB
// repository from its own *_TABLE variable.
type Config struct {
	Port             string
	LogLevel         string
	StorageDriver    string
	Timezone         string
	NightKeywords    []string
	MetricsNamespace string
	Dynamo           DynamoConfig
	Postgres         PostgresConfig
}

func Load() Config {
	return Config{
		Port:             getenvDefault("PORT", "8080"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		StorageDriver:    strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		Timezone:         getenvDefault("APP_TIMEZONE", "America/Sao_Paulo"),
		NightKeywords:    splitCSV(os.Getenv("NIGHT_TOUR_KEYWORDS")),
		MetricsNamespace: getenvDefault("METRICS_NAMESPACE", "turismo_agenda"),
		Dynamo: DynamoConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Postgres: PostgresConfig{
			DatabaseURL:    os.Getenv("DATABASE_URL"),
			DirectURL:      os.Getenv("DIRECT_URL"),
			MigrationsPath: getenvDefault("MIGRATIONS_PATH", "file://migrations"),
		},
	}
}

// ResolveLocation loads APP_TIMEZONE, the zone that defines "today". The zone
// database is embedded, so an error means the name itself is wrong.
func (c Config) ResolveLocation() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// MigrationURL prefers DIRECT_URL: poolers such as PgBouncer cannot run migrations.
func (c PostgresConfig) MigrationURL() string {
	if strings.TrimSpace(c.DirectURL) != "" {
		return c.DirectURL
	}
	return c.DatabaseURL
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
