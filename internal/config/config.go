package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	Port            string
	StorageDriver   string
	DatabaseURL     string
	MigrationsDir   string
	AllowOrigins    []string
	LogstashTCPAddr string
	SeedDemoData    bool
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	driver := strings.ToLower(getenv("STORAGE_DRIVER", DriverMemory))

	return Config{
		Port:            getenv("PORT", "8080"),
		StorageDriver:   driver,
		DatabaseURL:     getenv("DATABASE_URL", ""),
		MigrationsDir:   getenv("MIGRATIONS_DIR", "migrations"),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		SeedDemoData:    getenv("SEED_DEMO_DATA", "true") == "true",
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
