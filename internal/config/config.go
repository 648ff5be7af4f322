package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	PGHost     string
	PGPort     int
	PGUser     string
	PGPassword string
	PGDatabase string

	RegistryPath string
	ExportPath   string
	ExportMode   string
	FetchTimeout time.Duration
	FetchRetries int
	LogLevel     string
}

func Load() Config {
	return Config{
		PGHost:     getenv("POSTGRES_HOST", "localhost"),
		PGPort:     parseIntEnv("POSTGRES_PORT", 5432),
		PGUser:     getenv("POSTGRES_USER", "postgres"),
		PGPassword: getenv("POSTGRES_PASSWORD", "changeme"),
		PGDatabase: getenv("POSTGRES_DBNAME", "newswire"),

		RegistryPath: getenv("NEWSWIRE_REGISTRY", ""),
		ExportPath:   getenv("EXPORT_PATH", "news_data.csv"),
		ExportMode:   getenv("EXPORT_MODE", "overwrite"),
		FetchTimeout: parseDurationEnv("FETCH_TIMEOUT", 15*time.Second),
		FetchRetries: parseIntEnv("FETCH_RETRIES", 0),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
