// Package config centralises configuration parsing for the tracker.
package config

import (
	"os"
	"strconv"
)

// Config captures runtime configuration values.
type Config struct {
	Addr          string
	WebDir        string
	Store         string // memory | file | redis | postgres
	DataFile      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresURL   string
	CatalogFile   string // optional; empty means the built-in catalog
	HistoryDays   int    // default lookback for the daily champions view
}

// Load reads environment variables into Config, applying sensible
// defaults for local dev.
func Load() Config {
	return Config{
		Addr:          getEnv("ADDR", ":8080"),
		WebDir:        getEnv("WEB_DIR", "web"),
		Store:         getEnv("STORE", "file"),
		DataFile:      getEnv("DATA_FILE", "data/data.json"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),
		PostgresURL:   getEnv("DATABASE_URL", ""),
		CatalogFile:   getEnv("CATALOG_FILE", ""),
		HistoryDays:   getIntEnv("HISTORY_DAYS", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
