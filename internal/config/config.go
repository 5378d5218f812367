package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds seeding tool configuration
type Config struct {
	DatabaseType string
	DatabaseURL  string
	DatabasePath string
	LogLevel     string
	LogFormat    string
	RandomSeed   *uint64 // nil means seed from entropy
	Timeline     string
	ReseedCron   string
}

// Load reads configuration from an optional .env file and the process environment
func Load() (*Config, error) {
	// A missing .env file is fine, the environment alone is enough
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseType: strings.ToLower(getEnv("DATABASE_TYPE", "sqlite")),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabasePath: getEnv("DB_PATH", "./kidsguard.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		Timeline:     getEnv("SEED_TIMELINE", "sequential"),
		ReseedCron:   getEnv("RESEED_CRON", "0 3 * * *"),
	}

	if raw := os.Getenv("SEED_RANDOM_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_RANDOM_SEED %q: %w", raw, err)
		}
		cfg.RandomSeed = &seed
	}

	return cfg, nil
}

// ConnectionString returns the single connection value for the configured database.
// SQLite falls back to DB_PATH when DATABASE_URL is unset.
func (c *Config) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DatabaseType == "sqlite" || c.DatabaseType == "sqlite3" || c.DatabaseType == "" {
		return c.DatabasePath
	}
	return ""
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
