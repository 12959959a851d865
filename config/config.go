// Package config loads run configuration from the environment, with a
// .env file honored for local development. Flags override these values.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunable settings for a catalog run.
type Config struct {
	BaseURL         string
	OutputDir       string
	EvaluationsPath string
	Workers         int
}

// Load reads the configuration, applying defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BaseURL:         getEnv("CATALOG_BASE_URL", "http://student.mit.edu/catalog/"),
		OutputDir:       getEnv("CATALOG_OUTPUT_DIR", "catalog-out"),
		EvaluationsPath: getEnv("CATALOG_EVALUATIONS", ""),
		Workers:         getEnvInt("CATALOG_WORKERS", 4),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
