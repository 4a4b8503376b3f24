package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Config holds all configuration for the pipeline.
type Config struct {
	AppEnv      string
	InputPath   string
	OutputPath  string
	PreviewRows int
	DBDriver    string
	DBPath      string
	RedisAddr   string
	CacheTTL    time.Duration
}

// LoadFromEnv loads configuration from environment variables, falling back
// to the built-in defaults for anything unset. An empty DB_PATH disables the
// run-snapshot store; an empty REDIS_ADDR disables the summary cache.
func LoadFromEnv() *Config {
	previewStr := getEnv("PREVIEW_ROWS", "20")
	preview, err := strconv.Atoi(previewStr)
	if err != nil || preview < 0 {
		preview = 20
	}

	ttlStr := getEnv("CACHE_TTL", "10m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 10 * time.Minute
	}

	return &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		InputPath:   getEnv("INPUT_PATH", "./input/employee_data.csv"),
		OutputPath:  getEnv("OUTPUT_PATH", "./outputs/task3/engagement_comparison.csv"),
		PreviewRows: preview,
		DBDriver:    getEnv("DB_DRIVER", "sqlite3"),
		DBPath:      getEnv("DB_PATH", "./data/engagement.db"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		CacheTTL:    ttl,
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
