package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	APIBaseURL      string
	HTTPTimeout     time.Duration
	RefreshInterval time.Duration
	DefaultPageSize int
	GinMode         string
}

func Load() *Config {
	// Optional .env for local runs; real env always wins.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		APIBaseURL:      getEnv("API_BASE_URL", "https://recruit.paysbypays.com/api/v1"),
		HTTPTimeout:     getDuration("HTTP_TIMEOUT", 10*time.Second),
		RefreshInterval: getDuration("REFRESH_INTERVAL", 5*time.Minute),
		DefaultPageSize: getInt("DEFAULT_PAGE_SIZE", 7),
		GinMode:         getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
