package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	AdminPort      string
	DBPath         string
	SeedFile       string
	RateLimitRPS   float64
	RateLimitBurst int
	GinMode        string

	KVEndpoint  string
	KVNamespace string
	KVToken     string
	KVKey       string

	SyncDebounce    time.Duration
	RefreshInterval time.Duration
}

func Load() *Config {
	return &Config{
		Port:           envOrDefault("PORT", "8080"),
		AdminPort:      envOrDefault("ADMIN_PORT", "9090"),
		DBPath:         envOrDefault("DB_PATH", "/data/planner.db"),
		SeedFile:       os.Getenv("SEED_FILE"),
		RateLimitRPS:   envOrDefaultFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: envOrDefaultInt("RATE_LIMIT_BURST", 20),
		GinMode:        envOrDefault("GIN_MODE", "release"),

		KVEndpoint:  os.Getenv("KV_ENDPOINT"),
		KVNamespace: os.Getenv("KV_NAMESPACE"),
		KVToken:     os.Getenv("KV_TOKEN"),
		KVKey:       envOrDefault("KV_KEY", "main"),

		SyncDebounce:    envOrDefaultDuration("SYNC_DEBOUNCE", 500*time.Millisecond),
		RefreshInterval: envOrDefaultDuration("REFRESH_INTERVAL", 30*time.Second),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func envOrDefaultFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
