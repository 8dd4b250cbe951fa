package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultTokenSecret = "dev-secret-change-in-production"

type Config struct {
	Port           string
	Env            string
	TokenSecret    string
	TokenExpiry    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	AllowedOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		TokenSecret:    getEnv("TOKEN_SECRET", defaultTokenSecret),
		TokenExpiry:    getDuration("TOKEN_EXPIRY", 24*time.Hour),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
		AllowedOrigins: strings.Split(getEnv("CORS_ORIGIN", "*"), ","),
	}

	if cfg.Env == "production" && cfg.TokenSecret == defaultTokenSecret {
		slog.Error("TOKEN_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
