package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the server reads from the environment. A .env file is
// loaded when present; real deployments set variables directly.
type Config struct {
	Port            string
	SalonAPIBaseURL string

	SessionStore string // "redis" or "postgres"
	SessionTTL   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DatabaseURL string

	AllowedOrigins []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		SalonAPIBaseURL: os.Getenv("SALON_API_BASE_URL"),
		SessionStore:    getEnv("SESSION_STORE", "redis"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AllowedOrigins:  []string{getEnv("CORS_ALLOWED_ORIGIN", "*")},
	}

	if cfg.SalonAPIBaseURL == "" {
		return nil, fmt.Errorf("SALON_API_BASE_URL not set")
	}

	switch cfg.SessionStore {
	case "redis":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL not set but SESSION_STORE=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}

	ttlMinutes, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "30"))
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES")
	}
	cfg.SessionTTL = time.Duration(ttlMinutes) * time.Minute

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q", raw)
		}
		cfg.RedisDB = db
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
