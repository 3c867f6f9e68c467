package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the composer service reads from the environment.
type Config struct {
	Addr           string        // listen address, default :8081
	BackendBaseURL string        // listing backend, e.g. http://localhost:8000/api
	JWTSecret      string        // shared with the backend
	RequestTimeout time.Duration // outbound call timeout
	SessionTTL     time.Duration // idle composer sessions are swept after this
	SweepInterval  time.Duration
}

// Load reads .env (if present) and the process environment.
// BACKEND_BASE_URL and JWT_SECRET are mandatory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           getEnv("ADDR", ":8081"),
		BackendBaseURL: os.Getenv("BACKEND_BASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT_SECONDS", 20*time.Second),
		SessionTTL:     getDuration("SESSION_TTL_SECONDS", 2*time.Hour),
		SweepInterval:  getDuration("SESSION_SWEEP_SECONDS", 10*time.Minute),
	}

	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	return cfg, nil
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
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
