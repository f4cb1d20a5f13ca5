// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration for the API service.
type Config struct {
	Port        string
	DatabaseURL string

	// GeminiAPIKey is optional. Without it the chat assistant runs in
	// keyword-only mode.
	GeminiAPIKey string

	// JobsFallbackAll restores the legacy behavior of listing every job when
	// no active job exists. Meant for unseeded dev environments only; keep it
	// off in production.
	JobsFallbackAll bool
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:            port,
		DatabaseURL:     dbURL,
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		JobsFallbackAll: os.Getenv("JOBS_FALLBACK_ALL") == "true",
	}, nil
}
