package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Storage. An empty DatabaseURL keeps everything in memory.
	DatabaseURL string
	RedisURL    string // limiter storage; empty uses in-process storage

	// Catalog
	CatalogFile string // YAML answer catalog; empty uses the built-in catalog

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RateLimitMax int // requests per minute per IP

	// Admin access
	AdminAPIKey  string
	OIDCIssuer   string
	OIDCClientID string

	// Logging
	LogLevel string
	LogFile  string

	// Review queue monitor
	ReviewMonitorInterval time.Duration
	ReviewQueueAlert      int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		CatalogFile:  getEnv("CATALOG_FILE", ""),
		CORSOrigins:  getEnv("CORS_ORIGINS", ""),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		AdminAPIKey:  getEnv("ADMIN_API_KEY", ""),
		OIDCIssuer:   getEnv("OIDC_ISSUER", ""),
		OIDCClientID: getEnv("OIDC_CLIENT_ID", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", ""),

		ReviewMonitorInterval: getEnvDuration("REVIEW_MONITOR_INTERVAL", 5*time.Minute),
		ReviewQueueAlert:      getEnvInt("REVIEW_QUEUE_ALERT", 25),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// UsesDatabase returns true if a Postgres store is configured.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// AdminAuthEnabled returns true if admin endpoints require credentials.
func (c *Config) AdminAuthEnabled() bool {
	return c.AdminAPIKey != "" || c.OIDCIssuer != ""
}

// AllowedOrigins returns the CORS origin list, defaulting to BaseURL.
func (c *Config) AllowedOrigins() []string {
	raw := c.BaseURL
	if c.CORSOrigins != "" {
		raw = c.CORSOrigins
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
