package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultBriaBaseURL = "https://engine.prod.bria-api.com/v1"

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	LogLevel         string
	BriaAPIKey       string
	BriaBaseURL      string
	BriaTimeout      time.Duration
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	MaxUploadBytes   int64
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// BRIA_API_KEY is optional: callers may send their own key with each request.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8000"),
		LogLevel:         strings.ToLower(os.Getenv("LOG_LEVEL")),
		BriaAPIKey:       strings.TrimSpace(os.Getenv("BRIA_API_KEY")),
		BriaBaseURL:      strings.TrimRight(getEnv("BRIA_BASE_URL", defaultBriaBaseURL), "/"),
		BriaTimeout:      time.Second * time.Duration(getEnvInt("BRIA_REQUEST_TIMEOUT_SECONDS", 120)),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 180)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_MB", 25)) << 20,
	}
	if cfg.RateLimitPerMin < 0 {
		cfg.RateLimitPerMin = 0
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 25 << 20
	}
	return cfg, nil
}

// APIKeyConfigured reports whether a process-wide default credential is set.
func (c *Config) APIKeyConfigured() bool {
	return c != nil && c.BriaAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}
