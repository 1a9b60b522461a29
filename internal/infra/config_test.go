package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BRIA_API_KEY", "")
	t.Setenv("BRIA_BASE_URL", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8000")
	}
	if cfg.BriaBaseURL != defaultBriaBaseURL {
		t.Fatalf("BriaBaseURL mismatch: got %q want %q", cfg.BriaBaseURL, defaultBriaBaseURL)
	}
	if cfg.APIKeyConfigured() {
		t.Fatalf("expected no default api key")
	}
	if cfg.MaxUploadBytes != 25<<20 {
		t.Fatalf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 25<<20)
	}
	if cfg.RateLimitPerMin != 60 {
		t.Fatalf("RateLimitPerMin = %d, want 60", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigTrimsAPIKeyAndBaseURL(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "  secret-token \n")
	t.Setenv("BRIA_BASE_URL", "https://bria.example.com/v1/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.BriaAPIKey != "secret-token" {
		t.Fatalf("BriaAPIKey = %q, want secret-token", cfg.BriaAPIKey)
	}
	if !cfg.APIKeyConfigured() {
		t.Fatalf("expected api key to be configured")
	}
	if cfg.BriaBaseURL != "https://bria.example.com/v1" {
		t.Fatalf("BriaBaseURL = %q", cfg.BriaBaseURL)
	}
}

func TestLoadConfigNumericOverrides(t *testing.T) {
	t.Setenv("BRIA_REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-3")
	t.Setenv("HTTP_IDLE_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.BriaTimeout != 5*time.Second {
		t.Fatalf("BriaTimeout = %v, want 5s", cfg.BriaTimeout)
	}
	if cfg.MaxUploadBytes != 2<<20 {
		t.Fatalf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 2<<20)
	}
	if cfg.RateLimitPerMin != 0 {
		t.Fatalf("negative rate limit should disable limiting, got %d", cfg.RateLimitPerMin)
	}
	if cfg.HTTPIdleTimeout != 60*time.Second {
		t.Fatalf("HTTPIdleTimeout = %v, want fallback 60s", cfg.HTTPIdleTimeout)
	}
}
