package config_test

import (
	"testing"
	"time"

	"github.com/bayufn/artha/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("INSIGHT_API_KEY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.UserID != "local" {
		t.Fatalf("expected default user ID local, got %q", cfg.UserID)
	}

	if cfg.ActivationCode == "" {
		t.Fatalf("expected default activation code to be set")
	}

	if cfg.InsightAPIKey != "" {
		t.Fatalf("expected insight API key default to be empty, got %q", cfg.InsightAPIKey)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.InsightTTL != 24*time.Hour {
		t.Fatalf("expected default insight TTL 24h, got %s", cfg.InsightTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SAVE_DEBOUNCE", "5s")
	t.Setenv("USER_ID", "primary")
	t.Setenv("ACTIVATION_CODE", "OPEN-SESAME")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.SaveDebounce != 5*time.Second {
		t.Fatalf("expected save debounce override, got %s", cfg.SaveDebounce)
	}

	if cfg.UserID != "primary" || cfg.ActivationCode != "OPEN-SESAME" {
		t.Fatalf("expected tenant overrides, got user=%s code=%s", cfg.UserID, cfg.ActivationCode)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
