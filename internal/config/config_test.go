package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.Lang != "en-us" {
		t.Errorf("Lang = %q", cfg.Lang)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.RetryAttempts != 3 {
		t.Errorf("RetryAttempts = %d", cfg.RetryAttempts)
	}
	if cfg.FetchBudget != 60 {
		t.Errorf("FetchBudget = %d", cfg.FetchBudget)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SKILL_LANG", "pt-pt")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("DATABASE_URL", "postgres://localhost/skill")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lang != "pt-pt" {
		t.Errorf("Lang = %q", cfg.Lang)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.DatabaseURL == "" {
		t.Errorf("DatabaseURL not read")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("RETRY_ATTEMPTS", "0")
	if _, err := Load(); err == nil {
		t.Errorf("expected error for zero retry attempts")
	}
}
