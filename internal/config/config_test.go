package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/phr_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.TokenTTL() != 24*time.Hour {
		t.Errorf("expected default token TTL 24h, got %s", cfg.TokenTTL())
	}
	if !cfg.IsDev() {
		t.Error("expected default ENV to be development")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestValidate_RequiresTokenSecret(t *testing.T) {
	cfg := &Config{Env: "production", BcryptCost: 12, TokenTTLHours: 24}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when TOKEN_SECRET is missing and auth enabled")
	}

	cfg.AuthDisabled = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error with AUTH_DISABLED: %v", err)
	}
}

func TestValidate_BcryptCostBounds(t *testing.T) {
	cfg := &Config{AuthDisabled: true, BcryptCost: 4, TokenTTLHours: 24}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for bcrypt cost below bound")
	}
	cfg.BcryptCost = 12
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
