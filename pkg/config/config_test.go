package config_test

import (
	"testing"
	"time"

	"github.com/mariposa/wedding-rsvp/pkg/config"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	if _, err := config.Load(); err == nil {
		t.Fatal("Load succeeded without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_PASSWORD", "")
	if _, err := config.Load(); err == nil {
		t.Fatal("Load succeeded without ADMIN_PASSWORD")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Server.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Server.Port)
	}
	if !cfg.Email.DevMode {
		t.Error("Email.DevMode should default to true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("PORT", "9999")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %v, want 2h", cfg.Auth.TokenTTL)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Server.Port)
	}
}
