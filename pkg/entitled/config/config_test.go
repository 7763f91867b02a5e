package config

import (
	"context"
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENTITLED_API_KEY", "secret-key")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.APIKeyHeader != "X-API-Key" {
		t.Errorf("Expected default header X-API-Key, got %s", cfg.APIKeyHeader)
	}
	if cfg.DBPath != "entitled.db" {
		t.Errorf("Expected default db path entitled.db, got %s", cfg.DBPath)
	}
	if cfg.APIKey != "secret-key" {
		t.Errorf("Expected api key from env, got %s", cfg.APIKey)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("ENTITLED_API_KEY", "")

	_, err := Load(context.Background())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENTITLED_API_KEY", "secret-key")
	t.Setenv("ENTITLED_API_KEY_HEADER", "X-Service-Token")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKeyHeader != "X-Service-Token" || cfg.Port != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
}
