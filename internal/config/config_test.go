package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Timezone != DefaultTimezone {
		t.Errorf("expected default timezone %q, got %q", DefaultTimezone, cfg.Timezone)
	}
	if cfg.Email != DefaultUserEmail {
		t.Errorf("expected default email %q, got %q", DefaultUserEmail, cfg.Email)
	}
	if filepath.Base(cfg.DBPath) != "checkdays.db" {
		t.Errorf("unexpected default db path: %s", cfg.DBPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CHECKDAYS_DB", "/tmp/custom.db")
	t.Setenv("CHECKDAYS_TZ", "UTC")
	t.Setenv("CHECKDAYS_USER", "other@example.com")
	t.Setenv("CHECKDAYS_DEBUG", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("expected overridden db path, got %s", cfg.DBPath)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("expected overridden timezone, got %s", cfg.Timezone)
	}
	if cfg.Email != "other@example.com" {
		t.Errorf("expected overridden email, got %s", cfg.Email)
	}
	if !cfg.Debug {
		t.Error("expected debug to be enabled")
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Asia/Seoul"}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("failed to resolve timezone: %v", err)
	}
	if loc.String() != "Asia/Seoul" {
		t.Errorf("expected Asia/Seoul, got %s", loc)
	}

	cfg.Timezone = "Not/AZone"
	if _, err := cfg.Location(); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
