package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultTimezone is the IANA zone day keys are derived in when the
	// environment does not override it.
	DefaultTimezone = "Asia/Seoul"
	// DefaultUserEmail identifies the local single-user account.
	DefaultUserEmail = "me@localhost"
)

// Config holds runtime configuration resolved from the environment. A .env
// file next to the working directory is loaded first; real environment
// variables win over it.
type Config struct {
	DBPath   string
	Timezone string
	LogDir   string
	Email    string
	Debug    bool
}

// Load resolves configuration from CHECKDAYS_* environment variables with
// sensible defaults under the user's config directory.
func Load() (*Config, error) {
	// Missing .env is fine; only a malformed one is an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configDir, err := defaultConfigDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:   envOr("CHECKDAYS_DB", filepath.Join(configDir, "checkdays.db")),
		Timezone: envOr("CHECKDAYS_TZ", DefaultTimezone),
		LogDir:   envOr("CHECKDAYS_LOG_DIR", filepath.Join(configDir, "logs")),
		Email:    envOr("CHECKDAYS_USER", DefaultUserEmail),
		Debug:    os.Getenv("CHECKDAYS_DEBUG") != "",
	}
	return cfg, nil
}

// Location resolves the configured timezone. Day boundaries follow this zone,
// so two machines with the same setting agree on what "today" means.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "checkdays"), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
