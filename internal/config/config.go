// Package config reads server settings from the environment. A .env
// file, when present, is loaded by the main package before this runs.
package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultAddr          = ":8080"
	defaultSessionTTL    = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

type Config struct {
	Addr          string
	BasePath      string
	LogFile       string
	SessionTTL    time.Duration
	SweepInterval time.Duration
	Development   bool
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:          defaultAddr,
		BasePath:      os.Getenv("MINEFIELD_BASE_PATH"),
		LogFile:       os.Getenv("MINEFIELD_LOG_FILE"),
		SessionTTL:    defaultSessionTTL,
		SweepInterval: defaultSweepInterval,
		Development:   Development(),
	}

	if addr, ok := os.LookupEnv("MINEFIELD_ADDR"); ok {
		cfg.Addr = addr
	}

	if ttl, ok := os.LookupEnv("MINEFIELD_SESSION_TTL"); ok {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid MINEFIELD_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if interval, ok := os.LookupEnv("MINEFIELD_SWEEP_INTERVAL"); ok {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid MINEFIELD_SWEEP_INTERVAL: %w", err)
		}
		cfg.SweepInterval = d
	}

	return cfg, nil
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
