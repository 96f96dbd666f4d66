// Package config assembles runtime settings for the TableKeeper CLI from
// four layers, later layers overriding earlier ones:
//
//	struct defaults → JSON file (-c/-config) → environment → flags
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the TableKeeper CLI.
type Config struct {
	// ServerAddr is the backend origin, e.g. "http://localhost:8080".
	ServerAddr string
	// APIPrefix is prepended to every request path.
	APIPrefix string
	// RequestTimeout bounds each HTTP round trip.
	RequestTimeout time.Duration
	// DataDir stores the persisted session and the local cache database.
	DataDir string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// BaseURL is the fully prefixed endpoint base handed to the HTTP client.
func (c *Config) BaseURL() string {
	return c.ServerAddr + c.APIPrefix
}

// CacheDSN locates the local sqlite cache database.
func (c *Config) CacheDSN() string {
	return filepath.Join(c.DataDir, "cache.db")
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8080"
	c.APIPrefix = "/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.DataDir = defaultDataDir()
	c.LogLevel = "info"
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".tablekeeper"
	}
	return filepath.Join(base, "tablekeeper")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file (if requested), the environment, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
