package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrijs2005/tablekeeper/internal/timex"
)

// envConfig is the DTO for the environment layer. Pointer fields distinguish
// "unset" from an explicit empty value.
type envConfig struct {
	ServerAddr     *string         `env:"SERVER_ADDR"`
	APIPrefix      *string         `env:"API_PREFIX"`
	RequestTimeout *timex.Duration `env:"REQUEST_TIMEOUT"`
	DataDir        *string         `env:"DATA_DIR"`
	LogLevel       *string         `env:"LOG_LEVEL"`
}

// parseEnv overlays cfg with TABLEKEEPER_-prefixed environment variables.
func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: "TABLEKEEPER_"}); err != nil {
		return err
	}

	if ec.ServerAddr != nil {
		cfg.ServerAddr = *ec.ServerAddr
	}
	if ec.APIPrefix != nil {
		cfg.APIPrefix = *ec.APIPrefix
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(ec.RequestTimeout.Duration)
	}
	if ec.DataDir != nil {
		cfg.DataDir = *ec.DataDir
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
	return nil
}
