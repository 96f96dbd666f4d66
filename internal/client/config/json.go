package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/tablekeeper/internal/flagx"
	"github.com/dmitrijs2005/tablekeeper/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. timex.Duration
// lets files specify the timeout either as a string like "10s" or as integer
// nanoseconds. Absent fields leave the current value alone.
type jsonConfig struct {
	ServerAddr     *string         `json:"server_addr"`
	APIPrefix      *string         `json:"api_prefix"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DataDir        *string         `json:"data_dir"`
	LogLevel       *string         `json:"log_level"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// No flag means no JSON layer.
func parseJSON(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerAddr != nil {
		cfg.ServerAddr = *jc.ServerAddr
	}
	if jc.APIPrefix != nil {
		cfg.APIPrefix = *jc.APIPrefix
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
