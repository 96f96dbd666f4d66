package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tablekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend origin, e.g. http://localhost:8080
//	-t int      request timeout in seconds
//	-d string   data directory for session and cache
//
// os.Args is filtered to the flags handled here, via flagx.FilterArgs, so the
// config-file flags (-c/-config) and anything else pass through untouched.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "backend address")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	return nil
}
