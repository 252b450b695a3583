package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/nvpwelfare/portal/internal/flagx"
)

// FlagNames lists the value-taking flags understood by the client, including
// the config file selector.
var FlagNames = []string{"-a", "-d", "-o", "-l", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags. Only
// the flags it knows are looked at, so other arguments pass through.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-o", "-l"})

	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BackendURL, "a", cfg.BackendURL, "backend API base URL")
	fs.StringVar(&cfg.StateDSN, "d", cfg.StateDSN, "state database path")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "output directory for documents")
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "listen address of the local portal")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
