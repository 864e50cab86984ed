// Package commands provides the command-line interface for the otp tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - checking cipher text and one-time-pad pairs
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/printer"
)

// preRun returns a PreRunE handler that loads flags and environment into cfg,
// resolves positional args into cfg.Files and validates the configuration.
// Without args, fallback is used.
func preRun(cfg *config.Config, v *viper.Viper, fallback ...string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Files = args
		if len(args) == 0 {
			cfg.Files = fallback
		}

		if cfg.Show {
			return nil
		}

		return cfg.Validate()
	}
}

// run wraps a workflow so that --show prints the configuration instead.
func run(cfg *config.Config, workflow func(*config.Config, *printer.Printer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Show {
			return show(cmd, cfg)
		}

		return workflow(cfg, printer.New(cfg.Quiet, cfg.Verbose))
	}
}

func show(cmd *cobra.Command, cfg *config.Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("rendering configuration: %w", err)
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), string(out)); err != nil {
		return fmt.Errorf("printing configuration: %w", err)
	}

	return nil
}
