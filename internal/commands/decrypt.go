package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [paths...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt files with their one-time-pads",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg, v, ".")(cmd, args)
		},
		RunE: run(cfg, logic.Run),
	}

	addPathOverrides(cmd,
		"Read the one-time-pad from this path (single file only)",
		"Write the plain text to this path (single file only)")

	return cmd
}
