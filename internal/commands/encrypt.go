package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] paths...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files, writing cipher text and a fresh one-time-pad",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = false

			return preRun(cfg, v)(cmd, args)
		},
		RunE: run(cfg, logic.Run),
	}

	addPathOverrides(cmd,
		"Write the one-time-pad to this path (single file only)",
		"Write the cipher text to this path (single file only)")

	return cmd
}
