package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [paths...]",
		Short: "Verify that cipher texts and one-time-pads pair up, without decrypting",
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg, v, ".")(cmd, args)
		},
		RunE: run(cfg, logic.RunCheck),
	}

	cmd.Flags().StringP("pad", "p", "", "One-time-pad to check against (single file only)")

	return cmd
}
