package commands

import (
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/otp"
)

// EnvPrefix prefixes every environment variable read by the tool.
const EnvPrefix = "OTP"

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "otp [flags] command [flags]",
		Short: "One-time-pad file encryption utility",
		Long: `A one-time-pad file encryption utility.

Encryption XORs every byte of a file with a freshly drawn byte from the
operating system CSPRNG, writing the cipher text and the one-time-pad next to
the input. Decryption XORs the cipher text with its pad again.

A pad must never be reused. Keeping and destroying it is up to you.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.SetVersionTemplate("{{ .Version }}\n")

	flags := root.PersistentFlags()

	flags.Bool("show", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Print debug output")
	flags.BoolP("delete", "d", false, "Delete the input file after successful encryption/decryption")
	flags.Bool("dry", false, "Show what would be processed without doing it")
	flags.Bool("stats", false, "Print statistics after processing")
	flags.Bool("preserve-timestamps", false, "Copy the input modification time to the outputs")
	flags.String("max-size", humanize.IBytes(uint64(otp.DefaultMaxSize)), "Largest accepted input (e.g. 2GiB, 500MB), 0 for no limit")

	flags.String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
	flags.String("pad-ext", ".otp", "Suffix to append to one-time-pad files")

	flags.StringSlice("include", nil, "Only process files in directories matching these patterns")
	flags.StringSlice("exclude", nil, "Skip files in directories matching these patterns")
	flags.String("include-from", "", "Read include patterns from a JSONC file")
	flags.String("exclude-from", "", "Read exclude patterns from a JSONC file")

	root.AddCommand(
		NewEncryptCommand(cfg, v),
		NewDecryptCommand(cfg, v),
		NewCheckCommand(cfg, v),
	)

	return root
}

// addPathOverrides registers the single-file --pad and --output flags.
func addPathOverrides(cmd *cobra.Command, padUsage, outputUsage string) {
	cmd.Flags().StringP("pad", "p", "", padUsage)
	cmd.Flags().StringP("output", "o", "", outputUsage)
}
