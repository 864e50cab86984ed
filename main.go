// Command otp encrypts and decrypts files with one-time-pads.
package main

import (
	"os"

	"github.com/idelchi/otp/internal/commands"
	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/printer"
)

// version is set at build time through ldflags.
var version = "unknown - unofficial & generated by unknown" //nolint:gochecknoglobals

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		printer.New(false, false).Errorf("%v", err)

		os.Exit(commands.ExitCode(err))
	}
}
