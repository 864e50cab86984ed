// Package config holds the runtime configuration of the otp tool.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/idelchi/gogen/pkg/validator"
)

// Suffixes controls how output and pad paths are derived from input paths.
type Suffixes struct {
	// Encrypt is appended to encrypted files
	Encrypt string `label:"--encrypt-ext" mapstructure:"encrypt-ext" validate:"required,nefield=Pad"`

	// Decrypt is appended to decrypted files, after stripping Encrypt
	Decrypt string `mapstructure:"decrypt-ext"`

	// Pad is appended to one-time-pad files
	Pad string `label:"--pad-ext" mapstructure:"pad-ext" validate:"required"`
}

// Config is the configuration shared by all commands.
type Config struct {
	// Show prints the configuration and exits
	Show bool

	// Parallel is the number of files processed at once
	Parallel int `label:"--parallel" validate:"min=1"`

	// Quiet suppresses non-error output
	Quiet bool

	// Verbose enables debug output
	Verbose bool

	// Delete removes the input file after a successful run
	Delete bool

	// Dry lists what would be processed without touching any file
	Dry bool

	// Stats prints a summary after processing
	Stats bool

	// PreserveTimestamps copies the input modification time to outputs
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// MaxSize is the largest accepted input, as a human readable size. "0" disables the limit.
	MaxSize string `label:"--max-size" mapstructure:"max-size" validate:"required,bytesize"`

	Suffixes Suffixes `mapstructure:",squash"`

	// Include and Exclude filter files found while walking directories
	Include     []string
	Exclude     []string
	IncludeFrom string `label:"--include-from" mapstructure:"include-from" validate:"omitempty,file"`
	ExcludeFrom string `label:"--exclude-from" mapstructure:"exclude-from" validate:"omitempty,file"`

	// Pad overrides the derived one-time-pad path, single file only
	Pad string

	// Output overrides the derived output path, single file only
	Output string

	// Decrypt is set by the decrypt command
	Decrypt bool `mapstructure:"-"`

	// Files holds the positional arguments, and after resolution the files to process
	Files []string `label:"paths" mapstructure:"-" validate:"min=1"`
}

// ErrSingleFileOnly is returned when a path override is used with more than one file.
var ErrSingleFileOnly = errors.New("--pad and --output require exactly one file")

// Validate validates the configuration against the struct tags.
// Every failing field is reported, each wrapping validator.ErrValidation.
func (c *Config) Validate() error {
	validate := validator.NewValidator()

	if err := registerByteSize(validate); err != nil {
		return err
	}

	if errs := validate.Validate(c); len(errs) > 0 {
		return fmt.Errorf("validating configuration: %w", errors.Join(errs...))
	}

	return nil
}

// CheckOverrides rejects --pad and --output once files have been resolved to more than one.
func (c *Config) CheckOverrides() error {
	if (c.Pad != "" || c.Output != "") && len(c.Files) != 1 {
		return fmt.Errorf("%w: got %d", ErrSingleFileOnly, len(c.Files))
	}

	return nil
}

// MaxBytes returns MaxSize in bytes, 0 meaning unlimited.
func (c *Config) MaxBytes() (int64, error) {
	size, err := humanize.ParseBytes(c.MaxSize)
	if err != nil {
		return 0, fmt.Errorf("parsing max size %q: %w", c.MaxSize, err)
	}

	if size > math.MaxInt64 {
		return 0, fmt.Errorf("max size %q is out of range", c.MaxSize)
	}

	return int64(size), nil
}
