package commands

import (
	"errors"

	"github.com/idelchi/otp/internal/otp"
)

// Exit codes reported by the otp binary.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitInvalidFileSize = 2
	ExitEntropy         = 3
	ExitSizeMismatch    = 4
)

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, otp.ErrInvalidFileSize):
		return ExitInvalidFileSize
	case errors.Is(err, otp.ErrEntropyUnavailable):
		return ExitEntropy
	case errors.Is(err, otp.ErrSizeMismatch):
		return ExitSizeMismatch
	default:
		return ExitFailure
	}
}
