package logic

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/encryption"
	"github.com/idelchi/otp/internal/otp"
	"github.com/idelchi/otp/internal/printer"
)

// RunCheck verifies that every selected cipher text has a usable one-time-pad:
// both exist, neither is empty or oversized, and their lengths agree.
// Nothing is decrypted.
func RunCheck(cfg *config.Config, out *printer.Printer) error {
	cfg.Decrypt = true

	if _, err := resolveFiles(cfg, out); err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	maxSize, err := cfg.MaxBytes()
	if err != nil {
		return err
	}

	transform := otp.New(nil, maxSize)

	var (
		failures int
		first    error
	)

	for _, file := range cfg.Files {
		size, err := checkPair(transform, file, cfg)
		if err != nil {
			out.Errorf("%q: %v", file, err)

			failures++

			if first == nil {
				first = err
			}

			continue
		}

		out.Infof("%q: ok (%s)", file, humanize.IBytes(uint64(size))) //nolint:gosec // validated positive
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d pair(s) failed: %w", failures, len(cfg.Files), first)
	}

	return nil
}

func checkPair(transform *otp.Transform, file string, cfg *config.Config) (int64, error) {
	job, err := encryption.NewJob(file, cfg)
	if err != nil {
		return 0, err
	}

	cipher, err := os.Open(filepath.Clean(job.Input))
	if err != nil {
		return 0, fmt.Errorf("opening cipher text: %w", err)
	}
	defer cipher.Close()

	pad, err := os.Open(filepath.Clean(job.Pad))
	if err != nil {
		return 0, fmt.Errorf("opening one-time-pad: %w", err)
	}
	defer pad.Close()

	return transform.ValidatePair(cipher, pad)
}
