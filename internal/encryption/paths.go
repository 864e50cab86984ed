package encryption

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/idelchi/otp/internal/config"
)

// ErrPathCollision is returned when a derived path would overwrite an input.
var ErrPathCollision = errors.New("derived path collides with an input")

// ErrPadExists is returned when encrypting would replace an existing one-time-pad.
var ErrPadExists = errors.New("one-time-pad already exists")

// Job names the three files taking part in one run.
type Job struct {
	// Input is the plain text when encrypting, the cipher text when decrypting
	Input string

	// Output is the cipher text when encrypting, the plain text when decrypting
	Output string

	// Pad is written when encrypting and read when decrypting
	Pad string
}

// NewJob derives output and pad paths for file.
//
// Encrypting "a.txt" yields "a.txt<encrypt-ext>" and "a.txt<pad-ext>".
// Decrypting "a.txt<encrypt-ext>" yields "a.txt<decrypt-ext>" and reads "a.txt<pad-ext>".
// --output and --pad replace the derived paths.
func NewJob(file string, cfg *config.Config) (Job, error) {
	base := file
	ext := cfg.Suffixes.Encrypt

	if cfg.Decrypt {
		base = strings.TrimSuffix(file, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	job := Job{
		Input:  file,
		Output: filepath.Join(filepath.Dir(base), filepath.Base(base)+ext),
		Pad:    filepath.Join(filepath.Dir(base), filepath.Base(base)+cfg.Suffixes.Pad),
	}

	if cfg.Output != "" {
		job.Output = cfg.Output
	}

	if cfg.Pad != "" {
		job.Pad = cfg.Pad
	}

	input := filepath.Clean(job.Input)

	switch {
	case filepath.Clean(job.Output) == input:
		return Job{}, fmt.Errorf("%w: output %q", ErrPathCollision, job.Output)
	case filepath.Clean(job.Pad) == input:
		return Job{}, fmt.Errorf("%w: one-time-pad %q", ErrPathCollision, job.Pad)
	case filepath.Clean(job.Pad) == filepath.Clean(job.Output):
		return Job{}, fmt.Errorf("%w: output and one-time-pad are both %q", ErrPathCollision, job.Output)
	}

	return job, nil
}
