package encryption

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/fileutil"
	"github.com/idelchi/otp/internal/otp"
	"github.com/idelchi/otp/internal/printer"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// transform does the byte level work
	transform *otp.Transform

	// out reports progress and failures
	out *printer.Printer

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// Summary counts the outcome of ProcessFiles.
type Summary struct {
	Processed int
	Errored   int
	TotalSize int64
}

// NewProcessor creates a Processor drawing pads from source.
func NewProcessor(cfg *config.Config, source otp.PadSource, out *printer.Printer) (*Processor, error) {
	maxSize, err := cfg.MaxBytes()
	if err != nil {
		return nil, err
	}

	return &Processor{
		cfg:       cfg,
		transform: otp.New(source, maxSize),
		out:       out,
		results:   make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles concurrently encrypts or decrypts every configured file.
// All files are attempted; the first error is returned once every worker is done.
//
//nolint:cyclop
func (p *Processor) ProcessFiles() (Summary, error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	var summary Summary

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				summary.Errored++

				p.out.Errorf("processing %q: %v", result.Input, result.Error)

				continue
			}

			summary.Processed++
			summary.TotalSize += result.Size

			if p.cfg.Decrypt {
				p.out.Infof("Processed %q + %q -> %q", result.Input, result.Pad, result.Output)
			} else {
				p.out.Infof("Processed %q -> %q + %q", result.Input, result.Output, result.Pad)
			}

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					p.out.Errorf("deleting %q: %v", result.Input, err)
				} else {
					p.out.Infof("Deleted %q", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			job, err := NewJob(file, p.cfg)
			if err != nil {
				p.results <- Result{Job: Job{Input: file}, Error: err}

				return err
			}

			size, err := p.processFile(job)
			if err != nil {
				p.results <- Result{Job: job, Error: err}

				return err
			}

			p.results <- Result{Job: job, Size: size}

			return nil
		})
	}

	err := group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return summary, fmt.Errorf("processing files: %w", err)
	}

	return summary, nil
}

func (p *Processor) processFile(job Job) (int64, error) {
	if p.cfg.Decrypt {
		return p.DecryptFile(job)
	}

	return p.EncryptFile(job)
}

// EncryptFile encrypts job.Input into job.Output, writing the fresh pad to job.Pad.
// Neither output appears unless both were written completely.
// An existing pad is never replaced.
//
//nolint:funlen
func (p *Processor) EncryptFile(job Job) (size int64, err error) {
	info, err := os.Stat(job.Input)
	if err != nil {
		return 0, fmt.Errorf("getting file info for %q: %w", job.Input, err)
	}

	if _, err := os.Lstat(job.Pad); err == nil {
		return 0, fmt.Errorf("%w: %q", ErrPadExists, job.Pad)
	} else if !errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("checking one-time-pad %q: %w", job.Pad, err)
	}

	input, err := os.Open(filepath.Clean(job.Input))
	if err != nil {
		return 0, fmt.Errorf("opening plain text: %w", err)
	}
	defer input.Close()

	p.out.Debugf("opened plain text %q for reading", job.Input)

	cipher, err := fileutil.Create(job.Output)
	if err != nil {
		return 0, err
	}
	defer cipher.Discard()

	pad, err := fileutil.Create(job.Pad)
	if err != nil {
		return 0, err
	}
	defer pad.Discard()

	p.out.Debugf("writing cipher text to %q and one-time-pad to %q", job.Output, job.Pad)

	size, err = p.transform.Encrypt(input, cipher.File, pad.File)
	if err != nil {
		return 0, fmt.Errorf("encrypting %q: %w", job.Input, err)
	}

	if size%otp.BlockSize != 0 {
		p.out.Debugf("handled a remaining %d bytes", size%otp.BlockSize)
	}

	if err := pad.Commit(fileutil.OwnerReadWrite); err != nil {
		return 0, err
	}

	if err := cipher.Commit(fileutil.Permissions(info)); err != nil {
		os.Remove(job.Pad) //nolint:errcheck,gosec // the pad was created above and has no cipher text

		return 0, err
	}

	if err := input.Close(); err != nil {
		return 0, fmt.Errorf("closing plain text: %w", err)
	}

	for _, path := range []string{job.Output, job.Pad} {
		if _, err := fileutil.FinalizeOutput(path, p.cfg.PreserveTimestamps, info.ModTime()); err != nil {
			return 0, fmt.Errorf("finalizing output: %w", err)
		}
	}

	return size, nil
}

// DecryptFile decrypts job.Input with the pad at job.Pad into job.Output.
func (p *Processor) DecryptFile(job Job) (size int64, err error) {
	info, err := os.Stat(job.Input)
	if err != nil {
		return 0, fmt.Errorf("getting file info for %q: %w", job.Input, err)
	}

	cipher, err := os.Open(filepath.Clean(job.Input))
	if err != nil {
		return 0, fmt.Errorf("opening cipher text: %w", err)
	}
	defer cipher.Close()

	p.out.Debugf("opened cipher text %q for reading", job.Input)

	pad, err := os.Open(filepath.Clean(job.Pad))
	if err != nil {
		return 0, fmt.Errorf("opening one-time-pad: %w", err)
	}
	defer pad.Close()

	p.out.Debugf("opened one-time-pad %q for reading", job.Pad)

	plain, err := fileutil.Create(job.Output)
	if err != nil {
		return 0, err
	}
	defer plain.Discard()

	p.out.Debugf("writing plain text to %q", job.Output)

	size, err = p.transform.Decrypt(cipher, plain.File, pad)
	if err != nil {
		return 0, fmt.Errorf("decrypting %q: %w", job.Input, err)
	}

	if err := plain.Commit(fileutil.Permissions(info)); err != nil {
		return 0, err
	}

	if _, err := fileutil.FinalizeOutput(job.Output, p.cfg.PreserveTimestamps, info.ModTime()); err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}
