// Package logic implements the command workflows of the otp tool.
package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/encryption"
	"github.com/idelchi/otp/internal/filter"
	"github.com/idelchi/otp/internal/otp"
	"github.com/idelchi/otp/internal/printer"
)

// Run encrypts or decrypts the configured files with pads from the system CSPRNG.
func Run(cfg *config.Config, out *printer.Printer) error {
	return RunWithSource(cfg, otp.NewSystemSource(), out)
}

// RunWithSource is Run with an explicit pad source.
func RunWithSource(cfg *config.Config, source otp.PadSource, out *printer.Printer) error {
	start := time.Now()

	selection, err := resolveFiles(cfg, out)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	if cfg.Dry {
		return dryRun(cfg, selection, start, out)
	}

	proc, err := encryption.NewProcessor(cfg, source, out)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	summary, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(out, selection, summary, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveFiles expands cfg.Files in place. Walking directories skips files that
// look like outputs of the tool when encrypting, and selects only cipher texts
// when decrypting without an include filter.
func resolveFiles(cfg *config.Config, out *printer.Printer) (filter.Selection, error) {
	includes := append([]string{}, cfg.Include...)
	excludes := append([]string{}, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return filter.Selection{}, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return filter.Selection{}, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	hasIncludes := len(cfg.Include) > 0 || cfg.IncludeFrom != ""

	switch {
	case cfg.Decrypt && !hasIncludes:
		includes = append(includes, "*"+cfg.Suffixes.Encrypt)
		hasIncludes = true
	case !cfg.Decrypt:
		excludes = append(excludes, "*"+cfg.Suffixes.Encrypt, "*"+cfg.Suffixes.Pad)
	}

	flt, err := filter.New(includes, excludes, hasIncludes)
	if err != nil {
		return filter.Selection{}, err
	}

	inc, exc := flt.Patterns()
	out.Debugf("selecting files with %d include and %d exclude patterns", inc, exc)

	selection, err := flt.Resolve(cfg.Files)
	if err != nil {
		return selection, err
	}

	cfg.Files = selection.Files

	if err := cfg.CheckOverrides(); err != nil {
		return selection, err
	}

	return selection, nil
}

// dryRun previews what would be processed without reading or writing any file content.
func dryRun(cfg *config.Config, selection filter.Selection, start time.Time, out *printer.Printer) error {
	var summary encryption.Summary

	for _, file := range cfg.Files {
		job, err := encryption.NewJob(file, cfg)
		if err != nil {
			out.Errorf("processing %q: %v", file, err)

			summary.Errored++

			continue
		}

		summary.Processed++

		out.Infof("Would process %q -> %q (one-time-pad %q)", job.Input, job.Output, job.Pad)

		if info, err := os.Stat(file); err == nil {
			summary.TotalSize += info.Size()
		}
	}

	if cfg.Stats {
		printStats(out, selection, summary, time.Since(start))
	}

	return nil
}

func printStats(out *printer.Printer, selection filter.Selection, summary encryption.Summary, duration time.Duration) {
	out.Plainf("\nStats")
	out.Plainf("  Scanned:   %d", selection.Scanned)
	out.Plainf("  Excluded:  %d", selection.Excluded())
	out.Plainf("  Processed: %d", summary.Processed)
	out.Plainf("  Errors:    %d", summary.Errored)
	//nolint:gosec // TotalSize is a sum of file sizes
	out.Plainf("  Size:      %s", humanize.IBytes(uint64(max(0, summary.TotalSize))))
	out.Plainf("  Duration:  %s", duration.Round(time.Millisecond))
}
