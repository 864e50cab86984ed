// Package fileutil provides atomic output files and related helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// OwnerReadWrite is the permission used for every output file.
	OwnerReadWrite os.FileMode = 0o600

	executableBits os.FileMode = 0o111
)

// Output is a file written under a temporary name next to its target,
// and moved into place by Commit.
type Output struct {
	// File is the open temporary file
	File *os.File

	// Target is the final path
	Target string

	committed bool
}

// Create opens a temporary file in the directory of target.
// Callers must defer Discard.
func Create(target string) (*Output, error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file for %q: %w", target, err)
	}

	return &Output{File: tmp, Target: target}, nil
}

// Commit sets perm on the temporary file, closes it and renames it to the target.
func (o *Output) Commit(perm os.FileMode) error {
	if err := o.File.Chmod(perm); err != nil {
		return fmt.Errorf("setting permissions on %q: %w", o.Target, err)
	}

	if err := o.File.Close(); err != nil {
		return fmt.Errorf("closing temporary file for %q: %w", o.Target, err)
	}

	if err := os.Rename(o.File.Name(), o.Target); err != nil {
		return fmt.Errorf("renaming output %q: %w", o.Target, err)
	}

	o.committed = true

	return nil
}

// Discard closes and removes the temporary file unless it was committed.
func (o *Output) Discard() {
	o.File.Close() //nolint:errcheck,gosec // best-effort cleanup

	if !o.committed {
		os.Remove(o.File.Name()) //nolint:errcheck,gosec // best-effort cleanup
	}
}

// Permissions returns the output permissions for a file derived from info:
// owner read/write, plus the execute bits if info has any.
func Permissions(info os.FileInfo) os.FileMode {
	if info.Mode()&executableBits != 0 {
		return OwnerReadWrite | executableBits
	}

	return OwnerReadWrite
}

// FinalizeOutput optionally preserves timestamps and returns the output file size.
func FinalizeOutput(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
