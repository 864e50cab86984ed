// Package filter turns command line paths into the list of files to process.
//
// Explicit file arguments are always taken. Directories are walked and every
// file found is kept if it matches an include pattern (or no include filter was
// requested) and matches no exclude pattern. Patterns use find -path semantics,
// see package pathmatch.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/otp/pkg/pathmatch"
)

// ErrNoFiles is returned when resolution ends with nothing to process.
var ErrNoFiles = errors.New("no files matched")

// Selection is the outcome of Resolve.
type Selection struct {
	// Files to process, in discovery order without duplicates
	Files []string

	// Scanned counts every candidate seen, before filtering
	Scanned int
}

// Excluded is the number of scanned candidates that were filtered out.
func (s Selection) Excluded() int {
	return s.Scanned - len(s.Files)
}

// Filter decides which walked files are selected.
type Filter struct {
	includes    *pathmatch.Matcher
	excludes    *pathmatch.Matcher
	hasIncludes bool
}

// New compiles the patterns. When hasIncludes is false every file passes the
// include stage, even if includes is empty.
func New(includes, excludes []string, hasIncludes bool) (*Filter, error) {
	inc, err := pathmatch.NewMatcher(normalize(includes))
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := pathmatch.NewMatcher(normalize(excludes))
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &Filter{includes: inc, excludes: exc, hasIncludes: hasIncludes}, nil
}

// Patterns returns the number of compiled include and exclude patterns.
func (f *Filter) Patterns() (includes, excludes int) {
	return f.includes.Len(), f.excludes.Len()
}

// Match reports whether the slash separated path is selected.
func (f *Filter) Match(path string) bool {
	if f.excludes.MatchAny(path) {
		return false
	}

	return !f.hasIncludes || f.includes.MatchAny(path)
}

// Resolve expands args into files. Explicit files bypass the filter.
func (f *Filter) Resolve(args []string) (Selection, error) {
	var selection Selection

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		selection.Files = append(selection.Files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return Selection{}, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			selection.Scanned++

			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !entry.Type().IsRegular() {
				return nil
			}

			selection.Scanned++

			if f.Match(filepath.ToSlash(path)) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return Selection{}, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	if len(selection.Files) == 0 {
		return selection, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return selection, nil
}

func normalize(patterns []string) []string {
	out := make([]string, len(patterns))

	for i, pattern := range patterns {
		out[i] = strings.TrimPrefix(pattern, "./")
	}

	return out
}
