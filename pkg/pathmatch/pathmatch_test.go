package pathmatch_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/otp/pkg/pathmatch"
)

// Case is a single golden case.
type Case struct {
	Pattern     string `yaml:"pattern"`
	Path        string `yaml:"path"`
	Match       bool   `yaml:"match"`
	Description string `yaml:"description,omitempty"`
}

// Group is a named set of golden cases.
type Group struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

func loadGroups(t *testing.T) []Group {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("no testdata/*.yml files found")
	}

	var all []Group

	for _, file := range files {
		data, err := os.ReadFile(file) //nolint:gosec // known testdata files
		if err != nil {
			t.Fatalf("reading %s: %v", file, err)
		}

		var groups []Group
		if err := yaml.Unmarshal(data, &groups); err != nil {
			t.Fatalf("parsing %s: %v", file, err)
		}

		all = append(all, groups...)
	}

	return all
}

func TestMatch(t *testing.T) {
	t.Parallel()

	for _, group := range loadGroups(t) {
		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for i, tc := range group.Cases {
				name := tc.Description
				if name == "" {
					name = fmt.Sprintf("%s~%s", tc.Pattern, tc.Path)
				}

				t.Run(fmt.Sprintf("%d_%s", i, name), func(t *testing.T) {
					got, err := pathmatch.Match(tc.Pattern, tc.Path)
					if err != nil {
						t.Fatalf("Match(%q, %q) error: %v", tc.Pattern, tc.Path, err)
					}

					if got != tc.Match {
						t.Errorf("Match(%q, %q) = %v, want %v", tc.Pattern, tc.Path, got, tc.Match)
					}
				})
			}
		})
	}
}

func TestMatcherAny(t *testing.T) {
	t.Parallel()

	matcher, err := pathmatch.NewMatcher([]string{"*.enc", "*.otp"})
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	if matcher.Len() != 2 {
		t.Fatalf("Len = %d, want 2", matcher.Len())
	}

	for path, want := range map[string]bool{
		"a.enc":     true,
		"x/y/b.otp": true,
		"c.txt":     false,
	} {
		if got := matcher.MatchAny(path); got != want {
			t.Errorf("MatchAny(%q) = %v, want %v", path, got, want)
		}
	}

	empty, err := pathmatch.NewMatcher(nil)
	if err != nil {
		t.Fatalf("NewMatcher(nil): %v", err)
	}

	if empty.MatchAny("anything") {
		t.Error("empty matcher matched")
	}
}

func TestInvalidPatterns(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"abc\\", "log[0-9", "[!"} {
		if _, err := pathmatch.NewMatcher([]string{pattern}); err == nil {
			t.Errorf("NewMatcher(%q) succeeded, want error", pattern)
		}
	}
}
