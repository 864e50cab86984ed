// Package pathmatch matches slash separated paths against find -path style globs.
//
// Unlike filepath.Match, wildcards cross directory separators:
//   - * matches any run of characters, including /
//   - ? matches exactly one character, including /
//   - [...] and [!...] match one character from (or outside) a set
//   - \ makes the next character literal
//
// "*.otp" therefore matches "pads/2024/a.otp".
package pathmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Match reports whether path matches pattern.
func Match(pattern, path string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(path), nil
}

// Matcher holds a set of compiled patterns.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher compiles patterns. An empty set matches nothing.
func NewMatcher(patterns []string) (*Matcher, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := compile(pattern)
		if err != nil {
			return nil, err
		}

		compiled = append(compiled, re)
	}

	return &Matcher{patterns: compiled}, nil
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// MatchAny reports whether path matches at least one pattern.
func (m *Matcher) MatchAny(path string) bool {
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

var compiled sync.Map //nolint:gochecknoglobals // compiled patterns are shared across matchers

func compile(pattern string) (*regexp.Regexp, error) {
	if cached, ok := compiled.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil //nolint:forcetypeassert // only *regexp.Regexp is stored
	}

	expr, err := translate(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	compiled.Store(pattern, re)

	return re, nil
}

// translate turns a glob into an anchored regular expression.
func translate(pattern string) (string, error) {
	var expr strings.Builder

	expr.WriteString(`^(?s:`)

	for idx := 0; idx < len(pattern); idx++ {
		switch char := pattern[idx]; char {
		case '*':
			expr.WriteString(`.*`)
		case '?':
			expr.WriteString(`.`)
		case '\\':
			idx++
			if idx == len(pattern) {
				return "", errors.New("trailing backslash")
			}

			expr.WriteString(regexp.QuoteMeta(pattern[idx : idx+1]))
		case '[':
			class, end, err := bracket(pattern, idx)
			if err != nil {
				return "", err
			}

			expr.WriteString(class)

			idx = end
		default:
			expr.WriteString(regexp.QuoteMeta(pattern[idx : idx+1]))
		}
	}

	expr.WriteString(`)$`)

	return expr.String(), nil
}

// bracket converts the character class opening at start and returns it with the index of its closing ].
// A ] directly after [ or [! is taken literally.
func bracket(pattern string, start int) (string, int, error) {
	var class strings.Builder

	class.WriteByte('[')

	idx := start + 1
	if idx < len(pattern) && pattern[idx] == '!' {
		class.WriteByte('^')

		idx++
	}

	first := true

	for ; idx < len(pattern); idx++ {
		char := pattern[idx]

		switch {
		case char == ']' && !first:
			class.WriteByte(']')

			return class.String(), idx, nil
		case char == ']', char == '[', char == '^':
			class.WriteByte('\\')
			class.WriteByte(char)
		case char == '\\' && idx+1 < len(pattern):
			idx++
			class.WriteString(regexp.QuoteMeta(pattern[idx : idx+1]))
		default:
			class.WriteByte(char)
		}

		first = false
	}

	return "", 0, errors.New("unclosed character class")
}
