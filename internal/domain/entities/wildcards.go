package entities

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Wildcards is an ordered set of filename glob patterns.
type Wildcards []string

// DefaultWildcards returns the source file patterns processed when no
// additional wildcard is given.
func DefaultWildcards() Wildcards {
	return Wildcards{"*.java", "*.rb", "*.php", "*.js", "*.scala", "*.c", "*.cpp"}
}

// With returns a copy of the set with the extra patterns appended in order.
func (w Wildcards) With(extra ...string) Wildcards {
	result := make(Wildcards, 0, len(w)+len(extra))
	result = append(result, w...)
	for _, pattern := range extra {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			result = append(result, pattern)
		}
	}
	return result
}

// Matches reports whether the base name of path matches any pattern.
// Matching is case-sensitive and never looks at directory components.
func (w Wildcards) Matches(path string) bool {
	name := filepath.Base(path)
	for _, pattern := range w {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Validate returns the first malformed pattern, if any.
func (w Wildcards) Validate() error {
	for _, pattern := range w {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return &PreconditionError{Err: fmt.Errorf("invalid wildcard %q: %w", pattern, err)}
		}
	}
	return nil
}

// Quoted renders the patterns shell-quoted, as they would be typed.
func (w Wildcards) Quoted() []string {
	quoted := make([]string, 0, len(w))
	for _, pattern := range w {
		quoted = append(quoted, "'"+pattern+"'")
	}
	return quoted
}
