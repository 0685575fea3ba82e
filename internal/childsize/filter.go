package childsize

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidPattern reports a glob pattern that fails to compile.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// Filter decides which file names participate in aggregation.
type Filter struct {
	patterns []string
}

// NewFilter builds a filter from shell-style globs matched against file
// base names. An empty pattern set matches every file. Any pattern that
// fails to compile aborts construction, before traversal can start.
func NewFilter(patterns []string) (*Filter, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}

	return &Filter{patterns: patterns}, nil
}

// Matches reports whether the file at path qualifies. Only the base name
// is matched, never the full path.
func (f *Filter) Matches(path string) bool {
	if len(f.patterns) == 0 {
		return true
	}

	base := filepath.Base(path)

	for _, p := range f.patterns {
		// Patterns are validated at construction, so Match cannot fail here.
		if ok, err := doublestar.Match(p, base); err == nil && ok {
			return true
		}
	}

	return false
}
