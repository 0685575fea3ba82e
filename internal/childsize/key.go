package childsize

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot reports a visited path that is not beneath its root.
// Traversal seeds every path from the root, so hitting this means the
// caller fell back to the empty key rather than aborting.
var ErrOutsideRoot = errors.New("path outside root")

// GroupKey returns the directory key path aggregates under: the file's
// immediate parent directory rejoined onto root. A file sitting directly
// under the root keys to the root itself. Resolution is pure, so the
// same (path, root) pair always yields the same key.
func GroupKey(path, root string) (string, error) {
	root = filepath.Clean(root)

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q is not under %q", ErrOutsideRoot, path, root)
	}

	parent := filepath.Dir(rel)
	if parent == "." {
		return root, nil
	}

	return filepath.Join(root, parent), nil
}
