// Package projectroot resolves the repository root that diagnostic paths
// are reported relative to, adapted from socutil's upward directory walk to
// look for a ".git" marker instead of a named file.
package projectroot

import (
	"os"
	"path/filepath"
)

// Find returns explicit, resolved to an absolute path, if non-empty.
// Otherwise it walks up from the current working directory looking for a
// ".git" entry, and falls back to the working directory itself if none is
// found before reaching the filesystem root.
func Find(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}
