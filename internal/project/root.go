package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no ancestor directory holds the marker file.
var ErrRootNotFound = errors.New("project root not found")

// FindRoot walks up from start until it finds a directory containing a
// regular file named marker, and returns that directory as an absolute path.
// The start directory itself is checked first.
func FindRoot(start, marker string) (string, error) {
	orig, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	dir := orig
	for {
		if hasMarker(dir, marker) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find %s in any parent directory of %s: %w", marker, orig, ErrRootNotFound)
		}
		dir = parent
	}
}

func hasMarker(dir, marker string) bool {
	info, err := os.Stat(filepath.Join(dir, marker))
	return err == nil && info.Mode().IsRegular()
}
