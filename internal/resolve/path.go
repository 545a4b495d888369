package resolve

import (
	"path/filepath"
	"strings"
)

// Normalize converts a root-relative path to the canonical form used in
// rule patterns: forward slashes, no leading "./", no trailing slash, and ""
// for the root itself.
func Normalize(rel string) string {
	p := filepath.ToSlash(rel)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimLeft(p[2:], "/")
	}
	p = strings.TrimRight(p, "/")
	if p == "." {
		return ""
	}
	return p
}

// within reports whether a cleaned relative path stays inside its base.
func within(rel string) bool {
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
