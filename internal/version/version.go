// Package version formats the build version injected at link time.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// parse strips a leading "v" and parses the version string.
func parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}

// Canonical returns v as "vMAJOR.MINOR.PATCH[-pre]" when it is a semantic
// version, and unchanged otherwise (e.g. "dev").
func Canonical(v string) string {
	sv, err := parse(v)
	if err != nil {
		return v
	}
	return "v" + sv.String()
}

// IsRelease reports whether v is a semantic version without a pre-release tag.
func IsRelease(v string) bool {
	sv, err := parse(v)
	return err == nil && sv.Prerelease() == ""
}

// Describe renders the one-line version banner.
func Describe(name, v, commit, date string) string {
	line := fmt.Sprintf("%s %s (commit: %s, built: %s)", name, Canonical(v), commit, date)
	switch {
	case IsRelease(v):
	case v == "" || v == "dev":
		line += " [development build]"
	default:
		line += " [pre-release]"
	}
	return line
}
