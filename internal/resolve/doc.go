// Package resolve turns user-supplied folder targets into paths relative to
// the project root. A target is either empty (the working directory), an
// existing path, or a bare directory name searched case-insensitively across
// the whole project. When a name matches more than one directory the choice
// is delegated to a Selector, so interactive prompting can be swapped for a
// non-interactive strategy.
package resolve
