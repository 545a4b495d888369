// Package project locates the root of the version-controlled project that
// lc-dir operates on. The root is the nearest ancestor of the working
// directory holding the marker file (.gitignore by default).
package project
