package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindRoot_FromNestedDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, depth := range []string{
		"",
		"sub",
		filepath.Join("sub", "sub2"),
		filepath.Join("a", "b", "c", "d"),
	} {
		t.Run("depth="+depth, func(t *testing.T) {
			start := filepath.Join(root, depth)
			if err := os.MkdirAll(start, 0o755); err != nil {
				t.Fatal(err)
			}

			got, err := FindRoot(start, ".gitignore")
			if err != nil {
				t.Fatalf("FindRoot() error = %v", err)
			}
			if got != root {
				t.Errorf("FindRoot() = %q, want %q", got, root)
			}
		})
	}
}

func TestFindRoot_NearestAncestorWins(t *testing.T) {
	outer := t.TempDir()
	inner := filepath.Join(outer, "nested-repo")
	start := filepath.Join(inner, "pkg")
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{outer, inner} {
		if err := os.WriteFile(filepath.Join(dir, ".gitignore"), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := FindRoot(start, ".gitignore")
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if got != inner {
		t.Errorf("FindRoot() = %q, want %q", got, inner)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	start := filepath.Join(t.TempDir(), "project", "src")
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatal(err)
	}

	// A marker name that cannot exist anywhere up the tree.
	_, err := FindRoot(start, ".lc-dir-marker-that-does-not-exist")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("error = %v, want ErrRootNotFound", err)
	}
	if !strings.Contains(err.Error(), start) {
		t.Errorf("error %q should name the start path %q", err, start)
	}
}

func TestFindRoot_IgnoresMarkerDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "sub")
	// A directory with the marker's name is not a marker.
	if err := os.MkdirAll(filepath.Join(sub, ".gitignore"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(sub, ".gitignore")
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if got != root {
		t.Errorf("FindRoot() = %q, want %q", got, root)
	}
}
