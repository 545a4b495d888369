package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrFolderNotFound is returned when no directory matches a query.
	ErrFolderNotFound = errors.New("no matching directory")

	// ErrAmbiguousSelection is returned when several directories match and
	// no valid choice was made.
	ErrAmbiguousSelection = errors.New("ambiguous folder selection")
)

// Target is a query together with the folder it resolved to.
type Target struct {
	Query string
	Path  string // relative to the project root, "" for the root
}

// Resolver resolves queries against a project root.
type Resolver struct {
	root     string
	cwd      string
	selector Selector

	// OnResolved, when set, is called after each successful resolution.
	OnResolved func(Target)
}

// New creates a Resolver. cwd is used for empty queries and must lie inside root.
func New(root, cwd string, selector Selector) *Resolver {
	if selector == nil {
		selector = FailSelector{}
	}
	return &Resolver{root: root, cwd: cwd, selector: selector}
}

// Resolve returns the folder for query relative to the root.
//
// An empty query yields the working directory. A query naming an existing
// directory (relative to the root, or absolute) is used as-is, even if a
// differently-cased directory elsewhere would also match by name. Otherwise
// every directory under the root whose name equals the query
// case-insensitively is collected; several matches go to the Selector.
func (r *Resolver) Resolve(query string) (string, error) {
	if query == "" {
		return r.relative(r.cwd, query)
	}

	candidate := query
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(r.root, query)
	}
	if isDir(candidate) {
		rel, err := r.relative(candidate, query)
		if err != nil {
			return "", err
		}
		return r.onDisk(rel), nil
	}

	matches, err := r.search(query)
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("folder %q not found in project: %w", query, ErrFolderNotFound)
	case 1:
		return matches[0], nil
	}

	idx, err := r.selector.Select(query, matches)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(matches) {
		return "", fmt.Errorf("selection %d out of range for %q: %w", idx, query, ErrAmbiguousSelection)
	}
	return matches[idx], nil
}

// ResolveAll resolves every query independently. No queries means the
// working directory. Failures for individual queries are joined into the
// returned error; targets that did resolve are still returned in input order.
func (r *Resolver) ResolveAll(queries []string) ([]Target, error) {
	if len(queries) == 0 {
		queries = []string{""}
	}

	targets := make([]Target, 0, len(queries))
	var errs []error
	for _, q := range queries {
		p, err := r.Resolve(q)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		t := Target{Query: q, Path: p}
		targets = append(targets, t)
		if r.OnResolved != nil {
			r.OnResolved(t)
		}
	}
	return targets, errors.Join(errs...)
}

// Paths returns the resolved folder of each target.
func Paths(targets []Target) []string {
	paths := make([]string, len(targets))
	for i, t := range targets {
		paths[i] = t.Path
	}
	return paths
}

func (r *Resolver) relative(abs, query string) (string, error) {
	rel, err := filepath.Rel(r.root, filepath.Clean(abs))
	if err != nil {
		return "", fmt.Errorf("relating %s to %s: %w", abs, r.root, err)
	}
	if !within(rel) {
		return "", fmt.Errorf("folder %q is outside the project root %s: %w", query, r.root, ErrFolderNotFound)
	}
	return Normalize(rel), nil
}

// search collects directories named query. Each directory's matching
// children are listed before any of them is descended into, and entries are
// visited in lexical order.
func (r *Resolver) search(query string) ([]string, error) {
	var matches []string
	if err := r.searchDir(r.root, query, &matches); err != nil {
		return nil, fmt.Errorf("searching %s for %q: %w", r.root, query, err)
	}
	return matches, nil
}

func (r *Resolver) searchDir(dir, query string, matches *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if dir == r.root {
			return err
		}
		// Unreadable subtrees are skipped.
		return nil
	}

	var subdirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		subdirs = append(subdirs, path)
		if strings.EqualFold(e.Name(), query) {
			rel, err := filepath.Rel(r.root, path)
			if err != nil {
				return err
			}
			*matches = append(*matches, Normalize(rel))
		}
	}

	for _, sub := range subdirs {
		if err := r.searchDir(sub, query, matches); err != nil {
			return err
		}
	}
	return nil
}

// onDisk rewrites each element of rel with the name stored in its parent
// directory. Case-insensitive filesystems accept any casing in a lookup, so
// the query's casing would otherwise leak into the rule.
func (r *Resolver) onDisk(rel string) string {
	if rel == "" {
		return rel
	}
	parts := strings.Split(rel, "/")
	dir := r.root
	for i, part := range parts {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return rel
		}
		parts[i] = entryName(entries, part)
		dir = filepath.Join(dir, parts[i])
	}
	return strings.Join(parts, "/")
}

// entryName prefers an exact match so that directories differing only in
// case stay distinct on case-sensitive filesystems.
func entryName(entries []fs.DirEntry, name string) string {
	for _, e := range entries {
		if e.Name() == name {
			return name
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), name) {
			return e.Name()
		}
	}
	return name
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
