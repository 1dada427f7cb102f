// Package finder walks a directory tree once and ranks its files against a
// query. It is the entry source for the UI; the preview subsystem only
// ever sees the entries it produces.
package finder

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"glimpse/internal/entry"
	"glimpse/internal/logging"
)

const (
	// maxDepth caps directory recursion to keep pathological trees from
	// stalling startup.
	maxDepth = 20

	// maxFiles caps how many paths are collected.
	maxFiles = 50000

	// maxResults caps how many ranked entries a single query returns.
	maxResults = 500
)

// skipDirs are directory names never descended into.
var skipDirs = []string{
	"node_modules", ".git", "vendor", "target", "build", ".next",
	"dist", ".cache", "__pycache__", ".vscode", ".idea",
}

// Finder holds the scanned file list for one root directory.
type Finder struct {
	root  string
	paths []string
}

// New scans root and returns a Finder over its files. Hidden files and
// directories are skipped, as are well-known dependency and build
// directories. Unreadable subdirectories are logged and skipped rather
// than failing the scan.
func New(root string) (*Finder, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", root, err)
	}
	if info, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", absRoot)
	}

	var paths []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Debug("Skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil || rel == "." {
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name) {
				return filepath.SkipDir
			}
			if strings.Count(rel, string(filepath.Separator)) >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		paths = append(paths, rel)
		if len(paths) >= maxFiles {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %q: %w", absRoot, err)
	}

	slices.Sort(paths)
	logging.Debug("Scanned root", "root", absRoot, "files", len(paths))
	return &Finder{root: absRoot, paths: paths}, nil
}

// Root returns the absolute root directory of the scan.
func (f *Finder) Root() string {
	return f.root
}

// Len returns the number of scanned files.
func (f *Finder) Len() int {
	return len(f.paths)
}

// Find ranks files against the query and returns entries named by their
// root-relative paths, with match ranges over the name. An empty query
// returns the scanned files in path order. Callers are expected to run
// with the scan root as working directory so entry names resolve as
// filesystem paths.
func (f *Finder) Find(query string) []entry.Entry {
	if strings.TrimSpace(query) == "" {
		n := min(len(f.paths), maxResults)
		entries := make([]entry.Entry, 0, n)
		for _, rel := range f.paths[:n] {
			entries = append(entries, entry.New(rel))
		}
		return entries
	}

	matches := fuzzy.Find(query, f.paths)
	n := min(len(matches), maxResults)
	entries := make([]entry.Entry, 0, n)
	for _, m := range matches[:n] {
		e := entry.New(m.Str)
		e.NameMatchRanges = matchRanges(m.Str, m.MatchedIndexes)
		entries = append(entries, e)
	}
	return entries
}

// matchRanges converts the matcher's per-character byte offsets into
// merged half-open byte ranges over s.
func matchRanges(s string, indexes []int) []entry.MatchRange {
	if len(indexes) == 0 {
		return nil
	}

	var ranges []entry.MatchRange
	for _, idx := range indexes {
		if idx < 0 || idx >= len(s) {
			continue
		}
		_, size := utf8.DecodeRuneInString(s[idx:])
		end := idx + size
		if n := len(ranges); n > 0 && ranges[n-1].End == idx {
			ranges[n-1].End = end
			continue
		}
		ranges = append(ranges, entry.MatchRange{Start: idx, End: end})
	}
	return ranges
}
