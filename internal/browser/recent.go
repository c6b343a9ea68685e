package browser

import (
	"iter"
	"path/filepath"
	"slices"
	"strings"
)

// MaxRecent is the number of recently opened documents remembered.
const MaxRecent = 10

// RecentFiles is a bounded most-recently-used list of distinct paths,
// newest first. Unlike History it never holds the same path twice.
type RecentFiles struct {
	paths []string
}

// NewRecentFiles creates a tracker seeded with paths in most-recent-first
// order. Duplicates keep their first position and overflow is dropped.
func NewRecentFiles(paths ...string) *RecentFiles {
	r := &RecentFiles{}
	for _, p := range paths {
		if len(r.paths) == MaxRecent {
			break
		}
		if !slices.Contains(r.paths, p) {
			r.paths = append(r.paths, p)
		}
	}
	return r
}

// Record moves path to the front, evicting the oldest entry when full.
func (r *RecentFiles) Record(path string) {
	if i := slices.Index(r.paths, path); i >= 0 {
		r.paths = slices.Delete(r.paths, i, i+1)
	}
	r.paths = slices.Insert(r.paths, 0, path)
	if len(r.paths) > MaxRecent {
		r.paths = r.paths[:MaxRecent]
	}
}

// DisplayNames yields the document name of each entry in current order.
func (r *RecentFiles) DisplayNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range r.paths {
			if !yield(DisplayName(p)) {
				return
			}
		}
	}
}

// Paths returns a copy of the entries, newest first.
func (r *RecentFiles) Paths() []string {
	return slices.Clone(r.paths)
}

// Len returns the number of entries.
func (r *RecentFiles) Len() int {
	return len(r.paths)
}

// Clear forgets all entries.
func (r *RecentFiles) Clear() {
	r.paths = nil
}

// DisplayName returns the final path component without its .html suffix.
func DisplayName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".html")
}
