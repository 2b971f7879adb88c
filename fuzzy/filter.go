// Package fuzzy implements cpumark.CatalogFilter using the subsequence
// matcher from github.com/sahilm/fuzzy.
package fuzzy

import (
	"strings"

	"github.com/fwojciec/cpumark"
	"github.com/sahilm/fuzzy"
)

var _ cpumark.CatalogFilter = (*Filter)(nil)

// Filter keeps catalog entries whose names contain the query characters in
// order, e.g. "r5 1600" matches "AMD Ryzen 5 1600".
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// entrySource implements fuzzy.Source for catalog entries.
type entrySource []cpumark.CatalogEntry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// Filter returns the matching entries, best first. An empty query returns
// entries unchanged.
func (f *Filter) Filter(query string, entries []cpumark.CatalogEntry) []cpumark.CatalogEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	matches := fuzzy.FindFrom(query, entrySource(entries))
	filtered := make([]cpumark.CatalogEntry, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, entries[m.Index])
	}
	return filtered
}
