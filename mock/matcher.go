package mock

import "github.com/fwojciec/cpumark"

var (
	_ cpumark.Matcher       = (*Matcher)(nil)
	_ cpumark.CatalogFilter = (*CatalogFilter)(nil)
)

// Matcher is a mock implementation of cpumark.Matcher.
type Matcher struct {
	MatchFn func(query string, choices []string, limit int, cutoff float64) []cpumark.Match
}

func (m *Matcher) Match(query string, choices []string, limit int, cutoff float64) []cpumark.Match {
	return m.MatchFn(query, choices, limit, cutoff)
}

// CatalogFilter is a mock implementation of cpumark.CatalogFilter.
type CatalogFilter struct {
	FilterFn func(query string, entries []cpumark.CatalogEntry) []cpumark.CatalogEntry
}

func (f *CatalogFilter) Filter(query string, entries []cpumark.CatalogEntry) []cpumark.CatalogEntry {
	return f.FilterFn(query, entries)
}
