// Package catalog composes the cache layer and matcher into the
// cpumark.CatalogService used by front ends.
package catalog

import (
	"context"

	"github.com/fwojciec/cpumark"
)

// Resolution limits. Listing tolerates weaker matches than a direct
// lookup, which must be confident enough to act on without confirmation.
const (
	MatchesLimit  = 9
	MatchesCutoff = 80.0
	MatchCutoff   = 90.0
)

// Stages reported in error annotations.
const (
	OpList    = "catalog.list"
	OpDetail  = "catalog.detail"
	OpResolve = "catalog.resolve"
)

var _ cpumark.CatalogService = (*Service)(nil)

// Service resolves queries against the cached catalog and loads details.
// It holds no state of its own.
type Service struct {
	source  cpumark.CatalogSource
	matcher cpumark.Matcher
}

// NewService creates a new Service.
func NewService(source cpumark.CatalogSource, matcher cpumark.Matcher) *Service {
	return &Service{source: source, matcher: matcher}
}

// Catalog returns the current catalog snapshot.
func (s *Service) Catalog(ctx context.Context) (*cpumark.Catalog, error) {
	catalog, err := s.source.FullList(ctx)
	if err != nil {
		return nil, cpumark.WrapError(OpList, cpumark.EFETCH, err)
	}
	return catalog, nil
}

// FindMatches returns up to MatchesLimit entries scoring at least
// MatchesCutoff, best first.
func (s *Service) FindMatches(ctx context.Context, query string) ([]cpumark.Match, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolve(catalog, query, MatchesLimit, MatchesCutoff)
}

// FindMatch returns the best entry if it scores at least MatchCutoff.
func (s *Service) FindMatch(ctx context.Context, query string) (cpumark.Match, bool, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return cpumark.Match{}, false, err
	}
	matches, err := s.resolve(catalog, query, 1, MatchCutoff)
	if err != nil || len(matches) == 0 {
		return cpumark.Match{}, false, err
	}
	return matches[0], true, nil
}

// CPUInfo returns the full record for entry.
func (s *Service) CPUInfo(ctx context.Context, entry cpumark.CatalogEntry) (*cpumark.DetailRecord, error) {
	rec, err := s.source.CPUInfo(ctx, entry)
	if err != nil {
		return nil, cpumark.WrapError(OpDetail, cpumark.EFETCH, err)
	}
	return rec, nil
}

// resolve matches query against one catalog snapshot and attaches each
// match's entry from that same snapshot, so later catalog refreshes cannot
// shift what an index points to.
func (s *Service) resolve(catalog *cpumark.Catalog, query string, limit int, cutoff float64) ([]cpumark.Match, error) {
	matches := s.matcher.Match(query, catalog.Names(), limit, cutoff)
	for i, m := range matches {
		if m.Index < 0 || m.Index >= len(catalog.Entries) {
			return nil, &cpumark.Error{
				Code:    cpumark.EINTERNAL,
				Op:      OpResolve,
				Message: "match index out of range",
			}
		}
		matches[i].Entry = catalog.Entries[m.Index]
	}
	return matches, nil
}
