package cpumark

import "context"

// CatalogService is the entry point used by front ends.
type CatalogService interface {
	// Catalog returns the current catalog snapshot.
	Catalog(ctx context.Context) (*Catalog, error)

	// FindMatches returns the closest catalog entries for query, suitable
	// for a disambiguation list. An empty slice means nothing matched.
	FindMatches(ctx context.Context, query string) ([]Match, error)

	// FindMatch returns the single best entry for query if it is confident
	// enough to act on. Reports false, with a nil error, when nothing is.
	FindMatch(ctx context.Context, query string) (Match, bool, error)

	// CPUInfo returns the full record for entry.
	CPUInfo(ctx context.Context, entry CatalogEntry) (*DetailRecord, error)
}
