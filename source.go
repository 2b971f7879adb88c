package cpumark

import "context"

// CatalogSource serves the catalog and detail pages, fetching from the
// upstream site only when its caches are cold or expired.
type CatalogSource interface {
	// FullList returns the current catalog snapshot.
	FullList(ctx context.Context) (*Catalog, error)

	// DetailPage returns the raw markup of a detail page.
	DetailPage(ctx context.Context, url string) (string, error)

	// CPUInfo returns the full record for entry.
	CPUInfo(ctx context.Context, entry CatalogEntry) (*DetailRecord, error)
}
