package cpumark

// Matcher ranks candidate names against a free-text query.
type Matcher interface {
	// Match scores query against every choice and returns the ones scoring
	// at least cutoff, best first. Equal scores keep choice order.
	// A limit <= 0 returns every qualifying match. Only Name, Score and
	// Index are set on the returned matches.
	Match(query string, choices []string, limit int, cutoff float64) []Match
}

// CatalogFilter narrows a catalog listing to entries resembling a query.
type CatalogFilter interface {
	Filter(query string, entries []CatalogEntry) []CatalogEntry
}
