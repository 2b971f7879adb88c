package cpumark

// Extractor turns benchmark site markup into catalog records.
// Implementations do no network access and no caching.
type Extractor interface {
	// ExtractCatalog parses the CPU list page. Malformed rows are skipped.
	// Returns EEXTRACT if the catalog table is missing entirely.
	ExtractCatalog(html string) ([]CatalogEntry, error)

	// ExtractDetail parses a CPU detail page into a record for entry.
	// Unparseable fragments are skipped. Returns EEXTRACT if the page
	// footer is missing entirely.
	ExtractDetail(entry CatalogEntry, html string) (*DetailRecord, error)
}
