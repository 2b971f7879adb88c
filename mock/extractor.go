package mock

import "github.com/fwojciec/cpumark"

var _ cpumark.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cpumark.Extractor.
type Extractor struct {
	ExtractCatalogFn func(html string) ([]cpumark.CatalogEntry, error)
	ExtractDetailFn  func(entry cpumark.CatalogEntry, html string) (*cpumark.DetailRecord, error)
}

func (e *Extractor) ExtractCatalog(html string) ([]cpumark.CatalogEntry, error) {
	return e.ExtractCatalogFn(html)
}

func (e *Extractor) ExtractDetail(entry cpumark.CatalogEntry, html string) (*cpumark.DetailRecord, error) {
	return e.ExtractDetailFn(entry, html)
}
