package mock

import (
	"context"

	"github.com/fwojciec/cpumark"
)

var _ cpumark.CatalogSource = (*CatalogSource)(nil)

// CatalogSource is a mock implementation of cpumark.CatalogSource.
type CatalogSource struct {
	FullListFn   func(ctx context.Context) (*cpumark.Catalog, error)
	DetailPageFn func(ctx context.Context, url string) (string, error)
	CPUInfoFn    func(ctx context.Context, entry cpumark.CatalogEntry) (*cpumark.DetailRecord, error)
}

func (s *CatalogSource) FullList(ctx context.Context) (*cpumark.Catalog, error) {
	return s.FullListFn(ctx)
}

func (s *CatalogSource) DetailPage(ctx context.Context, url string) (string, error) {
	return s.DetailPageFn(ctx, url)
}

func (s *CatalogSource) CPUInfo(ctx context.Context, entry cpumark.CatalogEntry) (*cpumark.DetailRecord, error) {
	return s.CPUInfoFn(ctx, entry)
}
