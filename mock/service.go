package mock

import (
	"context"

	"github.com/fwojciec/cpumark"
)

var _ cpumark.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of cpumark.CatalogService.
type CatalogService struct {
	CatalogFn     func(ctx context.Context) (*cpumark.Catalog, error)
	FindMatchesFn func(ctx context.Context, query string) ([]cpumark.Match, error)
	FindMatchFn   func(ctx context.Context, query string) (cpumark.Match, bool, error)
	CPUInfoFn     func(ctx context.Context, entry cpumark.CatalogEntry) (*cpumark.DetailRecord, error)
}

func (s *CatalogService) Catalog(ctx context.Context) (*cpumark.Catalog, error) {
	return s.CatalogFn(ctx)
}

func (s *CatalogService) FindMatches(ctx context.Context, query string) ([]cpumark.Match, error) {
	return s.FindMatchesFn(ctx, query)
}

func (s *CatalogService) FindMatch(ctx context.Context, query string) (cpumark.Match, bool, error) {
	return s.FindMatchFn(ctx, query)
}

func (s *CatalogService) CPUInfo(ctx context.Context, entry cpumark.CatalogEntry) (*cpumark.DetailRecord, error) {
	return s.CPUInfoFn(ctx, entry)
}
