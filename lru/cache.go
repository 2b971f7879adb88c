// Package lru implements cpumark.CatalogSource with in-memory expiring
// caches from github.com/hashicorp/golang-lru/v2/expirable.
//
// The full CPU list lives in a single-slot cache and detail pages in a
// bounded LRU cache; each has its own TTL. Concurrent misses for the same
// key share one upstream fetch.
package lru

import (
	"context"
	"time"

	"github.com/fwojciec/cpumark"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Defaults for the cache layer.
const (
	DefaultCatalogURL   = "https://www.cpubenchmark.net/cpu_list.php"
	DefaultListTTL      = 4 * time.Hour
	DefaultPageTTL      = 48 * time.Hour
	DefaultPageCapacity = 64
)

var _ cpumark.CatalogSource = (*Cache)(nil)

// Cache fetches catalog and detail pages through a Fetcher and keeps the
// results for a limited time. Failed fetches are never cached.
type Cache struct {
	fetcher   cpumark.Fetcher
	extractor cpumark.Extractor

	catalogURL   string
	listTTL      time.Duration
	pageTTL      time.Duration
	pageCapacity int

	list  *expirable.LRU[string, *cpumark.Catalog]
	pages *expirable.LRU[string, string]
	group singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithCatalogURL sets the URL of the full CPU list page.
func WithCatalogURL(u string) Option {
	return func(c *Cache) {
		c.catalogURL = u
	}
}

// WithListTTL sets how long the full list is served from cache.
func WithListTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.listTTL = d
	}
}

// WithPageTTL sets how long a detail page is served from cache.
func WithPageTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.pageTTL = d
	}
}

// WithPageCapacity sets how many detail pages are kept at most.
func WithPageCapacity(n int) Option {
	return func(c *Cache) {
		c.pageCapacity = n
	}
}

// NewCache creates a Cache with empty caches.
func NewCache(fetcher cpumark.Fetcher, extractor cpumark.Extractor, opts ...Option) *Cache {
	c := &Cache{
		fetcher:      fetcher,
		extractor:    extractor,
		catalogURL:   DefaultCatalogURL,
		listTTL:      DefaultListTTL,
		pageTTL:      DefaultPageTTL,
		pageCapacity: DefaultPageCapacity,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.list = expirable.NewLRU[string, *cpumark.Catalog](1, nil, c.listTTL)
	c.pages = expirable.NewLRU[string, string](c.pageCapacity, nil, c.pageTTL)

	return c
}

// FullList returns the cached catalog, fetching and extracting the list
// page when the cached one is missing or expired. Within one TTL window
// every call returns the same *Catalog.
func (c *Cache) FullList(ctx context.Context) (*cpumark.Catalog, error) {
	if catalog, ok := c.list.Get(c.catalogURL); ok {
		return catalog, nil
	}

	v, err := c.shared(ctx, "list:"+c.catalogURL, func(ctx context.Context) (any, error) {
		if catalog, ok := c.list.Get(c.catalogURL); ok {
			return catalog, nil
		}

		html, err := c.fetcher.Fetch(ctx, c.catalogURL)
		if err != nil {
			return nil, err
		}
		entries, err := c.extractor.ExtractCatalog(html)
		if err != nil {
			return nil, err
		}

		catalog := &cpumark.Catalog{Entries: entries, FetchedAt: time.Now()}
		c.list.Add(c.catalogURL, catalog)
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*cpumark.Catalog), nil
}

// DetailPage returns the cached markup of a detail page, fetching it when
// missing, expired or evicted. Adding a page beyond capacity evicts the
// least recently used one.
func (c *Cache) DetailPage(ctx context.Context, url string) (string, error) {
	if html, ok := c.pages.Get(url); ok {
		return html, nil
	}

	v, err := c.shared(ctx, "page:"+url, func(ctx context.Context) (any, error) {
		if html, ok := c.pages.Get(url); ok {
			return html, nil
		}

		html, err := c.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		c.pages.Add(url, html)
		return html, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// CPUInfo returns the full record for entry, reusing a cached detail page
// when one is available.
func (c *Cache) CPUInfo(ctx context.Context, entry cpumark.CatalogEntry) (*cpumark.DetailRecord, error) {
	html, err := c.DetailPage(ctx, entry.URL)
	if err != nil {
		return nil, err
	}
	return c.extractor.ExtractDetail(entry, html)
}

// Len returns the number of detail pages currently cached.
func (c *Cache) Len() int {
	return c.pages.Len()
}

// Cached reports whether a detail page for url is cached, without
// affecting its recency.
func (c *Cache) Cached(url string) bool {
	return c.pages.Contains(url)
}

// shared runs fn once for all concurrent callers of key. fn runs without
// the caller's cancellation, bounded only by the fetcher's own timeout;
// each caller stops waiting when its own ctx is done.
func (c *Cache) shared(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		return fn(detached)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}
