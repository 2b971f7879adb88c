package cpumark

import (
	"strings"
	"time"
)

// CatalogEntry is the minimal identity of one CPU in the benchmark catalog.
// Entries are identified by URL.
type CatalogEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Catalog is one snapshot of the full CPU list. A refresh replaces the
// whole catalog; a Catalog is never mutated after construction, so index
// positions are only meaningful against the Catalog they came from.
type Catalog struct {
	Entries   []CatalogEntry `json:"entries"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// Names returns the entry names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

// Detail is a single labeled specification value.
// An empty Value means the spec is unknown.
type Detail struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Details is an insertion-ordered set of specifications.
// Keys are unique and always end with ':'.
type Details []Detail

// Add appends a detail unless the key is already present.
// The key is normalized to end with ':'. Reports whether it was added.
func (d *Details) Add(key, value string) bool {
	key = NormalizeKey(key)
	if _, ok := d.Get(key); ok {
		return false
	}
	*d = append(*d, Detail{Key: key, Value: value})
	return true
}

// Get returns the value stored for key.
func (d Details) Get(key string) (string, bool) {
	key = NormalizeKey(key)
	for _, detail := range d {
		if detail.Key == key {
			return detail.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in insertion order.
func (d Details) Keys() []string {
	keys := make([]string, len(d))
	for i, detail := range d {
		keys[i] = detail.Key
	}
	return keys
}

// Len returns the number of details.
func (d Details) Len() int {
	return len(d)
}

// NormalizeKey trims a spec label and ensures it ends with ':'.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if !strings.HasSuffix(key, ":") {
		key += ":"
	}
	return key
}

// DetailRecord is the full specification set for one catalog entry.
type DetailRecord struct {
	Name    string  `json:"name"`
	URL     string  `json:"url"`
	Details Details `json:"details"`
}

// Match is a catalog entry resolved from a free-text query.
// Index refers to the Catalog the match was computed against and Entry
// is the entry found there at match time.
type Match struct {
	Name  string       `json:"name"`
	Score float64      `json:"score"`
	Index int          `json:"index"`
	Entry CatalogEntry `json:"entry"`
}
