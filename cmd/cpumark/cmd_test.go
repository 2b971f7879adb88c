package main_test

import (
	"bytes"
	"context"

	"github.com/fwojciec/cpumark"
	main "github.com/fwojciec/cpumark/cmd/cpumark"
	"github.com/fwojciec/cpumark/mock"
)

var (
	ryzenEntry = cpumark.CatalogEntry{Name: "AMD Ryzen 5 1600", URL: "https://www.cpubenchmark.net/cpu.php?cpu=AMD+Ryzen+5+1600&id=2984"}
	intelEntry = cpumark.CatalogEntry{Name: "Intel Core i7-7700K @ 4.20GHz", URL: "https://www.cpubenchmark.net/cpu.php?cpu=Intel+Core+i7-7700K+%40+4.20GHz&id=2874"}
)

// newDeps returns dependencies writing to fresh buffers.
func newDeps(svc *mock.CatalogService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Service: svc,
	}, stdout, stderr
}

// recordFor returns a small spec sheet for entry.
func recordFor(entry cpumark.CatalogEntry, socket string) *cpumark.DetailRecord {
	return &cpumark.DetailRecord{
		Name: entry.Name,
		URL:  entry.URL,
		Details: cpumark.Details{
			{Key: "Multithread Rating:", Value: "12345"},
			{Key: "Socket:", Value: socket},
			{Key: "First Seen:", Value: ""},
		},
	}
}

// findMatchByPrefix resolves queries "ryzen..." and "i7..." to the test
// entries and reports no match for anything else.
func findMatchByPrefix(_ context.Context, query string) (cpumark.Match, bool, error) {
	switch {
	case len(query) >= 5 && query[:5] == "ryzen":
		return cpumark.Match{Name: ryzenEntry.Name, Score: 95, Entry: ryzenEntry}, true, nil
	case len(query) >= 2 && query[:2] == "i7":
		return cpumark.Match{Name: intelEntry.Name, Score: 92, Entry: intelEntry}, true, nil
	}
	return cpumark.Match{}, false, nil
}
