package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/cpumark"
	main "github.com/fwojciec/cpumark/cmd/cpumark"
	"github.com/fwojciec/cpumark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	catalogFn := func(context.Context) (*cpumark.Catalog, error) {
		return &cpumark.Catalog{Entries: []cpumark.CatalogEntry{ryzenEntry, intelEntry}}, nil
	}

	t.Run("lists every catalog entry with its URL", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.CatalogService{CatalogFn: catalogFn})

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, ryzenEntry.Name)
		assert.Contains(t, output, ryzenEntry.URL)
		assert.Contains(t, output, intelEntry.Name)
	})

	t.Run("applies the fuzzy filter", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.CatalogService{CatalogFn: catalogFn})
		var gotQuery string
		deps.Filter = &mock.CatalogFilter{
			FilterFn: func(query string, entries []cpumark.CatalogEntry) []cpumark.CatalogEntry {
				gotQuery = query
				return entries[1:]
			},
		}

		err := (&main.ListCmd{Filter: "7700k"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "7700k", gotQuery)
		assert.Contains(t, stdout.String(), intelEntry.Name)
		assert.NotContains(t, stdout.String(), ryzenEntry.Name)
	})

	t.Run("shows message when nothing is listed", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.CatalogService{CatalogFn: catalogFn})
		deps.Filter = &mock.CatalogFilter{
			FilterFn: func(string, []cpumark.CatalogEntry) []cpumark.CatalogEntry { return nil },
		}

		err := (&main.ListCmd{Filter: "xeon"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No CPUs found.")
	})

	t.Run("reports an unavailable data source", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(&mock.CatalogService{
			CatalogFn: func(context.Context) (*cpumark.Catalog, error) {
				return nil, cpumark.Errorf(cpumark.EFETCH, "HTTP 503 for https://www.cpubenchmark.net/cpu_list.php")
			},
		})

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, cpumark.EFETCH, cpumark.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: data source unavailable, try again later")
		assert.NotContains(t, stderr.String(), "503")
		assert.Empty(t, stdout.String())
	})
}
