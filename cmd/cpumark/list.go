package main

import (
	"fmt"

	"github.com/fwojciec/cpumark/markdown"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Service.Catalog(deps.Ctx)
	if err != nil {
		return reportError(deps, err)
	}

	entries := catalog.Entries
	if c.Filter != "" {
		entries = deps.Filter.Filter(c.Filter, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No CPUs found.")
		return nil
	}

	return markdown.NewWriter(deps.Stdout).WriteCatalog(entries)
}
