package main

import (
	"fmt"

	"github.com/fwojciec/cpumark"
	"github.com/fwojciec/cpumark/markdown"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := joinQuery(c.Query)
	if query == "" {
		return reportError(deps, cpumark.Errorf(cpumark.EINVALID, "search query is empty"))
	}

	matches, err := deps.Service.FindMatches(deps.Ctx, query)
	if err != nil {
		return reportError(deps, err)
	}

	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches found.")
		return nil
	}

	return markdown.NewWriter(deps.Stdout).WriteMatches(query, matches)
}
