package main

import (
	"fmt"

	"github.com/fwojciec/cpumark"
	"github.com/fwojciec/cpumark/markdown"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	query := joinQuery(c.Query)
	if query == "" {
		return reportError(deps, cpumark.Errorf(cpumark.EINVALID, "CPU name is empty"))
	}

	rec, err := lookup(deps, query)
	if err != nil {
		return err
	}

	return markdown.NewWriter(deps.Stdout).WriteDetail(rec)
}

// lookup resolves query to its best match and loads its details.
func lookup(deps *Dependencies, query string) (*cpumark.DetailRecord, error) {
	match, ok, err := deps.Service.FindMatch(deps.Ctx, query)
	if err != nil {
		return nil, reportError(deps, err)
	}
	if !ok {
		fmt.Fprintf(deps.Stderr, "Hint: use 'cpumark search %s' to see close matches\n", query)
		return nil, reportError(deps, cpumark.Errorf(cpumark.ENOTFOUND, "No CPU found matching %q.", query))
	}

	rec, err := deps.Service.CPUInfo(deps.Ctx, match.Entry)
	if err != nil {
		return nil, reportError(deps, err)
	}
	return rec, nil
}
