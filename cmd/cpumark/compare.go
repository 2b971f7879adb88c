package main

import (
	"strings"

	"github.com/fwojciec/cpumark"
	"github.com/fwojciec/cpumark/markdown"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	queries, err := splitComparison(joinQuery(c.CPUs))
	if err != nil {
		return reportError(deps, err)
	}

	records := make([]*cpumark.DetailRecord, 0, len(queries))
	for _, query := range queries {
		rec, err := lookup(deps, query)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	return markdown.NewWriter(deps.Stdout).WriteComparison(records)
}

// splitComparison splits a comma-separated pair of CPU names.
func splitComparison(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	queries := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			queries = append(queries, p)
		}
	}
	if len(queries) != 2 {
		return nil, cpumark.Errorf(cpumark.EINVALID, "compare needs exactly two CPUs separated by a comma, e.g. \"ryzen 5 1600, i7 7700k\"")
	}
	return queries, nil
}
