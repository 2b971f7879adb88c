package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/cpumark"
)

// unavailableMessage is shown whenever the benchmark site could not be
// reached or its pages could not be read.
const unavailableMessage = "data source unavailable, try again later"

// reportError writes a user-facing error line to stderr and returns err.
// Upstream failures are reported without their cause, which the logging
// decorators record.
func reportError(deps *Dependencies, err error) error {
	switch cpumark.ErrorCode(err) {
	case cpumark.EFETCH, cpumark.EEXTRACT:
		fmt.Fprintf(deps.Stderr, "error: %s\n", unavailableMessage)
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", cpumark.ErrorMessage(err))
	}
	return err
}

// joinQuery joins positional words into one query string.
func joinQuery(words []string) string {
	return strings.TrimSpace(strings.Join(words, " "))
}
