package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/cpumark/cmd/cpumark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"list", "search", "show", "compare"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_GlobalFlagDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"search", "ryzen"})

	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cli.Timeout)
	assert.Empty(t, cli.UserAgent)
	assert.Zero(t, cli.RPS)
	assert.False(t, cli.Verbose)
	assert.Equal(t, []string{"ryzen"}, cli.Search.Query)
}

func TestCLI_GlobalFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--timeout", "3s", "--rps", "0.5", "-v", "compare", "ryzen 5 1600,", "i7 7700k"})

	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cli.Timeout)
	assert.InDelta(t, 0.5, cli.RPS, 1e-9)
	assert.True(t, cli.Verbose)
	assert.Equal(t, []string{"ryzen 5 1600,", "i7 7700k"}, cli.Compare.CPUs)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"list", "search", "show", "compare"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}
