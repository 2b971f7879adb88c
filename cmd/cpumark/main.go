package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cpumark"
	"github.com/fwojciec/cpumark/catalog"
	"github.com/fwojciec/cpumark/fuzzy"
	"github.com/fwojciec/cpumark/goquery"
	cpuhttp "github.com/fwojciec/cpumark/http"
	"github.com/fwojciec/cpumark/levenshtein"
	"github.com/fwojciec/cpumark/lru"
	cpuslog "github.com/fwojciec/cpumark/slog"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Upstream locations. Set before calling Run().
	BaseURL    string
	CatalogURL string

	// Services for end-to-end testing. Wired from the flags when nil.
	Service cpumark.CatalogService
	Filter  cpumark.CatalogFilter

	fetcher cpumark.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		BaseURL:    goquery.DefaultBaseURL,
		CatalogURL: lru.DefaultCatalogURL,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cpumark"),
		kong.Description("Look up and compare CPU benchmark results."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "no command specified. Run 'cpumark --help' to see available commands")
		return cpumark.Errorf(cpumark.EINVALID, "no command specified")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Service == nil {
		m.Service = m.newService(cli, deps.Logger)
	}
	defer m.Close()
	if m.Filter == nil {
		m.Filter = fuzzy.NewFilter()
	}
	deps.Service = m.Service
	deps.Filter = m.Filter

	return kongCtx.Run(deps)
}

// newService wires the fetch, cache and matching layers.
func (m *Main) newService(cli *CLI, logger *slog.Logger) cpumark.CatalogService {
	opts := []cpuhttp.Option{cpuhttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, cpuhttp.WithUserAgent(cli.UserAgent))
	}
	if cli.RPS > 0 {
		opts = append(opts, cpuhttp.WithLimiter(rate.NewLimiter(rate.Limit(cli.RPS), 1)))
	}
	m.fetcher = cpuslog.NewLoggingFetcher(cpuhttp.NewFetcher(opts...), logger)

	extractor := goquery.NewExtractor(goquery.WithBaseURL(m.BaseURL))
	cache := lru.NewCache(m.fetcher, extractor, lru.WithCatalogURL(m.CatalogURL))
	service := catalog.NewService(cache, levenshtein.NewMatcher())
	return cpuslog.NewLoggingCatalogService(service, logger)
}
