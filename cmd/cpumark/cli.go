package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/cpumark"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service cpumark.CatalogService
	Filter  cpumark.CatalogFilter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout   time.Duration `default:"10s" env:"CPUMARK_TIMEOUT" help:"Timeout for each upstream request"`
	UserAgent string        `name:"user-agent" env:"CPUMARK_USER_AGENT" help:"User-Agent sent to the benchmark site"`
	RPS       float64       `name:"rps" env:"CPUMARK_RPS" help:"Maximum upstream requests per second (0 = unpaced)"`
	Verbose   bool          `short:"v" help:"Log upstream requests to stderr"`

	List    ListCmd    `cmd:"" help:"List CPUs in the benchmark catalog"`
	Search  SearchCmd  `cmd:"" help:"Search the catalog for CPUs matching a name"`
	Show    ShowCmd    `cmd:"" help:"Show benchmark details for the best matching CPU"`
	Compare CompareCmd `cmd:"" help:"Compare two CPUs side by side"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Filter string `short:"f" help:"Only list CPUs fuzzy matching this text"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"CPU name to search for"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Query []string `arg:"" help:"CPU name to look up"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	CPUs []string `arg:"" name:"cpus" help:"Two CPU names separated by a comma, e.g. \"ryzen 5 1600, i7 7700k\""`
}
