package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cpumark"
)

// Ensure LoggingCatalogService implements cpumark.CatalogService.
var _ cpumark.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with logging.
// Failures are logged at error level with their cause.
type LoggingCatalogService struct {
	next   cpumark.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next cpumark.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// Catalog delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) Catalog(ctx context.Context) (catalog *cpumark.Catalog, err error) {
	defer func(begin time.Time) {
		s.log(err, "catalog",
			"count", catalog.Len(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Catalog(ctx)
}

// FindMatches delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FindMatches(ctx context.Context, query string) (matches []cpumark.Match, err error) {
	defer func(begin time.Time) {
		s.log(err, "find matches",
			"query", query,
			"count", len(matches),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindMatches(ctx, query)
}

// FindMatch delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FindMatch(ctx context.Context, query string) (match cpumark.Match, ok bool, err error) {
	defer func(begin time.Time) {
		s.log(err, "find match",
			"query", query,
			"match", match.Name,
			"score", match.Score,
			"found", ok,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindMatch(ctx, query)
}

// CPUInfo delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) CPUInfo(ctx context.Context, entry cpumark.CatalogEntry) (rec *cpumark.DetailRecord, err error) {
	defer func(begin time.Time) {
		specs := 0
		if rec != nil {
			specs = rec.Details.Len()
		}
		s.log(err, "cpu info",
			"url", entry.URL,
			"specs", specs,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.CPUInfo(ctx, entry)
}

func (s *LoggingCatalogService) log(err error, msg string, args ...any) {
	if err != nil {
		s.logger.Error(msg, append(args,
			"op", cpumark.ErrorOp(err),
			"code", cpumark.ErrorCode(err),
			"err", err,
		)...)
		return
	}
	s.logger.Info(msg, args...)
}
