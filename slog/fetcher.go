// Package slog provides logging decorators for sintagrab interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"sintagrab"
)

// Ensure LoggingFetcher implements sintagrab.Fetcher.
var _ sintagrab.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   sintagrab.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sintagrab.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *sintagrab.FetchResult, err error) {
	defer func(begin time.Time) {
		status, size := 0, 0
		if res != nil {
			status = res.StatusCode
			size = len(res.Body)
		}
		f.logger.Info("fetch",
			"url", url,
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
