package slog

import (
	"context"
	"log/slog"
	"time"

	"webdir/internal/domain"
	"webdir/internal/ports"
)

// Ensure LoggingSeedSource implements ports.SeedSource.
var _ ports.SeedSource = (*LoggingSeedSource)(nil)

// LoggingSeedSource wraps a SeedSource with logging.
type LoggingSeedSource struct {
	next   ports.SeedSource
	source string
	logger *slog.Logger
}

// NewLoggingSeedSource creates a new LoggingSeedSource. source names the
// seed location in log lines.
func NewLoggingSeedSource(next ports.SeedSource, source string, logger *slog.Logger) *LoggingSeedSource {
	return &LoggingSeedSource{next: next, source: source, logger: logger}
}

// Fetch delegates to the wrapped source and logs the outcome.
func (s *LoggingSeedSource) Fetch(ctx context.Context) (entries []domain.Entry, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("seed fetch",
				"source", s.source,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("seed fetch",
			"source", s.source,
			"count", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Fetch(ctx)
}
