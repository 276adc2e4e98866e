package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/apidoc"
)

// Ensure LoggingPageSource implements apidoc.PageSource.
var _ apidoc.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with debug logging.
type LoggingPageSource struct {
	next   apidoc.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next apidoc.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// Pages delegates to the wrapped source and logs the page count.
func (s *LoggingPageSource) Pages(ctx context.Context, namespace string) (set *apidoc.PageSet, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("namespace pages",
			"namespace", namespace,
			"count", set.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Pages(ctx, namespace)
}
