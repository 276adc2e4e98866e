// Package slog provides logging decorators for apidoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/apidoc"
)

// Ensure LoggingResolver implements apidoc.Resolver.
var _ apidoc.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   apidoc.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next apidoc.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, rawID string) (res *apidoc.Resolution, err error) {
	defer func(begin time.Time) {
		attrs := []any{"input", rawID, "duration", time.Since(begin), "err", err}
		if res != nil {
			attrs = append(attrs,
				"id", res.ID,
				"namespace", res.Namespace,
				"strategy", res.Strategy,
				"related", len(res.Related),
			)
		}
		r.logger.Info("resolve", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, rawID)
}

// ResolveType delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) ResolveType(ctx context.Context, name string) (id string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve type",
			"name", name,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveType(ctx, name)
}

// Suggest delegates to the wrapped resolver and logs the candidate count.
func (r *LoggingResolver) Suggest(ctx context.Context, namespace, target string, limit int) (candidates []string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("suggest",
			"namespace", namespace,
			"target", target,
			"count", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Suggest(ctx, namespace, target, limit)
}

// Page delegates to the wrapped resolver.
func (r *LoggingResolver) Page(ctx context.Context, namespace, id string) (page *apidoc.PageRecord, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("page",
			"namespace", namespace,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Page(ctx, namespace, id)
}
