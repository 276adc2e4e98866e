package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/apidoc"
)

// Ensure LoggingSearchService implements apidoc.SearchService.
var _ apidoc.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
type LoggingSearchService struct {
	next   apidoc.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next apidoc.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

func (s *LoggingSearchService) log(op, query string, count int, begin time.Time, err error) {
	s.logger.Info(op,
		"query", query,
		"count", count,
		"duration", time.Since(begin),
		"err", err,
	)
}

// SearchTypes delegates to the wrapped service and logs the result count.
func (s *LoggingSearchService) SearchTypes(ctx context.Context, keyword string) (matches []apidoc.TypeMatch, err error) {
	defer func(begin time.Time) { s.log("search types", keyword, len(matches), begin, err) }(time.Now())
	return s.next.SearchTypes(ctx, keyword)
}

// SearchMembers delegates to the wrapped service and logs the hit count.
func (s *LoggingSearchService) SearchMembers(ctx context.Context, query string) (result *apidoc.MemberSearch, err error) {
	defer func(begin time.Time) {
		var hits, candidates int
		if result != nil {
			hits, candidates = len(result.Hits), len(result.TypeCandidates)
		}
		s.logger.Info("search members",
			"query", query,
			"count", hits,
			"candidates", candidates,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchMembers(ctx, query)
}

// FindTypeCandidates delegates to the wrapped service.
func (s *LoggingSearchService) FindTypeCandidates(ctx context.Context, keyword string, limit int) (matches []apidoc.TypeMatch, err error) {
	defer func(begin time.Time) { s.log("find type candidates", keyword, len(matches), begin, err) }(time.Now())
	return s.next.FindTypeCandidates(ctx, keyword, limit)
}

// FindType delegates to the wrapped service.
func (s *LoggingSearchService) FindType(ctx context.Context, name string) (t *apidoc.TypeRecord, err error) {
	defer func(begin time.Time) {
		var count int
		if t != nil {
			count = 1
		}
		s.log("find type", name, count, begin, err)
	}(time.Now())
	return s.next.FindType(ctx, name)
}

// FindNamespace delegates to the wrapped service.
func (s *LoggingSearchService) FindNamespace(ctx context.Context, query string) (listing *apidoc.NamespaceListing, err error) {
	defer func(begin time.Time) {
		var count int
		if listing != nil {
			count = len(listing.Types)
		}
		s.log("find namespace", query, count, begin, err)
	}(time.Now())
	return s.next.FindNamespace(ctx, query)
}

// ListNamespaces delegates to the wrapped service.
func (s *LoggingSearchService) ListNamespaces(ctx context.Context) (out []apidoc.NamespaceSummary, err error) {
	defer func(begin time.Time) { s.log("list namespaces", "", len(out), begin, err) }(time.Now())
	return s.next.ListNamespaces(ctx)
}
