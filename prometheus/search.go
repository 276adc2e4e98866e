package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/apidoc"
)

// Search kinds.
const (
	KindTypes          = "types"
	KindMembers        = "members"
	KindTypeCandidates = "type_candidates"
	KindType           = "type"
	KindNamespace      = "namespace"
	KindNamespaces     = "namespaces"
)

// Ensure SearchService implements apidoc.SearchService.
var _ apidoc.SearchService = (*SearchService)(nil)

// SearchService wraps an apidoc.SearchService and records search metrics.
type SearchService struct {
	next    apidoc.SearchService
	metrics *Metrics
}

// NewSearchService creates a new instrumented SearchService.
func NewSearchService(next apidoc.SearchService, metrics *Metrics) *SearchService {
	return &SearchService{next: next, metrics: metrics}
}

func (s *SearchService) record(kind string) func() {
	begin := time.Now()
	s.metrics.SearchesTotal.WithLabelValues(kind).Inc()
	return func() { s.metrics.observe("search_"+kind, begin) }
}

func (s *SearchService) SearchTypes(ctx context.Context, keyword string) ([]apidoc.TypeMatch, error) {
	defer s.record(KindTypes)()
	return s.next.SearchTypes(ctx, keyword)
}

func (s *SearchService) SearchMembers(ctx context.Context, query string) (*apidoc.MemberSearch, error) {
	defer s.record(KindMembers)()
	return s.next.SearchMembers(ctx, query)
}

func (s *SearchService) FindTypeCandidates(ctx context.Context, keyword string, limit int) ([]apidoc.TypeMatch, error) {
	defer s.record(KindTypeCandidates)()
	return s.next.FindTypeCandidates(ctx, keyword, limit)
}

func (s *SearchService) FindType(ctx context.Context, name string) (*apidoc.TypeRecord, error) {
	defer s.record(KindType)()
	return s.next.FindType(ctx, name)
}

func (s *SearchService) FindNamespace(ctx context.Context, query string) (*apidoc.NamespaceListing, error) {
	defer s.record(KindNamespace)()
	return s.next.FindNamespace(ctx, query)
}

func (s *SearchService) ListNamespaces(ctx context.Context) ([]apidoc.NamespaceSummary, error) {
	defer s.record(KindNamespaces)()
	return s.next.ListNamespaces(ctx)
}
