package mock

import (
	"context"

	"github.com/fwojciec/apidoc"
)

var _ apidoc.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of apidoc.SearchService.
type SearchService struct {
	SearchTypesFn        func(ctx context.Context, keyword string) ([]apidoc.TypeMatch, error)
	SearchMembersFn      func(ctx context.Context, query string) (*apidoc.MemberSearch, error)
	FindTypeCandidatesFn func(ctx context.Context, keyword string, limit int) ([]apidoc.TypeMatch, error)
	FindTypeFn           func(ctx context.Context, name string) (*apidoc.TypeRecord, error)
	FindNamespaceFn      func(ctx context.Context, query string) (*apidoc.NamespaceListing, error)
	ListNamespacesFn     func(ctx context.Context) ([]apidoc.NamespaceSummary, error)
}

func (s *SearchService) SearchTypes(ctx context.Context, keyword string) ([]apidoc.TypeMatch, error) {
	return s.SearchTypesFn(ctx, keyword)
}

func (s *SearchService) SearchMembers(ctx context.Context, query string) (*apidoc.MemberSearch, error) {
	return s.SearchMembersFn(ctx, query)
}

func (s *SearchService) FindTypeCandidates(ctx context.Context, keyword string, limit int) ([]apidoc.TypeMatch, error) {
	return s.FindTypeCandidatesFn(ctx, keyword, limit)
}

func (s *SearchService) FindType(ctx context.Context, name string) (*apidoc.TypeRecord, error) {
	return s.FindTypeFn(ctx, name)
}

func (s *SearchService) FindNamespace(ctx context.Context, query string) (*apidoc.NamespaceListing, error) {
	return s.FindNamespaceFn(ctx, query)
}

func (s *SearchService) ListNamespaces(ctx context.Context) ([]apidoc.NamespaceSummary, error) {
	return s.ListNamespacesFn(ctx)
}
