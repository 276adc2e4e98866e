package mock

import (
	"context"

	"github.com/fwojciec/apidoc"
)

var _ apidoc.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of apidoc.Resolver.
type Resolver struct {
	ResolveFn     func(ctx context.Context, rawID string) (*apidoc.Resolution, error)
	ResolveTypeFn func(ctx context.Context, name string) (string, error)
	SuggestFn     func(ctx context.Context, namespace, target string, limit int) ([]string, error)
	PageFn        func(ctx context.Context, namespace, id string) (*apidoc.PageRecord, error)
}

func (r *Resolver) Resolve(ctx context.Context, rawID string) (*apidoc.Resolution, error) {
	return r.ResolveFn(ctx, rawID)
}

func (r *Resolver) ResolveType(ctx context.Context, name string) (string, error) {
	return r.ResolveTypeFn(ctx, name)
}

func (r *Resolver) Suggest(ctx context.Context, namespace, target string, limit int) ([]string, error) {
	return r.SuggestFn(ctx, namespace, target, limit)
}

func (r *Resolver) Page(ctx context.Context, namespace, id string) (*apidoc.PageRecord, error) {
	return r.PageFn(ctx, namespace, id)
}
