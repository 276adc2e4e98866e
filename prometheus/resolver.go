package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/apidoc"
)

// Ensure Resolver implements apidoc.Resolver.
var _ apidoc.Resolver = (*Resolver)(nil)

// Resolver wraps an apidoc.Resolver and records resolution metrics.
type Resolver struct {
	next    apidoc.Resolver
	metrics *Metrics
}

// NewResolver creates a new instrumented Resolver.
func NewResolver(next apidoc.Resolver, metrics *Metrics) *Resolver {
	return &Resolver{next: next, metrics: metrics}
}

// Resolve counts each call by answering strategy and outcome.
func (r *Resolver) Resolve(ctx context.Context, rawID string) (*apidoc.Resolution, error) {
	defer r.metrics.observe("resolve", time.Now())

	res, err := r.next.Resolve(ctx, rawID)
	switch {
	case err != nil:
		r.metrics.ResolutionsTotal.WithLabelValues("", OutcomeError).Inc()
	case res.Resolved():
		r.metrics.ResolutionsTotal.WithLabelValues(res.Strategy, OutcomeResolved).Inc()
	default:
		r.metrics.ResolutionsTotal.WithLabelValues("", OutcomeUnresolved).Inc()
	}
	return res, err
}

func (r *Resolver) ResolveType(ctx context.Context, name string) (string, error) {
	defer r.metrics.observe("resolve_type", time.Now())
	return r.next.ResolveType(ctx, name)
}

func (r *Resolver) Suggest(ctx context.Context, namespace, target string, limit int) ([]string, error) {
	defer r.metrics.observe("suggest", time.Now())
	return r.next.Suggest(ctx, namespace, target, limit)
}

func (r *Resolver) Page(ctx context.Context, namespace, id string) (*apidoc.PageRecord, error) {
	defer r.metrics.observe("page", time.Now())
	return r.next.Page(ctx, namespace, id)
}
