package mock

import (
	"context"

	"github.com/fwojciec/apidoc"
)

var _ apidoc.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of apidoc.PageSource.
type PageSource struct {
	PagesFn func(ctx context.Context, namespace string) (*apidoc.PageSet, error)
}

func (s *PageSource) Pages(ctx context.Context, namespace string) (*apidoc.PageSet, error) {
	return s.PagesFn(ctx, namespace)
}
