package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/apidoc"
)

// Strategy is one step of the resolution chain. Resolve returns a nil
// Resolution to pass control to the next strategy.
type Strategy struct {
	Name    string
	Resolve func(ctx context.Context, s *State) (*apidoc.Resolution, error)
}

// DefaultStrategies is the resolution order. Overload groups are expanded
// before the lookup table is consulted; the page-store checks recover from a
// stale or incomplete lookup table.
var DefaultStrategies = []Strategy{
	{Name: apidoc.StrategyOverload, Resolve: resolveOverloadGroup},
	{Name: apidoc.StrategyLookup, Resolve: resolveLookup},
	{Name: apidoc.StrategyPages, Resolve: resolveNamespacePages},
	{Name: apidoc.StrategyOverloadRoot, Resolve: resolveOverloadRoot},
}

// resolveOverloadGroup expands an Overload: id into its first concrete
// overload. Without concrete overloads it falls back to the literal
// overview page.
func resolveOverloadGroup(ctx context.Context, s *State) (*apidoc.Resolution, error) {
	if !apidoc.IsOverload(s.ID) {
		return nil, nil
	}
	ns, ok := s.Namespace()
	if !ok {
		return nil, nil
	}

	res, err := expandOverload(ctx, s.Pages, s.ID, ns)
	if res != nil || err != nil {
		return res, err
	}

	set, err := s.Pages.Pages(ctx, ns)
	if err != nil {
		return nil, err
	}
	if set.Has(s.ID) {
		return &apidoc.Resolution{
			ID:        s.ID,
			Namespace: ns,
			Advisory:  "No concrete overload found; showing the overload overview page.",
			Strategy:  apidoc.StrategyOverloadOverview,
		}, nil
	}
	return nil, nil
}

func resolveLookup(_ context.Context, s *State) (*apidoc.Resolution, error) {
	ns, ok := s.Lookup.Namespace(s.ID)
	if !ok {
		return nil, nil
	}
	return &apidoc.Resolution{ID: s.ID, Namespace: ns}, nil
}

func resolveNamespacePages(ctx context.Context, s *State) (*apidoc.Resolution, error) {
	ns, ok := s.Namespace()
	if !ok {
		return nil, nil
	}
	set, err := s.Pages.Pages(ctx, ns)
	if err != nil {
		return nil, err
	}
	if !set.Has(s.ID) {
		return nil, nil
	}
	return &apidoc.Resolution{ID: s.ID, Namespace: ns}, nil
}

// resolveOverloadRoot retries expansion in the inferred namespace. A method
// id without a parameter list is treated as its overload group.
func resolveOverloadRoot(ctx context.Context, s *State) (*apidoc.Resolution, error) {
	ns, ok := s.Namespace()
	if !ok {
		return nil, nil
	}

	group := s.ID
	if !apidoc.IsOverload(group) {
		if !strings.HasPrefix(group, apidoc.PrefixMethod) || strings.Contains(group, "(") {
			return nil, nil
		}
		group = apidoc.PrefixOverload + group
	}
	return expandOverload(ctx, s.Pages, group, ns)
}

func expandOverload(ctx context.Context, pages apidoc.PageSource, id, ns string) (*apidoc.Resolution, error) {
	first, all, err := ExpandOverload(ctx, pages, id, ns)
	if err != nil || first == "" {
		return nil, err
	}
	return &apidoc.Resolution{
		ID:        first,
		Namespace: ns,
		Related:   all,
		Advisory:  fmt.Sprintf("Overload detected; resolved to `%s`; %d overloads available.", first, len(all)),
	}, nil
}
