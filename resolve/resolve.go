// Package resolve maps loosely-specified identifiers to canonical
// documentation identifiers. Resolution runs an ordered list of strategies;
// the first one to answer wins.
package resolve

import (
	"context"
	"strings"

	"github.com/fwojciec/apidoc"
)

// Ensure Resolver implements apidoc.Resolver at compile time.
var _ apidoc.Resolver = (*Resolver)(nil)

// Resolver resolves identifiers against a lookup table and namespace pages.
type Resolver struct {
	Pages  apidoc.PageSource
	Lookup apidoc.LookupTable
	Index  *apidoc.Index

	// Strategies run in order. Defaults to DefaultStrategies.
	Strategies []Strategy

	// SuggestLimit caps the candidates offered on a miss.
	// Defaults to apidoc.DefaultSuggestLimit.
	SuggestLimit int
}

// Resolve normalizes rawID and runs the strategies until one answers.
// When none does, the returned Resolution has an empty ID, the inferred
// namespace if any, and near-match candidates in Related.
func (r *Resolver) Resolve(ctx context.Context, rawID string) (*apidoc.Resolution, error) {
	s := &State{
		ID:     apidoc.Normalize(rawID),
		Lookup: r.Lookup,
		Pages:  r.Pages,
	}

	strategies := r.Strategies
	if strategies == nil {
		strategies = DefaultStrategies
	}
	for _, strategy := range strategies {
		res, err := strategy.Resolve(ctx, s)
		if err != nil {
			return nil, err
		}
		if res != nil {
			if res.Strategy == "" {
				res.Strategy = strategy.Name
			}
			return res, nil
		}
	}

	res := &apidoc.Resolution{}
	ns, ok := s.Namespace()
	if !ok {
		return res, nil
	}
	res.Namespace = ns

	candidates, err := r.Suggest(ctx, ns, s.ID, r.SuggestLimit)
	if err != nil {
		return nil, err
	}
	res.Related = candidates
	return res, nil
}

// ResolveType converts a type name into an identifier. It tries an exact
// FQN, then a case-insensitive FQN or short name in catalog order, then
// each identifier prefix against the lookup table.
func (r *Resolver) ResolveType(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apidoc.Errorf(apidoc.EINVALID, "type name required")
	}

	if r.Index != nil {
		if _, ok := r.Index.Type(name); ok {
			return apidoc.PrefixType + name, nil
		}
		for _, t := range r.Index.Types {
			if strings.EqualFold(t.FQN, name) || strings.EqualFold(t.Name, name) {
				return apidoc.PrefixType + t.FQN, nil
			}
		}
	}

	for _, prefix := range apidoc.LookupPrefixes {
		if r.Lookup.Has(prefix + name) {
			return prefix + name, nil
		}
	}

	return "", apidoc.Errorf(apidoc.ENOTFOUND, "type %q not found", name)
}

// Page returns the page of id in namespace.
func (r *Resolver) Page(ctx context.Context, namespace, id string) (*apidoc.PageRecord, error) {
	set, err := r.Pages.Pages(ctx, namespace)
	if err != nil {
		return nil, err
	}
	page, ok := set.Get(id)
	if !ok {
		return nil, apidoc.Errorf(apidoc.ENOTFOUND, "page not found (namespace=%s, id=%s)", namespace, id)
	}
	return page, nil
}

// State carries one resolution attempt through the strategies.
type State struct {
	// ID is the normalized identifier.
	ID     string
	Lookup apidoc.LookupTable
	Pages  apidoc.PageSource

	ns       string
	nsOK     bool
	inferred bool
}

// Namespace returns the namespace inferred from the identifier's shape.
func (s *State) Namespace() (string, bool) {
	if !s.inferred {
		s.ns, s.nsOK = apidoc.InferNamespace(s.ID)
		s.inferred = true
	}
	return s.ns, s.nsOK
}
