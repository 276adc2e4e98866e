// Package search ranks catalog entries against keywords, namespace names,
// type names and member names.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/fwojciec/apidoc"
)

// Type search scores.
const (
	ScoreExactName    = 100
	ScoreExactFQN     = 95
	ScoreNameContains = 80
	ScoreFQNContains  = 60
	ScoreAllWords     = 50
	ScoreDescription  = 40
)

// DefaultCandidateLimit caps type candidates offered after a member miss.
const DefaultCandidateLimit = 8

// Ensure Engine implements apidoc.SearchService at compile time.
var _ apidoc.SearchService = (*Engine)(nil)

// Engine searches an in-memory index. It never mutates the index and is
// safe for concurrent use.
type Engine struct {
	index *apidoc.Index
}

// NewEngine returns an Engine over index. A nil index behaves as empty.
func NewEngine(index *apidoc.Index) *Engine {
	if index == nil {
		index = apidoc.NewIndex(nil, nil)
	}
	return &Engine{index: index}
}

// SearchTypes scores every type against keyword and returns the best
// apidoc.MaxResults, ordered by score then FQN.
func (e *Engine) SearchTypes(_ context.Context, keyword string) ([]apidoc.TypeMatch, error) {
	kw := strings.ToLower(keyword)
	if strings.TrimSpace(kw) == "" {
		return nil, nil
	}

	var matches []apidoc.TypeMatch
	for _, t := range e.index.Types {
		if score := scoreType(t, kw); score > 0 {
			matches = append(matches, apidoc.TypeMatch{Score: score, Type: t})
		}
	}
	return rank(matches, apidoc.MaxResults), nil
}

// scoreType scores a type against a lowercased keyword. Only the best
// matching tier counts.
func scoreType(t *apidoc.TypeRecord, kw string) int {
	name := strings.ToLower(t.Name)
	fqn := strings.ToLower(t.FQN)
	desc := strings.ToLower(t.Description)

	switch {
	case name == kw:
		return ScoreExactName
	case strings.Contains(name, kw):
		return ScoreNameContains
	case strings.Contains(fqn, kw):
		return ScoreFQNContains
	case strings.Contains(desc, kw):
		return ScoreDescription
	case strings.Contains(kw, " "):
		combined := name + " " + desc + " " + fqn
		for _, w := range strings.Fields(kw) {
			if !strings.Contains(combined, w) {
				return 0
			}
		}
		return ScoreAllWords
	}
	return 0
}

// SearchMembers finds properties, methods and events whose name contains
// query, in catalog order. When nothing matches, the result carries type
// candidates instead.
func (e *Engine) SearchMembers(ctx context.Context, query string) (*apidoc.MemberSearch, error) {
	q := strings.ToLower(query)
	if strings.TrimSpace(q) == "" {
		return &apidoc.MemberSearch{}, nil
	}

	categories := []apidoc.MemberCategory{apidoc.CategoryProperties, apidoc.CategoryMethods, apidoc.CategoryEvents}

	result := &apidoc.MemberSearch{}
collect:
	for _, t := range e.index.Types {
		for _, category := range categories {
			for _, m := range t.MembersOf(category) {
				if !strings.Contains(strings.ToLower(m.Name), q) {
					continue
				}
				result.Hits = append(result.Hits, apidoc.MemberHit{Type: t, Category: category, Member: m})
				if len(result.Hits) == apidoc.MaxResults {
					break collect
				}
			}
		}
	}

	if len(result.Hits) == 0 {
		candidates, err := e.FindTypeCandidates(ctx, query, DefaultCandidateLimit)
		if err != nil {
			return nil, err
		}
		result.TypeCandidates = candidates
	}
	return result, nil
}

// FindTypeCandidates ranks types by name and FQN only.
func (e *Engine) FindTypeCandidates(_ context.Context, keyword string, limit int) ([]apidoc.TypeMatch, error) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	var matches []apidoc.TypeMatch
	for _, t := range e.index.Types {
		name := strings.ToLower(t.Name)
		fqn := strings.ToLower(t.FQN)

		var score int
		switch {
		case kw == name:
			score = ScoreExactName
		case kw == fqn:
			score = ScoreExactFQN
		case strings.Contains(name, kw):
			score = ScoreNameContains
		case strings.Contains(fqn, kw):
			score = ScoreFQNContains
		}
		if score > 0 {
			matches = append(matches, apidoc.TypeMatch{Score: score, Type: t})
		}
	}
	return rank(matches, limit), nil
}

// FindType returns the type with FQN name, else the first type in catalog
// order whose FQN or short name equals name case-insensitively.
func (e *Engine) FindType(_ context.Context, name string) (*apidoc.TypeRecord, error) {
	if t, ok := e.index.Type(name); ok {
		return t, nil
	}
	for _, t := range e.index.Types {
		if strings.EqualFold(t.FQN, name) || strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return nil, nil
}

// FindNamespace returns the namespace whose name equals query
// case-insensitively, else the first namespace in catalog order whose name
// contains it.
func (e *Engine) FindNamespace(_ context.Context, query string) (*apidoc.NamespaceListing, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var found *apidoc.NamespaceRecord
	for _, ns := range e.index.Namespaces {
		if strings.ToLower(ns.Name) == q {
			found = ns
			break
		}
	}
	if found == nil {
		for _, ns := range e.index.Namespaces {
			if strings.Contains(strings.ToLower(ns.Name), q) {
				found = ns
				break
			}
		}
	}
	if found == nil {
		return nil, nil
	}

	names := append([]string(nil), found.Types...)
	sort.Strings(names)

	listing := &apidoc.NamespaceListing{Namespace: found, Types: make([]*apidoc.TypeRecord, 0, len(names))}
	for _, short := range names {
		fqn := found.Name + "." + short
		t, ok := e.index.Type(fqn)
		if !ok {
			// Listed in the namespace but missing from the type index.
			t = &apidoc.TypeRecord{FQN: fqn, Name: short, Namespace: found.Name}
		}
		listing.Types = append(listing.Types, t)
	}
	return listing, nil
}

// ListNamespaces returns every namespace sorted by name.
func (e *Engine) ListNamespaces(_ context.Context) ([]apidoc.NamespaceSummary, error) {
	out := make([]apidoc.NamespaceSummary, 0, len(e.index.Namespaces))
	for _, ns := range e.index.Namespaces {
		out = append(out, apidoc.NamespaceSummary{
			Name:        ns.Name,
			Description: ns.Description,
			TypeCount:   len(ns.Types),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// rank sorts matches by score descending then FQN ascending and keeps the
// first limit.
func rank(matches []apidoc.TypeMatch, limit int) []apidoc.TypeMatch {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Type.FQN < matches[j].Type.FQN
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
