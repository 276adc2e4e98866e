package apidoc

import "context"

// MaxResults caps every ranked search result list.
const MaxResults = 20

// TypeMatch is a scored type search result.
type TypeMatch struct {
	Score int         `json:"score"`
	Type  *TypeRecord `json:"type"`
}

// MemberHit is a member whose name matched a member search.
type MemberHit struct {
	Type     *TypeRecord    `json:"type"`
	Category MemberCategory `json:"category"`
	Member   Member         `json:"member"`
}

// MemberSearch is the result of a member search. TypeCandidates is only
// populated when no member matched, to redirect the caller to a type.
type MemberSearch struct {
	Hits           []MemberHit `json:"hits"`
	TypeCandidates []TypeMatch `json:"typeCandidates,omitempty"`
}

// NamespaceListing is a namespace with its resolved type records.
type NamespaceListing struct {
	Namespace *NamespaceRecord `json:"namespace"`
	Types     []*TypeRecord    `json:"types"`
}

// NamespaceSummary is a row in the namespace listing.
type NamespaceSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TypeCount   int    `json:"typeCount"`
}

// SearchService provides ranked search over the type catalog.
// Empty results are valid outcomes, never errors.
type SearchService interface {
	// SearchTypes ranks types against a keyword.
	SearchTypes(ctx context.Context, keyword string) ([]TypeMatch, error)

	// SearchMembers finds members by name across all types.
	SearchMembers(ctx context.Context, query string) (*MemberSearch, error)

	// FindTypeCandidates ranks types by name and FQN only.
	FindTypeCandidates(ctx context.Context, keyword string, limit int) ([]TypeMatch, error)

	// FindType returns the type matching name, or nil.
	FindType(ctx context.Context, name string) (*TypeRecord, error)

	// FindNamespace returns the namespace matching query, or nil.
	FindNamespace(ctx context.Context, query string) (*NamespaceListing, error)

	// ListNamespaces returns all namespaces sorted by name.
	ListNamespaces(ctx context.Context) ([]NamespaceSummary, error)
}
