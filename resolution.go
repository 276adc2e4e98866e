package apidoc

import "context"

// Resolution strategies, recorded on a successful Resolution.
const (
	StrategyOverload         = "overload"
	StrategyOverloadOverview = "overload-overview"
	StrategyLookup           = "lookup"
	StrategyPages            = "pages"
	StrategyOverloadRoot     = "overload-root"
)

// DefaultSuggestLimit is the number of candidates offered on a miss.
const DefaultSuggestLimit = 8

// Resolution is the outcome of resolving an identifier.
type Resolution struct {
	// ID is the canonical identifier, empty when resolution failed.
	ID string `json:"id"`

	// Namespace is the resolved namespace. On failure it may still hold the
	// inferred namespace for diagnostics.
	Namespace string `json:"namespace,omitempty"`

	// Related lists overload siblings on success, or near-match candidates
	// on failure. Candidates are advisory and never selected.
	Related []string `json:"related,omitempty"`

	// Advisory is an optional human-readable note.
	Advisory string `json:"advisory,omitempty"`

	// Strategy names the step that produced the answer.
	Strategy string `json:"strategy,omitempty"`
}

// Resolved reports whether the identifier was resolved.
func (r *Resolution) Resolved() bool {
	return r != nil && r.ID != ""
}

// Resolver resolves identifiers against the catalog.
type Resolver interface {
	// Resolve normalizes rawID and resolves it to a canonical identifier.
	// A miss is not an error; it returns a Resolution with an empty ID.
	Resolve(ctx context.Context, rawID string) (*Resolution, error)

	// ResolveType converts a type name or FQN into an identifier.
	// Returns ENOTFOUND if no type matches.
	ResolveType(ctx context.Context, name string) (string, error)

	// Suggest returns near-match identifiers from one namespace.
	Suggest(ctx context.Context, namespace, target string, limit int) ([]string, error)

	// Page returns the documentation page for a resolved identifier.
	// Returns ENOTFOUND if the page does not exist.
	Page(ctx context.Context, namespace, id string) (*PageRecord, error)
}
