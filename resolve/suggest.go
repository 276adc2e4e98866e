package resolve

import (
	"context"
	"strings"

	"github.com/fwojciec/apidoc"
	"github.com/fwojciec/apidoc/difflib"
)

// Suggest returns up to limit identifiers from namespace that resemble
// target. Identifiers containing target (case-insensitively) come first in
// page order; only when there are none does it fall back to similarity
// ranking.
func (r *Resolver) Suggest(ctx context.Context, namespace, target string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = apidoc.DefaultSuggestLimit
	}

	set, err := r.Pages.Pages(ctx, namespace)
	if err != nil {
		return nil, err
	}
	keys := set.Keys()
	if len(keys) == 0 {
		return nil, nil
	}

	needle := strings.ToLower(target)
	var contains []string
	for _, k := range keys {
		if strings.Contains(strings.ToLower(k), needle) {
			contains = append(contains, k)
			if len(contains) == limit {
				break
			}
		}
	}
	if len(contains) > 0 {
		return contains, nil
	}

	matches := difflib.CloseMatches(target, keys, limit, difflib.DefaultCutoff)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Value)
	}
	return out, nil
}
