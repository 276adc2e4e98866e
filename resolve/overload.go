package resolve

import (
	"context"
	"sort"
	"strings"

	"github.com/fwojciec/apidoc"
)

// ExpandOverload returns the concrete overloads of an Overload: id found in
// namespace ns, sorted lexicographically, along with the first of them.
// Identifiers without the Overload: prefix, or groups without any page in
// ns, yield an empty result.
func ExpandOverload(ctx context.Context, pages apidoc.PageSource, id, ns string) (string, []string, error) {
	if !apidoc.IsOverload(id) {
		return "", nil, nil
	}

	set, err := pages.Pages(ctx, ns)
	if err != nil {
		return "", nil, err
	}

	prefix := apidoc.PrefixMethod + apidoc.OverloadRoot(id) + "("
	var matches []string
	for _, key := range set.Keys() {
		if strings.HasPrefix(key, prefix) {
			matches = append(matches, key)
		}
	}
	if len(matches) == 0 {
		return "", nil, nil
	}

	sort.Strings(matches)
	return matches[0], matches, nil
}
