package main

import (
	"fmt"

	"github.com/fwojciec/apidoc"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	id := c.ID
	if c.Type != "" {
		resolved, err := deps.Resolver.ResolveType(deps.Ctx, c.Type)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", apidoc.ErrorMessage(err))
			return err
		}
		id = resolved
	}

	res, err := deps.Resolver.Resolve(deps.Ctx, id)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidoc.ErrorMessage(err))
		return err
	}

	if !res.Resolved() {
		normalized := apidoc.Normalize(id)
		fmt.Fprintf(deps.Stdout, "Identifier %q not found.\n", normalized)
		fmt.Fprintf(deps.Stdout, "Recognized prefixes: %s\n", apidoc.PrefixLegend)
		if len(res.Related) > 0 {
			fmt.Fprintln(deps.Stdout, "\nPossible candidates:")
			for i, candidate := range res.Related {
				if i == apidoc.DefaultSuggestLimit {
					break
				}
				fmt.Fprintf(deps.Stdout, "  - %s\n", candidate)
			}
		}
		return apidoc.Errorf(apidoc.ENOTFOUND, "identifier %q not found", normalized)
	}

	page, err := deps.Resolver.Page(deps.Ctx, res.Namespace, res.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidoc.ErrorMessage(err))
		return err
	}

	if res.Advisory != "" {
		fmt.Fprintf(deps.Stdout, "%s\n\n", res.Advisory)
	}

	if len(res.Related) > 0 {
		fmt.Fprint(deps.Stdout, "## Available overloads\n\n")
		for _, item := range res.Related {
			fmt.Fprintf(deps.Stdout, "- `%s`\n", item)
		}
		fmt.Fprintln(deps.Stdout)
	}

	fmt.Fprintln(deps.Stdout, apidoc.FormatPage(page))

	return nil
}
