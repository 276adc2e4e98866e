package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/apidoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	keyword := strings.Join(c.Keyword, " ")

	matches, err := deps.Search.SearchTypes(deps.Ctx, keyword)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidoc.ErrorMessage(err))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintf(deps.Stdout, "No types found matching %q.\n", keyword)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "## Search results: %q (%d)\n\n", keyword, len(matches))
	fmt.Fprintln(deps.Stdout, "| Type | Kind | Namespace | Description |")
	fmt.Fprintln(deps.Stdout, "|------|------|-----------|-------------|")
	for _, m := range matches {
		fmt.Fprintf(deps.Stdout, "| **%s** | %s | %s | %s |\n",
			m.Type.Name, m.Type.Kind, m.Type.Namespace, apidoc.Truncate(m.Type.Description, 60))
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "*Use `apidoc class <full name>` to see members.*")

	return nil
}
