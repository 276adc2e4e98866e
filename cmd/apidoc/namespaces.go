package main

import (
	"fmt"

	"github.com/fwojciec/apidoc"
)

// Run executes the namespaces command.
func (c *NamespacesCmd) Run(deps *Dependencies) error {
	summaries, err := deps.Search.ListNamespaces(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "## All namespaces (%d)\n\n", len(summaries))
	fmt.Fprintln(deps.Stdout, "| Namespace | Types | Description |")
	fmt.Fprintln(deps.Stdout, "|-----------|-------|-------------|")
	for _, s := range summaries {
		fmt.Fprintf(deps.Stdout, "| **%s** | %d | %s |\n", s.Name, s.TypeCount, apidoc.Truncate(s.Description, 60))
	}

	return nil
}
