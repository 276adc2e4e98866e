package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/apidoc"
)

// Run executes the namespace command.
func (c *NamespaceCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Name, " ")

	listing, err := deps.Search.FindNamespace(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidoc.ErrorMessage(err))
		return err
	}

	if listing == nil {
		fmt.Fprintf(deps.Stdout, "Namespace %q not found. Use 'apidoc namespaces' to list all namespaces.\n", query)
		return nil
	}

	ns := listing.Namespace
	fmt.Fprintf(deps.Stdout, "## %s\n", ns.Name)
	if ns.Description != "" {
		fmt.Fprintf(deps.Stdout, "> %s\n", ns.Description)
	}
	fmt.Fprintf(deps.Stdout, "\n**Types**: %d\n\n", len(ns.Types))

	if len(listing.Types) == 0 {
		return nil
	}

	fmt.Fprintln(deps.Stdout, "| Type | Kind | Description |")
	fmt.Fprintln(deps.Stdout, "|------|------|-------------|")
	for _, t := range listing.Types {
		fmt.Fprintf(deps.Stdout, "| **%s** | %s | %s |\n", t.Name, t.Kind, apidoc.Truncate(t.Description, 70))
	}

	return nil
}
