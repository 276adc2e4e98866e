package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/apidoc"
)

// maxTypeHints caps the type suggestions shown when no member matched.
const maxTypeHints = 5

// Run executes the member command.
func (c *MemberCmd) Run(deps *Dependencies) error {
	name := strings.Join(c.Name, " ")

	result, err := deps.Search.SearchMembers(deps.Ctx, name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidoc.ErrorMessage(err))
		return err
	}

	if len(result.Hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No members found matching %q.\n", name)
		if len(result.TypeCandidates) > 0 {
			fmt.Fprintln(deps.Stdout, "\nThat looks like a type name. Try:")
			for i, m := range result.TypeCandidates {
				if i == maxTypeHints {
					break
				}
				fmt.Fprintf(deps.Stdout, "  - apidoc class %q\n", m.Type.FQN)
			}
			fmt.Fprintln(deps.Stdout, "\nor:")
			fmt.Fprintf(deps.Stdout, "  - apidoc search %q\n", name)
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "## Member search: %q (%d)\n\n", name, len(result.Hits))
	fmt.Fprintln(deps.Stdout, "| Member | Category | Type | Description |")
	fmt.Fprintln(deps.Stdout, "|--------|----------|------|-------------|")
	for _, h := range result.Hits {
		fmt.Fprintf(deps.Stdout, "| `%s` | %s | %s | %s |\n",
			h.Member.Name, h.Category, h.Type.Name, apidoc.Truncate(h.Member.Description, 50))
	}

	return nil
}
