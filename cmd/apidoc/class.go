package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/apidoc"
)

// Run executes the class command.
func (c *ClassCmd) Run(deps *Dependencies) error {
	name := strings.Join(c.Name, " ")

	t, err := deps.Search.FindType(deps.Ctx, name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidoc.ErrorMessage(err))
		return err
	}

	if t == nil {
		fmt.Fprintf(deps.Stdout, "Type %q not found.\n", name)
		fmt.Fprintf(deps.Stdout, "Try: apidoc search %q\n", name)
		return nil
	}

	w := deps.Stdout
	fmt.Fprintf(w, "## %s\n\n", t.FQN)
	if t.Description != "" {
		fmt.Fprintf(w, "> %s\n\n", t.Description)
	}
	fmt.Fprintf(w, "- **Kind**: %s\n", t.Kind)
	fmt.Fprintf(w, "- **Namespace**: %s\n", t.Namespace)
	if t.Signature != "" {
		fmt.Fprintf(w, "- **Signature**: `%s`\n", t.Signature)
	}
	fmt.Fprintf(w, "- **File**: `%s`\n\n", t.File)

	writeMembers(w, "Properties", t.Members.Properties)
	writeMembers(w, "Methods", t.Members.Methods)
	writeMembers(w, "Events", t.Members.Events)

	fmt.Fprintf(w, "*Use `apidoc page --type %q` for the full page.*\n", t.FQN)

	return nil
}

func writeMembers(w io.Writer, label string, members []apidoc.Member) {
	if len(members) == 0 {
		return
	}
	fmt.Fprintf(w, "### %s (%d)\n\n", label, len(members))
	fmt.Fprintln(w, "| Name | Description |")
	fmt.Fprintln(w, "|------|-------------|")
	for _, m := range members {
		fmt.Fprintf(w, "| `%s` | %s |\n", m.Name, apidoc.Truncate(m.Description, 80))
	}
	fmt.Fprintln(w)
}
