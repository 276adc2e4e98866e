package apidoc

import "strings"

// FormatPage renders a documentation page as Markdown.
// Empty sections are omitted.
func FormatPage(p *PageRecord) string {
	var b strings.Builder

	title := p.Title
	if title == "" {
		title = "Unknown"
	}
	b.WriteString("# " + title + "\n\n")

	if p.Description != "" {
		b.WriteString("> " + p.Description + "\n\n")
	}

	if p.Namespace != "" {
		b.WriteString("**Namespace**: `" + p.Namespace + "`\n\n")
	}

	if p.Signature != "" {
		b.WriteString("## Syntax\n\n```csharp\n" + p.Signature + "\n```\n\n")
	}

	if len(p.Inherit) > 0 {
		b.WriteString("## Inheritance Hierarchy\n\n")
		for i, item := range p.Inherit {
			b.WriteString(strings.Repeat("  ", i) + "- " + item + "\n")
		}
		b.WriteString("\n")
	}

	tables := []struct {
		label string
		rows  []PageMember
	}{
		{"Properties", p.Members.Props},
		{"Methods", p.Members.Methods},
		{"Events", p.Members.Events},
		{"Fields", p.Members.Fields},
	}
	for _, t := range tables {
		if len(t.rows) == 0 {
			continue
		}
		b.WriteString("## " + t.label + "\n\n")
		b.WriteString("| Name | Description |\n|------|-------------|\n")
		for _, m := range t.rows {
			b.WriteString("| `" + m.Name + "` | " + strings.ReplaceAll(m.Description, "\n", " ") + " |\n")
		}
		b.WriteString("\n")
	}

	if p.Remarks != "" {
		b.WriteString("## Remarks\n\n" + p.Remarks + "\n\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}
