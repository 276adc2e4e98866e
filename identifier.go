package apidoc

import "strings"

// Identifier kind prefixes.
const (
	PrefixType      = "T:"
	PrefixProperty  = "P:"
	PrefixMethod    = "M:"
	PrefixEvent     = "E:"
	PrefixField     = "F:"
	PrefixNamespace = "N:"
	PrefixOverload  = "Overload:"
)

// PrefixLegend describes the recognized identifier prefixes for users.
const PrefixLegend = "T:(type) P:(property) M:(method) E:(event) F:(field) N:(namespace) Overload:(overload group)"

// LookupPrefixes is the order in which prefixes are tried when a bare name
// is matched against the lookup table.
var LookupPrefixes = []string{PrefixType, PrefixNamespace, PrefixProperty, PrefixMethod, PrefixEvent, PrefixField}

// Normalize turns raw user input into a canonical identifier.
// A bare dotted name without a prefix is treated as a type's FQN.
func Normalize(raw string) string {
	id := strings.TrimSpace(raw)
	if !strings.Contains(id, ":") && strings.Contains(id, ".") && !strings.HasPrefix(id, PrefixOverload) {
		return PrefixType + id
	}
	return id
}

// IsOverload reports whether id names a method overload group.
func IsOverload(id string) bool {
	return strings.HasPrefix(id, PrefixOverload)
}

// OverloadRoot strips the Overload: prefix and an optional M: prefix,
// leaving the method's dotted path.
func OverloadRoot(id string) string {
	root := strings.TrimPrefix(id, PrefixOverload)
	return strings.TrimPrefix(root, PrefixMethod)
}

// InferNamespace derives a namespace from the shape of an identifier.
// It is used when the lookup table has no entry for id.
func InferNamespace(id string) (string, bool) {
	if id == "" {
		return "", false
	}

	if strings.HasPrefix(id, PrefixNamespace) {
		ns := id[len(PrefixNamespace):]
		return ns, ns != ""
	}

	var body string
	switch {
	case IsOverload(id):
		body = OverloadRoot(id)
	case strings.Contains(id, ":"):
		_, body, _ = strings.Cut(id, ":")
	default:
		body = id
	}

	// Drop the parameter list; parameter types contain dots of their own.
	body, _, _ = strings.Cut(body, "(")

	typeFQN := body
	if strings.Count(body, ".") >= 2 && !strings.HasPrefix(id, PrefixType) {
		typeFQN = body[:strings.LastIndex(body, ".")]
	}

	i := strings.LastIndex(typeFQN, ".")
	if i < 0 {
		return "", false
	}
	return typeFQN[:i], true
}

// SafeNamespaceFile returns the page file base name for a namespace.
func SafeNamespaceFile(ns string) string {
	if ns == "" {
		return "_orphan"
	}
	return strings.ReplaceAll(ns, "::", ".")
}
