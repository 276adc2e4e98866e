package apidoc

import "context"

// Member represents a documented type member.
type Member struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
}

// Members partitions a type's members by category.
type Members struct {
	Properties []Member `json:"properties"`
	Methods    []Member `json:"methods"`
	Events     []Member `json:"events"`
	Fields     []Member `json:"fields,omitempty"`
}

// MemberCategory names a member partition.
type MemberCategory string

// Member categories searched by member name.
const (
	CategoryProperties MemberCategory = "properties"
	CategoryMethods    MemberCategory = "methods"
	CategoryEvents     MemberCategory = "events"
)

// TypeRecord represents a documented type in the catalog.
// Records are immutable once loaded.
type TypeRecord struct {
	FQN         string  `json:"-"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Namespace   string  `json:"namespace"`
	Description string  `json:"description"`
	Signature   string  `json:"signature,omitempty"`
	File        string  `json:"file"`
	Members     Members `json:"members"`
}

// Validate returns an error if the record lacks required fields.
func (t *TypeRecord) Validate() error {
	if t.Name == "" {
		return Errorf(EMALFORMED, "type %q: name required", t.FQN)
	}
	for _, group := range [][]Member{t.Members.Properties, t.Members.Methods, t.Members.Events, t.Members.Fields} {
		for _, m := range group {
			if m.Name == "" {
				return Errorf(EMALFORMED, "type %q: member name required", t.FQN)
			}
		}
	}
	return nil
}

// MembersOf returns the members in the given category.
func (t *TypeRecord) MembersOf(category MemberCategory) []Member {
	switch category {
	case CategoryProperties:
		return t.Members.Properties
	case CategoryMethods:
		return t.Members.Methods
	case CategoryEvents:
		return t.Members.Events
	}
	return nil
}

// NamespaceRecord represents a namespace and the short names of its types.
type NamespaceRecord struct {
	Name        string   `json:"-"`
	Description string   `json:"description"`
	Types       []string `json:"types"`
}

// Index is the type and namespace catalog. Slices keep catalog insertion
// order; lookups by name go through the maps built by NewIndex.
type Index struct {
	Types      []*TypeRecord
	Namespaces []*NamespaceRecord

	types      map[string]*TypeRecord
	namespaces map[string]*NamespaceRecord
}

// NewIndex returns an Index over the given records.
func NewIndex(types []*TypeRecord, namespaces []*NamespaceRecord) *Index {
	idx := &Index{
		Types:      types,
		Namespaces: namespaces,
		types:      make(map[string]*TypeRecord, len(types)),
		namespaces: make(map[string]*NamespaceRecord, len(namespaces)),
	}
	for _, t := range types {
		idx.types[t.FQN] = t
	}
	for _, ns := range namespaces {
		idx.namespaces[ns.Name] = ns
	}
	return idx
}

// Type returns the type with the exact fully-qualified name.
func (idx *Index) Type(fqn string) (*TypeRecord, bool) {
	t, ok := idx.types[fqn]
	return t, ok
}

// Namespace returns the namespace with the exact name.
func (idx *Index) Namespace(name string) (*NamespaceRecord, bool) {
	ns, ok := idx.namespaces[name]
	return ns, ok
}

// LookupTable maps canonical identifiers to namespace names.
// It may be sparse; a missing entry triggers namespace inference.
type LookupTable map[string]string

// Namespace returns the namespace mapped to id.
func (l LookupTable) Namespace(id string) (string, bool) {
	ns, ok := l[id]
	return ns, ok && ns != ""
}

// Has reports whether id has an entry, even one with an empty namespace.
func (l LookupTable) Has(id string) bool {
	_, ok := l[id]
	return ok
}

// PageSource loads the documentation pages of a namespace.
type PageSource interface {
	// Pages returns the pages of a namespace. A namespace without a page
	// file yields an empty set, not an error.
	Pages(ctx context.Context, namespace string) (*PageSet, error)
}
