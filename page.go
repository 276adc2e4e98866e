package apidoc

// PageMember is a row in a page's member table.
type PageMember struct {
	Name        string `json:"n"`
	Description string `json:"d"`
}

// PageMembers groups a page's member tables.
type PageMembers struct {
	Props   []PageMember `json:"props,omitempty"`
	Methods []PageMember `json:"methods,omitempty"`
	Events  []PageMember `json:"events,omitempty"`
	Fields  []PageMember `json:"fields,omitempty"`
}

// PageRecord is the full documentation page of an identifier.
type PageRecord struct {
	Title       string      `json:"title"`
	Description string      `json:"desc"`
	Namespace   string      `json:"ns"`
	Signature   string      `json:"sig"`
	Inherit     []string    `json:"inherit,omitempty"`
	Members     PageMembers `json:"members"`
	Remarks     string      `json:"remarks,omitempty"`
}

// PageSet holds the pages of one namespace keyed by canonical identifier.
// Keys preserve the order of the page file.
type PageSet struct {
	keys  []string
	pages map[string]*PageRecord
}

// NewPageSet returns a PageSet. Duplicate keys keep their first position
// and the last record.
func NewPageSet(keys []string, pages map[string]*PageRecord) *PageSet {
	s := &PageSet{pages: make(map[string]*PageRecord, len(pages))}
	for _, k := range keys {
		p, ok := pages[k]
		if !ok {
			continue
		}
		if _, seen := s.pages[k]; !seen {
			s.keys = append(s.keys, k)
		}
		s.pages[k] = p
	}
	return s
}

// Keys returns the identifiers in page file order.
func (s *PageSet) Keys() []string {
	if s == nil {
		return nil
	}
	return s.keys
}

// Get returns the page for id.
func (s *PageSet) Get(id string) (*PageRecord, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.pages[id]
	return p, ok
}

// Has reports whether id has a page.
func (s *PageSet) Has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Len returns the number of pages.
func (s *PageSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}
