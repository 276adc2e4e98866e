package http

import (
	"net/http"
	"strings"

	"github.com/fwojciec/apidoc"
	"github.com/gorilla/mux"
)

// TypeResponse is a type record with its fully qualified name.
type TypeResponse struct {
	FQN string `json:"fqn"`
	*apidoc.TypeRecord
}

// TypeMatchResponse is a scored type search result.
type TypeMatchResponse struct {
	Score int          `json:"score"`
	Type  TypeResponse `json:"type"`
}

// MemberHitResponse is a member search hit.
type MemberHitResponse struct {
	Type        string                `json:"type"`
	Category    apidoc.MemberCategory `json:"category"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
}

// MemberSearchResponse is the body of GET /members.
type MemberSearchResponse struct {
	Hits           []MemberHitResponse `json:"hits"`
	TypeCandidates []TypeMatchResponse `json:"typeCandidates,omitempty"`
}

// NamespaceResponse is the body of GET /namespaces/{name}.
type NamespaceResponse struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Types       []TypeResponse `json:"types"`
}

// PageResponse is the body of GET /pages.
type PageResponse struct {
	Resolution *apidoc.Resolution `json:"resolution"`
	Page       *apidoc.PageRecord `json:"page"`
	Markdown   string             `json:"markdown"`
}

func newTypeResponse(t *apidoc.TypeRecord) TypeResponse {
	return TypeResponse{FQN: t.FQN, TypeRecord: t}
}

func newTypeMatches(matches []apidoc.TypeMatch) []TypeMatchResponse {
	out := make([]TypeMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, TypeMatchResponse{Score: m.Score, Type: newTypeResponse(m.Type)})
	}
	return out
}

// requiredQuery returns the trimmed query parameter or an EINVALID error.
func requiredQuery(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", apidoc.Errorf(apidoc.EINVALID, "query parameter %q is required", name)
	}
	return v, nil
}

// handleResolve handles GET /resolve?id=.
// An unresolved identifier is reported as 404 with the resolution body so
// that candidates reach the client.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	id, err := requiredQuery(r, "id")
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	res, err := s.Resolver.Resolve(r.Context(), id)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	status := http.StatusOK
	if !res.Resolved() {
		status = http.StatusNotFound
	}
	writeJSON(w, status, res)
}

// handlePage handles GET /pages?id=.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id, err := requiredQuery(r, "id")
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	res, err := s.Resolver.Resolve(r.Context(), id)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	if !res.Resolved() {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "No documentation page for " + apidoc.Normalize(id) + ".",
			Code:    apidoc.ENOTFOUND,
			Related: res.Related,
		})
		return
	}

	page, err := s.Resolver.Page(r.Context(), res.Namespace, res.ID)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, PageResponse{
		Resolution: res,
		Page:       page,
		Markdown:   apidoc.FormatPage(page),
	})
}

// handleSearchTypes handles GET /types?q=.
func (s *Server) handleSearchTypes(w http.ResponseWriter, r *http.Request) {
	q, err := requiredQuery(r, "q")
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	matches, err := s.Search.SearchTypes(r.Context(), q)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newTypeMatches(matches))
}

// handleType handles GET /types/{name}.
func (s *Server) handleType(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	t, err := s.Search.FindType(r.Context(), name)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	if t == nil {
		Error(w, r, s.Logger, apidoc.Errorf(apidoc.ENOTFOUND, "Type %q not found.", name))
		return
	}
	writeJSON(w, http.StatusOK, newTypeResponse(t))
}

// handleSearchMembers handles GET /members?q=.
func (s *Server) handleSearchMembers(w http.ResponseWriter, r *http.Request) {
	q, err := requiredQuery(r, "q")
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	result, err := s.Search.SearchMembers(r.Context(), q)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	resp := MemberSearchResponse{Hits: make([]MemberHitResponse, 0, len(result.Hits))}
	for _, h := range result.Hits {
		resp.Hits = append(resp.Hits, MemberHitResponse{
			Type:        h.Type.FQN,
			Category:    h.Category,
			Name:        h.Member.Name,
			Description: h.Member.Description,
		})
	}
	if len(result.TypeCandidates) > 0 {
		resp.TypeCandidates = newTypeMatches(result.TypeCandidates)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleNamespaces handles GET /namespaces.
func (s *Server) handleNamespaces(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.Search.ListNamespaces(r.Context())
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	if summaries == nil {
		summaries = []apidoc.NamespaceSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// handleNamespace handles GET /namespaces/{name}.
func (s *Server) handleNamespace(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	listing, err := s.Search.FindNamespace(r.Context(), name)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	if listing == nil {
		Error(w, r, s.Logger, apidoc.Errorf(apidoc.ENOTFOUND, "Namespace %q not found.", name))
		return
	}

	resp := NamespaceResponse{
		Name:        listing.Namespace.Name,
		Description: listing.Namespace.Description,
		Types:       make([]TypeResponse, 0, len(listing.Types)),
	}
	for _, t := range listing.Types {
		resp.Types = append(resp.Types, newTypeResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}
