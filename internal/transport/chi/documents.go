package chi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
	"github.com/kailas-cloud/memoria/internal/domain/document/patch"
	"github.com/kailas-cloud/memoria/internal/domain/search/order"
	"github.com/kailas-cloud/memoria/internal/domain/search/request"
	"github.com/kailas-cloud/memoria/internal/domain/search/result"
)

// SearchDocuments handles GET /api/v1/documents/search. A blank query lists
// the caller's documents, newest first.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	var (
		query *string
		limit *int
		sort  *string
	)
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "query", q, &query); err != nil {
		paramError(w, "query", err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		paramError(w, "limit", err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "sort", q, &sort); err != nil {
		paramError(w, "sort", err)
		return
	}

	req, err := request.NewBrowse(deref(query), order.Order(deref(sort)), deref(limit))
	if err != nil {
		validationError(w, err)
		return
	}
	results, err := s.search.Search(r.Context(), OwnerFromContext(r.Context()), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]SearchResultItem, len(results))
	for i := range results {
		items[i] = searchResultToDTO(&results[i])
	}
	writeJSON(w, http.StatusOK, SearchResponse{Items: items})
}

// ListDocuments handles GET /api/v1/documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.List(r.Context(), OwnerFromContext(r.Context()))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	items := make([]DocumentSummary, len(docs))
	for i := range docs {
		items[i] = documentSummaryToDTO(&docs[i])
	}
	writeJSON(w, http.StatusOK, DocumentListResponse{Items: items})
}

// CreateDocument handles POST /api/v1/documents.
func (s *Server) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if !s.decode(w, r, &req) {
		return
	}
	doc, err := s.documents.Create(r.Context(), OwnerFromContext(r.Context()), req.Title, req.ProjectID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeDocument(w, http.StatusCreated, &doc)
}

// GetDocument handles GET /api/v1/documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	doc, err := s.documents.Get(r.Context(), OwnerFromContext(r.Context()), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeDocument(w, http.StatusOK, &doc)
}

// GetDocumentByHandle handles GET /api/v1/handles/{handle}.
func (s *Server) GetDocumentByHandle(w http.ResponseWriter, r *http.Request) {
	handle, ok := pathParam(w, r, "handle")
	if !ok {
		return
	}
	doc, err := s.documents.GetByHandle(r.Context(), OwnerFromContext(r.Context()), handle)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeDocument(w, http.StatusOK, &doc)
}

// UpdateDocument handles PUT /api/v1/documents/{id}. The revision token comes
// from the body, or from If-Match when the body omits it.
func (s *Server) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	var req UpdateDocumentRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.RevisionToken == "" {
		req.RevisionToken = ifMatch(r)
	}

	var tags []string
	if req.Tags != nil {
		tags = *req.Tags
	}
	p, err := patch.New(req.Body, req.Title, tags, req.Tags != nil, req.RevisionToken)
	if err != nil {
		validationError(w, err)
		return
	}

	doc, err := s.documents.Update(r.Context(), OwnerFromContext(r.Context()), id, p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeDocument(w, http.StatusOK, &doc)
}

// DeleteDocument handles DELETE /api/v1/documents/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	if err := s.documents.Delete(r.Context(), OwnerFromContext(r.Context()), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		paramError(w, name, err)
		return "", false
	}
	return v, true
}

func ifMatch(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get("If-Match"))
	if unq, err := strconv.Unquote(v); err == nil {
		return unq
	}
	return v
}

func writeDocument(w http.ResponseWriter, status int, doc *domdoc.Document) {
	w.Header().Set("ETag", strconv.Quote(doc.RevisionToken()))
	writeJSON(w, status, documentToDTO(doc))
}

func documentToDTO(d *domdoc.Document) DocumentResponse {
	return DocumentResponse{
		ID:            d.ID(),
		DocHandle:     d.CompoundSlug(),
		ProjectID:     d.ProjectID(),
		Title:         d.Title(),
		Slug:          d.Slug(),
		Suffix:        d.Suffix(),
		Body:          d.Body(),
		Tags:          nonNil(d.Tags()),
		Status:        d.Status(),
		Updated:       d.Updated(),
		CreatedAt:     d.CreatedAt(),
		SizeBytes:     d.SizeBytes(),
		RevisionToken: d.RevisionToken(),
	}
}

func documentSummaryToDTO(d *domdoc.Document) DocumentSummary {
	return DocumentSummary{
		ID:        d.ID(),
		DocHandle: d.CompoundSlug(),
		Title:     d.Title(),
		Tags:      nonNil(d.Tags()),
		Status:    d.Status(),
		Updated:   d.Updated(),
		SizeBytes: d.SizeBytes(),
	}
}

func searchResultToDTO(r *result.Result) SearchResultItem {
	return SearchResultItem{
		ID:        r.ID(),
		DocHandle: r.CompoundSlug(),
		Title:     r.Title(),
		Updated:   r.Updated(),
		SizeBytes: r.SizeBytes(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
