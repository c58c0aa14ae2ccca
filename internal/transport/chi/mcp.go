package chi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/kailas-cloud/memoria/internal/domain/search/order"
	"github.com/kailas-cloud/memoria/internal/domain/search/request"
)

// MCPSearch handles POST /mcp/search, the agent-facing search.
func (s *Server) MCPSearch(w http.ResponseWriter, r *http.Request) {
	var body MCPSearchRequest
	if !s.decode(w, r, &body) {
		return
	}

	query := body.Query
	if query == nil {
		query = body.Q
	}
	if query == nil {
		validationError(w, fmt.Errorf("missing or invalid 'query' parameter"))
		return
	}
	limit := body.Limit
	if limit == nil {
		limit = body.TopK
	}

	req, err := request.New(*query, order.Order(deref(body.Sort)), deref(limit))
	if err != nil {
		validationError(w, err)
		return
	}
	results, err := s.search.Search(r.Context(), OwnerFromContext(r.Context()), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]MCPSearchResult, len(results))
	for i := range results {
		out[i] = MCPSearchResult{
			DocHandle:  results[i].CompoundSlug(),
			Title:      results[i].Title(),
			Updated:    results[i].Updated(),
			ApproxSize: results[i].SizeBytes(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// MCPGetDocument handles POST /mcp/get_document.
func (s *Server) MCPGetDocument(w http.ResponseWriter, r *http.Request) {
	var body MCPGetDocumentRequest
	if !s.decode(w, r, &body) {
		return
	}
	if strings.TrimSpace(body.DocHandle) == "" {
		validationError(w, fmt.Errorf("missing or invalid 'doc_handle' parameter"))
		return
	}

	doc, err := s.retrieval.Get(r.Context(), OwnerFromContext(r.Context()), body.DocHandle, deref(body.MaxBytes))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MCPGetDocumentResponse{
		Frontmatter: doc.Frontmatter,
		Body:        doc.Body,
		Updated:     doc.Updated,
		FullSize:    doc.FullSize,
		IsTruncated: doc.IsTruncated,
	})
}
