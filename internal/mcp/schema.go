package mcp

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/kailas-cloud/memoria/internal/domain/search/rank"
	"github.com/kailas-cloud/memoria/internal/domain/search/request"
	"github.com/kailas-cloud/memoria/internal/usecase/retrieval"
)

// SearchArgs are the arguments of the search_documents tool.
type SearchArgs struct {
	Query string `json:"query" jsonschema:"free-text query matched against slug, title and tags"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 5)"`
	Sort  string `json:"sort,omitempty" jsonschema:"relevance (default) or recency"`
}

// GetDocumentArgs are the arguments of the get_document tool.
type GetDocumentArgs struct {
	DocHandle string `json:"doc_handle" jsonschema:"compound slug handle, e.g. design-doc-abc123"`
	MaxBytes  int    `json:"max_bytes,omitempty" jsonschema:"truncate the body to this many bytes (default 64 KB)"`
}

func searchSchema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[SearchArgs](nil)
	if err != nil {
		return nil, fmt.Errorf("infer search_documents schema: %w", err)
	}
	q, limit, sort := s.Properties["query"], s.Properties["limit"], s.Properties["sort"]
	if q == nil || limit == nil || sort == nil {
		return nil, fmt.Errorf("infer search_documents schema: missing properties")
	}
	q.MinLength = ptr(1)
	q.MaxLength = ptr(request.MaxQueryLength)
	limit.Minimum = ptr(1.0)
	limit.Maximum = ptr(float64(rank.MaxLimit))
	sort.Enum = []any{"relevance", "recency"}
	return s, nil
}

func getDocumentSchema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[GetDocumentArgs](nil)
	if err != nil {
		return nil, fmt.Errorf("infer get_document schema: %w", err)
	}
	h, mb := s.Properties["doc_handle"], s.Properties["max_bytes"]
	if h == nil || mb == nil {
		return nil, fmt.Errorf("infer get_document schema: missing properties")
	}
	h.MinLength = ptr(3)
	h.Pattern = ".+-.+"
	mb.Minimum = ptr(1.0)
	mb.Maximum = ptr(float64(retrieval.AbsoluteMaxBytes))
	return s, nil
}

func ptr[T any](v T) *T { return &v }
