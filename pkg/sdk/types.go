package memoria

// SortOrder controls result ordering.
type SortOrder string

// Sort order constants.
const (
	SortRelevance SortOrder = "relevance"
	SortRecency   SortOrder = "recency"
)

// SearchOptions tunes a search. Zero values use the server defaults
// (5 results, relevance order).
type SearchOptions struct {
	Limit int
	Sort  SortOrder
}

// SearchResult is a single ranked document.
type SearchResult struct {
	DocHandle  string `json:"doc_handle"`
	Title      string `json:"title"`
	Updated    int64  `json:"updated"`
	ApproxSize int64  `json:"approx_size"`
}

// GetOptions tunes a document fetch. MaxBytes <= 0 uses the server default.
type GetOptions struct {
	MaxBytes int
}

// Document is a retrieved document. Frontmatter is the raw block without
// delimiters, or empty when the document has none.
type Document struct {
	Frontmatter string `json:"frontmatter"`
	Body        string `json:"body"`
	Updated     int64  `json:"updated"`
	FullSize    int64  `json:"full_size"`
	IsTruncated bool   `json:"is_truncated"`
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status  string            // "ok", "error"
	Version string            // server build version
	Checks  map[string]string // component → "ok"/"error"
}

// Wire shapes. Pointer fields tell a missing field from a zero value.

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
	Sort  string `json:"sort,omitempty"`
}

type searchResultWire struct {
	DocHandle  *string `json:"doc_handle"`
	Title      *string `json:"title"`
	Updated    *int64  `json:"updated"`
	ApproxSize *int64  `json:"approx_size"`
}

type getDocumentRequest struct {
	DocHandle string `json:"doc_handle"`
	MaxBytes  int    `json:"max_bytes,omitempty"`
}

type documentWire struct {
	Frontmatter *string `json:"frontmatter"`
	Body        *string `json:"body"`
	Updated     *int64  `json:"updated"`
	FullSize    *int64  `json:"full_size"`
	IsTruncated *bool   `json:"is_truncated"`
}

type healthWire struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

type errorWire struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
