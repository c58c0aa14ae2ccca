package chi

// ErrorCode is the machine-readable error code of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeDocumentNotFound ErrorCode = "document_not_found"
	ErrorCodeInvalidHandle    ErrorCode = "invalid_handle"
	ErrorCodeDocumentLimit    ErrorCode = "document_limit_reached"
	ErrorCodeDocumentTooLarge ErrorCode = "document_too_large"
	ErrorCodeTokenLimit       ErrorCode = "token_limit_reached"
	ErrorCodeRevisionConflict ErrorCode = "revision_conflict"
	ErrorCodeForbidden        ErrorCode = "forbidden"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// MCPSearchRequest is the body of POST /mcp/search. q and top_k are accepted
// as aliases of query and limit.
type MCPSearchRequest struct {
	Query *string `json:"query,omitempty"`
	Q     *string `json:"q,omitempty"`
	Limit *int    `json:"limit,omitempty"`
	TopK  *int    `json:"top_k,omitempty"`
	Sort  *string `json:"sort,omitempty"`
}

// MCPSearchResult is one element of the POST /mcp/search response array.
type MCPSearchResult struct {
	DocHandle  string `json:"doc_handle"`
	Title      string `json:"title"`
	Updated    int64  `json:"updated"`
	ApproxSize int64  `json:"approx_size"`
}

// MCPGetDocumentRequest is the body of POST /mcp/get_document.
type MCPGetDocumentRequest struct {
	DocHandle string `json:"doc_handle"`
	MaxBytes  *int   `json:"max_bytes,omitempty"`
}

// MCPGetDocumentResponse is the body returned by POST /mcp/get_document.
type MCPGetDocumentResponse struct {
	Frontmatter string `json:"frontmatter"`
	Body        string `json:"body"`
	Updated     int64  `json:"updated"`
	FullSize    int64  `json:"full_size"`
	IsTruncated bool   `json:"is_truncated"`
}

// SearchResultItem is one ranked document in a UI search.
type SearchResultItem struct {
	ID        string `json:"id"`
	DocHandle string `json:"doc_handle"`
	Title     string `json:"title"`
	Updated   int64  `json:"updated"`
	SizeBytes int64  `json:"size_bytes"`
}

// SearchResponse is the body of GET /api/v1/documents/search.
type SearchResponse struct {
	Items []SearchResultItem `json:"items"`
}

// CreateDocumentRequest is the body of POST /api/v1/documents.
type CreateDocumentRequest struct {
	Title     string `json:"title"`
	ProjectID string `json:"project_id,omitempty"`
}

// UpdateDocumentRequest is the body of PUT /api/v1/documents/{id}. A nil
// Title or Tags keeps the stored value unless the body carries frontmatter.
type UpdateDocumentRequest struct {
	Body          string    `json:"body"`
	Title         *string   `json:"title,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	RevisionToken string    `json:"revision_token"`
}

// DocumentResponse is a full document.
type DocumentResponse struct {
	ID            string   `json:"id"`
	DocHandle     string   `json:"doc_handle"`
	ProjectID     string   `json:"project_id,omitempty"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Suffix        string   `json:"suffix"`
	Body          string   `json:"body"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status"`
	Updated       int64    `json:"updated"`
	CreatedAt     int64    `json:"created_at"`
	SizeBytes     int64    `json:"size_bytes"`
	RevisionToken string   `json:"revision_token"`
}

// DocumentSummary is a document without its body.
type DocumentSummary struct {
	ID        string   `json:"id"`
	DocHandle string   `json:"doc_handle"`
	Title     string   `json:"title"`
	Tags      []string `json:"tags"`
	Status    string   `json:"status"`
	Updated   int64    `json:"updated"`
	SizeBytes int64    `json:"size_bytes"`
}

// DocumentListResponse is the body of GET /api/v1/documents.
type DocumentListResponse struct {
	Items []DocumentSummary `json:"items"`
}

// IssueTokenRequest is the body of POST /api/v1/tokens.
type IssueTokenRequest struct {
	Name string `json:"name"`
}

// IssueTokenResponse carries the plaintext token. It is never shown again.
type IssueTokenResponse struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}
