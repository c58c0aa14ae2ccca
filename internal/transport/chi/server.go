package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/memoria/internal/domain"
	"github.com/kailas-cloud/memoria/internal/domain/frontmatter"
	healthuc "github.com/kailas-cloud/memoria/internal/usecase/health"
)

// maxRequestBody bounds JSON request bodies: the largest document plus
// envelope overhead.
const maxRequestBody = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the memoria HTTP API.
type Server struct {
	documents     DocumentService
	search        SearchService
	retrieval     RetrievalService
	tokens        TokenIssuer
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	documents DocumentService,
	search SearchService,
	retrieval RetrievalService,
	tokens TokenIssuer,
	health HealthChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		documents: documents,
		search:    search,
		retrieval: retrieval,
		tokens:    tokens,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		revisionConflictHandler,
		frontmatterHandler,
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, ErrorCodeDocumentNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrInvalidHandle, http.StatusBadRequest, ErrorCodeInvalidHandle),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrDocumentLimit, http.StatusConflict, ErrorCodeDocumentLimit),
		sentinelHandler(domain.ErrTokenLimit, http.StatusConflict, ErrorCodeTokenLimit),
		sentinelHandler(domain.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge, ErrorCodeDocumentTooLarge),
		sentinelHandler(domain.ErrForbidden, http.StatusForbidden, ErrorCodeForbidden),
		sentinelHandler(domain.ErrUnauthorized, http.StatusUnauthorized, ErrorCodeUnauthorized),
	}
	return s
}

// Register mounts every route on r. Authentication middleware is expected
// to be installed by the caller.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/mcp", func(r chi.Router) {
		r.Post("/search", s.MCPSearch)
		r.Post("/get_document", s.MCPGetDocument)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/documents/search", s.SearchDocuments)
		r.Get("/documents", s.ListDocuments)
		r.Post("/documents", s.CreateDocument)
		r.Get("/documents/{id}", s.GetDocument)
		r.Put("/documents/{id}", s.UpdateDocument)
		r.Delete("/documents/{id}", s.DeleteDocument)
		r.Get("/handles/{handle}", s.GetDocumentByHandle)
		r.Post("/tokens", s.IssueToken)
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Version: report.Version,
		Checks:  checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// IssueToken handles POST /api/v1/tokens.
func (s *Server) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest
	if !s.decode(w, r, &req) {
		return
	}
	issued, err := s.tokens.Issue(r.Context(), OwnerFromContext(r.Context()), req.Name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, IssueTokenResponse{
		Token:     issued.Plaintext,
		Name:      issued.Name,
		CreatedAt: issued.CreatedAt,
	})
}

// decode reads a JSON body into v, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrDocumentNotFound,
		domain.ErrNotFound,
		domain.ErrInvalidHandle,
		domain.ErrInvalidRequest,
		domain.ErrDocumentLimit,
		domain.ErrTokenLimit,
		domain.ErrDocumentTooLarge,
		domain.ErrRevisionConflict,
		domain.ErrForbidden,
		domain.ErrUnauthorized,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// revisionConflictHandler handles ErrRevisionConflict with ETag header and extra fields.
func revisionConflictHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrRevisionConflict) {
		return false
	}
	var rce *domain.RevisionConflictError
	if errors.As(err, &rce) {
		w.Header().Set("ETag", strconv.Quote(rce.CurrentRevision))
		writeJSON(w, http.StatusConflict, map[string]any{
			"code":             ErrorCodeRevisionConflict,
			"message":          msg,
			"current_revision": rce.CurrentRevision,
		})
		return true
	}
	writeError(w, http.StatusConflict, ErrorCodeRevisionConflict, msg)
	return true
}

// frontmatterHandler reports parser and validator failures verbatim: their
// messages describe the caller's own document.
func frontmatterHandler(w http.ResponseWriter, err error, _ string) bool {
	var fe *frontmatter.FormatError
	if errors.As(err, &fe) {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, fe.Error())
		return true
	}
	var ve *frontmatter.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, ve.Error())
		return true
	}
	return false
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func validationError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
}

func paramError(w http.ResponseWriter, name string, err error) {
	writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, fmt.Sprintf("Invalid parameter %s: %v", name, err))
}
