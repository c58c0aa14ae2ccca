package memoria

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kailas-cloud/memoria/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrUnauthorized     = domain.ErrUnauthorized
	ErrDocumentNotFound = domain.ErrDocumentNotFound
	ErrInvalidHandle    = domain.ErrInvalidHandle
	ErrInvalidRequest   = domain.ErrInvalidRequest
	ErrDocumentLimit    = domain.ErrDocumentLimit
	ErrDocumentTooLarge = domain.ErrDocumentTooLarge
	ErrTokenLimit       = domain.ErrTokenLimit
	ErrRevisionConflict = domain.ErrRevisionConflict
)

// ErrUnexpectedResponse signals a response body that does not match the API contract.
var ErrUnexpectedResponse = errors.New("memoria: unexpected response")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string

	body []byte
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("memoria API request failed (%d %s): %s",
			e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("memoria API request failed (%d %s): %s: %s",
		e.StatusCode, http.StatusText(e.StatusCode), e.Code, e.Message)
}

// Unwrap maps the error code, or the status when the body had none, to a sentinel.
func (e *APIError) Unwrap() error {
	if sentinel, ok := codeSentinels[e.Code]; ok {
		return sentinel
	}
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrDocumentNotFound
	case http.StatusBadRequest:
		return ErrInvalidRequest
	default:
		return nil
	}
}

var codeSentinels = map[string]error{
	"unauthorized":           ErrUnauthorized,
	"document_not_found":     ErrDocumentNotFound,
	"not_found":              ErrDocumentNotFound,
	"invalid_handle":         ErrInvalidHandle,
	"validation_failed":      ErrInvalidRequest,
	"bad_request":            ErrInvalidRequest,
	"document_limit_reached": ErrDocumentLimit,
	"document_too_large":     ErrDocumentTooLarge,
	"token_limit_reached":    ErrTokenLimit,
	"revision_conflict":      ErrRevisionConflict,
}
