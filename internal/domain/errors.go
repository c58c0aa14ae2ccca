package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrDocumentNotFound signals a missing document, or one owned by someone else.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrForbidden signals an operation on a resource the caller does not own.
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthorized signals a missing or unknown caller identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDocumentLimit signals that the owner already holds the maximum number of documents.
	ErrDocumentLimit = errors.New("document limit reached")
	// ErrDocumentTooLarge signals a body above the size ceiling.
	ErrDocumentTooLarge = errors.New("document too large")
	// ErrInvalidHandle signals a document handle that is not slug-suffix.
	ErrInvalidHandle = errors.New("invalid document handle")
	// ErrInvalidRequest signals malformed caller input.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrTokenLimit signals that the owner already holds the maximum number of access tokens.
	ErrTokenLimit = errors.New("token limit reached")

	// ErrRevisionConflict signals an optimistic locking conflict.
	ErrRevisionConflict = errors.New("revision conflict")
)

// RevisionConflictError wraps ErrRevisionConflict with the current revision token.
type RevisionConflictError struct {
	CurrentRevision string
}

func (e *RevisionConflictError) Error() string {
	return fmt.Sprintf("%s: current revision is %s", ErrRevisionConflict.Error(), e.CurrentRevision)
}

func (e *RevisionConflictError) Unwrap() error { return ErrRevisionConflict }

// NewRevisionConflict creates a revision conflict error.
func NewRevisionConflict(currentRevision string) error {
	return &RevisionConflictError{CurrentRevision: currentRevision}
}
