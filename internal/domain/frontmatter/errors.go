package frontmatter

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat signals a body that is not shaped as a leading frontmatter block
	// or a block line that violates the line grammar.
	ErrFormat = errors.New("invalid frontmatter format")
	// ErrValidation signals a syntactically valid block with a missing or
	// malformed required field.
	ErrValidation = errors.New("invalid frontmatter")
)

// FormatError describes a grammar violation. Line is the 1-based line number
// in the document body, or 0 when the problem is the block delimiters.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrFormat.Error(), e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrFormat.Error(), e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
