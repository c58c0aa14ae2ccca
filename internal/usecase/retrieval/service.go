// Package retrieval serves document bodies to agents: bounded in size, with
// the frontmatter block split from the Markdown.
package retrieval

import (
	"context"
	"fmt"
	"unicode/utf8"

	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
	"github.com/kailas-cloud/memoria/internal/domain/frontmatter"
)

// Size limits in bytes.
const (
	DefaultMaxBytes  = 64 * 1024
	AbsoluteMaxBytes = domdoc.MaxBodySize
)

// Document is a possibly truncated document body.
type Document struct {
	Handle      string
	Title       string
	Frontmatter string // raw block without delimiters, empty when absent
	Body        string
	Updated     int64
	FullSize    int64
	IsTruncated bool
}

// Service fetches documents by handle.
type Service struct {
	docs            HandleResolver
	defaultMaxBytes int
	absoluteMax     int
}

// New creates a retrieval service.
func New(docs HandleResolver) *Service {
	return &Service{docs: docs, defaultMaxBytes: DefaultMaxBytes, absoluteMax: AbsoluteMaxBytes}
}

// WithLimits overrides the default and absolute byte limits.
func (s *Service) WithLimits(defaultMaxBytes, absoluteMax int) *Service {
	if absoluteMax > 0 {
		s.absoluteMax = absoluteMax
	}
	if defaultMaxBytes > 0 {
		s.defaultMaxBytes = min(defaultMaxBytes, s.absoluteMax)
	}
	return s
}

// Get returns owner's document addressed by handle. maxBytes <= 0 selects the
// default limit; larger values are capped at the absolute limit.
func (s *Service) Get(ctx context.Context, owner, handle string, maxBytes int) (Document, error) {
	doc, err := s.docs.GetByHandle(ctx, owner, handle)
	if err != nil {
		return Document{}, fmt.Errorf("resolve handle: %w", err)
	}

	limit := s.defaultMaxBytes
	if maxBytes > 0 {
		limit = min(maxBytes, s.absoluteMax)
	}
	body, truncated := Truncate(doc.Body(), limit)

	out := Document{
		Handle:      doc.CompoundSlug(),
		Title:       doc.Title(),
		Body:        body,
		Updated:     doc.Updated(),
		FullSize:    doc.SizeBytes(),
		IsTruncated: truncated,
	}
	if block, rest, err := frontmatter.Split(body); err == nil {
		out.Frontmatter, out.Body = block, rest
	}
	return out, nil
}

// Truncate cuts s to at most maxBytes without splitting a UTF-8 sequence.
func Truncate(s string, maxBytes int) (string, bool) {
	if len(s) <= maxBytes {
		return s, false
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut], true
}
