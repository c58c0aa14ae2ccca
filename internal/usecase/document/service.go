package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/memoria/internal/domain"
	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
	"github.com/kailas-cloud/memoria/internal/domain/document/patch"
	"github.com/kailas-cloud/memoria/internal/domain/frontmatter"
	"github.com/kailas-cloud/memoria/internal/metrics"
)

// createAttempts bounds retries when a freshly generated suffix loses a race.
const createAttempts = 3

// Service handles document lifecycle: create, edit with optimistic locking,
// lookup by ID or handle, list and delete.
type Service struct {
	repo        Repository
	logger      *zap.Logger
	mode        FrontmatterMode
	maxPerOwner int
	maxBodySize int64
	now         func() time.Time
	newID       func() string
}

// New creates a document service.
func New(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		logger:      logger,
		mode:        ModeAuto,
		maxPerOwner: domdoc.MaxPerOwner,
		maxBodySize: domdoc.MaxBodySize,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// WithFrontmatterMode sets how saved bodies are parsed. Invalid modes are ignored.
func (s *Service) WithFrontmatterMode(m FrontmatterMode) *Service {
	if m.IsValid() {
		s.mode = m
	}
	return s
}

// WithLimits configures the per-owner document ceiling and body size limit.
func (s *Service) WithLimits(maxPerOwner int, maxBodySize int64) *Service {
	if maxPerOwner > 0 {
		s.maxPerOwner = maxPerOwner
	}
	if maxBodySize > 0 {
		s.maxBodySize = maxBodySize
	}
	return s
}

// Create makes an empty document for owner.
func (s *Service) Create(ctx context.Context, owner, title, projectID string) (domdoc.Document, error) {
	count, err := s.repo.CountByOwner(ctx, owner)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("count documents: %w", err)
	}
	if count >= s.maxPerOwner {
		return domdoc.Document{}, fmt.Errorf("owner holds %d documents: %w", count, domain.ErrDocumentLimit)
	}
	existing, err := s.repo.ListByOwner(ctx, owner, s.maxPerOwner)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("list documents: %w", err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = domdoc.DefaultTitle
	}
	suffixes := make([]string, 0, len(existing)+createAttempts)
	for i := range existing {
		suffixes = append(suffixes, existing[i].Suffix())
	}

	for range createAttempts {
		suffix := domdoc.NewSuffix(suffixes)
		doc, err := domdoc.New(
			s.newID(), owner, projectID, title, domdoc.GenerateSlug(title), suffix,
			uuid.NewString(), s.now().UnixMilli(),
		)
		if err != nil {
			return domdoc.Document{}, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err.Error())
		}

		err = s.repo.Create(ctx, &doc)
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.logger.Debug("Suffix taken, retrying", zap.String("owner", owner), zap.String("suffix", suffix))
			suffixes = append(suffixes, suffix)
			continue
		}
		if err != nil {
			metrics.DocumentWritesTotal.WithLabelValues("create", "error").Inc()
			return domdoc.Document{}, fmt.Errorf("create document: %w", err)
		}
		metrics.DocumentWritesTotal.WithLabelValues("create", "ok").Inc()
		return doc, nil
	}

	metrics.DocumentWritesTotal.WithLabelValues("create", "error").Inc()
	return domdoc.Document{}, fmt.Errorf("allocate handle suffix: %w", domain.ErrAlreadyExists)
}

// Update saves a new body for the document. The edit is rejected with a
// RevisionConflictError when p was based on a stale revision, and with a
// frontmatter error when the body's metadata block does not parse. In both
// cases the stored document is untouched.
func (s *Service) Update(ctx context.Context, owner, id string, p patch.Patch) (domdoc.Document, error) {
	if size := domdoc.SizeOf(p.Body()); size > s.maxBodySize {
		return domdoc.Document{}, fmt.Errorf(
			"body is %d bytes, max %d: %w", size, s.maxBodySize, domain.ErrDocumentTooLarge,
		)
	}

	doc, err := s.Get(ctx, owner, id)
	if err != nil {
		return domdoc.Document{}, err
	}
	if doc.RevisionToken() != p.RevisionToken() {
		metrics.DocumentWritesTotal.WithLabelValues("update", "conflict").Inc()
		return domdoc.Document{}, domain.NewRevisionConflict(doc.RevisionToken())
	}

	rev, err := s.revision(&doc, p)
	if err != nil {
		return domdoc.Document{}, err
	}
	next := doc.Revise(rev)

	if err := s.repo.Update(ctx, &next, p.RevisionToken()); err != nil {
		if errors.Is(err, domain.ErrRevisionConflict) {
			metrics.DocumentWritesTotal.WithLabelValues("update", "conflict").Inc()
			return domdoc.Document{}, err //nolint:wrapcheck // caller needs the typed conflict
		}
		metrics.DocumentWritesTotal.WithLabelValues("update", "error").Inc()
		return domdoc.Document{}, fmt.Errorf("update document: %w", err)
	}
	metrics.DocumentWritesTotal.WithLabelValues("update", "ok").Inc()
	return next, nil
}

// revision derives the metadata of an edit, from the body's frontmatter when
// the mode calls for it, else from the explicit patch fields.
func (s *Service) revision(doc *domdoc.Document, p patch.Patch) (domdoc.Revision, error) {
	now := s.now()
	rev := domdoc.Revision{
		Title:         doc.Title(),
		Tags:          doc.Tags(),
		Status:        doc.Status(),
		Body:          p.Body(),
		Updated:       now.UnixMilli(),
		RevisionToken: uuid.NewString(),
	}

	if s.parses(p.Body()) {
		v, err := parseMetadata(p.Body(), now)
		if err != nil {
			return domdoc.Revision{}, err
		}
		rev.Title, rev.Tags, rev.Status, rev.Updated = v.Title, v.Tags, v.Status, v.Updated
		return rev, nil
	}

	if t := p.Title(); t != nil {
		rev.Title = *t
	}
	if tags, ok := p.Tags(); ok {
		rev.Tags = tags
	}
	return rev, nil
}

func (s *Service) parses(body string) bool {
	switch s.mode {
	case ModeRequired:
		return true
	case ModeOff:
		return false
	default:
		return frontmatter.HasBlock(body)
	}
}

func parseMetadata(body string, now time.Time) (frontmatter.Validated, error) {
	fields, err := frontmatter.Parse(body)
	if err != nil {
		metrics.FrontmatterFailuresTotal.WithLabelValues("format").Inc()
		return frontmatter.Validated{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	v, err := frontmatter.ValidateAndFill(fields, now)
	if err != nil {
		metrics.FrontmatterFailuresTotal.WithLabelValues("validation").Inc()
		return frontmatter.Validated{}, fmt.Errorf("validate frontmatter: %w", err)
	}
	return v, nil
}

// Get returns owner's document by ID. Documents of other owners are reported
// as not found.
func (s *Service) Get(ctx context.Context, owner, id string) (domdoc.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	if !doc.OwnedBy(owner) {
		return domdoc.Document{}, fmt.Errorf("get document %s: %w", id, domain.ErrDocumentNotFound)
	}
	return doc, nil
}

// GetByHandle resolves a slug-suffix handle within owner's documents. Only
// the suffix identifies the document; the slug part may be stale.
func (s *Service) GetByHandle(ctx context.Context, owner, handle string) (domdoc.Document, error) {
	_, suffix, err := domdoc.ParseHandle(handle)
	if err != nil {
		return domdoc.Document{}, err //nolint:wrapcheck // already carries ErrInvalidHandle
	}
	doc, err := s.repo.GetBySuffix(ctx, owner, suffix)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document by handle: %w", err)
	}
	return doc, nil
}

// List returns owner's documents, most recently updated first.
func (s *Service) List(ctx context.Context, owner string) ([]domdoc.Document, error) {
	docs, err := s.repo.ListByOwner(ctx, owner, s.maxPerOwner)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Delete removes owner's document.
func (s *Service) Delete(ctx context.Context, owner, id string) error {
	doc, err := s.Get(ctx, owner, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, &doc); err != nil {
		metrics.DocumentWritesTotal.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("delete document: %w", err)
	}
	metrics.DocumentWritesTotal.WithLabelValues("delete", "ok").Inc()
	return nil
}
