package document

import (
	"fmt"
	"strings"
)

// Limits and defaults.
const (
	// MaxPerOwner is the per-owner document ceiling.
	MaxPerOwner = 10
	// MaxBodySize is the maximum body size in bytes.
	MaxBodySize = 800 * 1024
	// DefaultTitle is used when a document is created without a title.
	DefaultTitle  = "Untitled Document"
	DefaultStatus = "draft"
)

// Document is the document aggregate (immutable value object).
type Document struct {
	id            string
	owner         string
	projectID     string
	title         string
	slug          string
	suffix        string
	body          string
	tags          []string
	status        string
	updated       int64
	createdAt     int64
	revisionToken string
}

// New creates an empty document. A blank title falls back to DefaultTitle;
// slug and suffix must already be generated.
func New(id, owner, projectID, title, slug, suffix, revisionToken string, now int64) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if owner == "" {
		return Document{}, fmt.Errorf("owner is required")
	}
	if slug == "" || suffix == "" {
		return Document{}, fmt.Errorf("slug and suffix are required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	return Document{
		id:            id,
		owner:         owner,
		projectID:     projectID,
		title:         title,
		slug:          slug,
		suffix:        suffix,
		tags:          []string{},
		status:        DefaultStatus,
		updated:       now,
		createdAt:     now,
		revisionToken: revisionToken,
	}, nil
}

// Snapshot is the full stored state of a document.
type Snapshot struct {
	ID            string
	Owner         string
	ProjectID     string
	Title         string
	Slug          string
	Suffix        string
	Body          string
	Tags          []string
	Status        string
	Updated       int64
	CreatedAt     int64
	RevisionToken string
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(s Snapshot) Document {
	return Document{
		id: s.ID, owner: s.Owner, projectID: s.ProjectID,
		title: s.Title, slug: s.Slug, suffix: s.Suffix,
		body: s.Body, tags: s.Tags, status: s.Status,
		updated: s.Updated, createdAt: s.CreatedAt, revisionToken: s.RevisionToken,
	}
}

// Snapshot returns the document state for persistence.
func (d *Document) Snapshot() Snapshot {
	return Snapshot{
		ID: d.id, Owner: d.owner, ProjectID: d.projectID,
		Title: d.title, Slug: d.slug, Suffix: d.suffix,
		Body: d.body, Tags: d.tags, Status: d.status,
		Updated: d.updated, CreatedAt: d.createdAt, RevisionToken: d.revisionToken,
	}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Owner returns the owning caller identity.
func (d *Document) Owner() string { return d.owner }

// ProjectID returns the opaque project reference, possibly empty.
func (d *Document) ProjectID() string { return d.projectID }

// Title returns the display title.
func (d *Document) Title() string { return d.title }

// Slug returns the title-derived slug.
func (d *Document) Slug() string { return d.slug }

// Suffix returns the per-owner unique suffix.
func (d *Document) Suffix() string { return d.suffix }

// Body returns the Markdown body.
func (d *Document) Body() string { return d.body }

// Tags returns the tags.
func (d *Document) Tags() []string { return d.tags }

// Status returns the workflow status.
func (d *Document) Status() string { return d.status }

// Updated returns the last update time in ms since epoch.
func (d *Document) Updated() int64 { return d.updated }

// CreatedAt returns the creation time in ms since epoch.
func (d *Document) CreatedAt() int64 { return d.createdAt }

// RevisionToken returns the optimistic locking token.
func (d *Document) RevisionToken() string { return d.revisionToken }

// SizeBytes returns the body size in bytes.
func (d *Document) SizeBytes() int64 { return SizeOf(d.body) }

// CompoundSlug returns the caller-facing handle slug-suffix.
func (d *Document) CompoundSlug() string { return d.slug + "-" + d.suffix }

// OwnedBy reports whether owner owns the document.
func (d *Document) OwnedBy(owner string) bool { return d.owner == owner }

// Revision is the metadata and body of a saved edit.
type Revision struct {
	Title         string
	Tags          []string
	Status        string
	Body          string
	Updated       int64
	RevisionToken string
}

// Revise returns a copy with r applied. A changed title regenerates the slug;
// the suffix never changes so existing handles keep resolving.
func (d *Document) Revise(r Revision) Document {
	next := *d
	title := strings.TrimSpace(r.Title)
	if title != d.title {
		next.slug = GenerateSlug(title)
	}
	next.title = title
	next.tags = append([]string{}, r.Tags...)
	next.status = r.Status
	if next.status == "" {
		next.status = DefaultStatus
	}
	next.body = r.Body
	next.updated = r.Updated
	next.revisionToken = r.RevisionToken
	return next
}

// SizeOf returns the UTF-8 byte length of body.
func SizeOf(body string) int64 { return int64(len(body)) }
