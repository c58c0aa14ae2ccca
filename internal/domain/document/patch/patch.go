package patch

import (
	"fmt"
	"strings"
)

// Patch is a document edit. Body and revision token are always sent; nil
// Title or Tags keep the stored values unless the body carries frontmatter.
type Patch struct {
	body          string
	title         *string
	tags          []string
	hasTags       bool
	revisionToken string
}

// New validates and creates a Patch.
func New(body string, title *string, tags []string, hasTags bool, revisionToken string) (Patch, error) {
	if strings.TrimSpace(revisionToken) == "" {
		return Patch{}, fmt.Errorf("revision token is required")
	}
	if title != nil && strings.TrimSpace(*title) == "" {
		return Patch{}, fmt.Errorf("title must not be blank")
	}
	var cleaned []string
	if hasTags {
		cleaned = make([]string, 0, len(tags))
		for _, t := range tags {
			if t = strings.TrimSpace(t); t != "" {
				cleaned = append(cleaned, t)
			}
		}
	}
	return Patch{body: body, title: title, tags: cleaned, hasTags: hasTags, revisionToken: revisionToken}, nil
}

// Body returns the new body.
func (p Patch) Body() string { return p.body }

// Title returns the new title, or nil if unchanged.
func (p Patch) Title() *string { return p.title }

// Tags returns the new tags and whether they were provided.
func (p Patch) Tags() ([]string, bool) { return p.tags, p.hasTags }

// RevisionToken returns the token the edit was based on.
func (p Patch) RevisionToken() string { return p.revisionToken }
