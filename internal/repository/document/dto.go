package document

import (
	"encoding/json"
	"strconv"

	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
)

// Hash field names.
const (
	fieldOwner     = "owner"
	fieldProject   = "project_id"
	fieldTitle     = "title"
	fieldSlug      = "slug"
	fieldSuffix    = "suffix"
	fieldBody      = "body"
	fieldTags      = "tags"
	fieldStatus    = "status"
	fieldUpdated   = "updated"
	fieldCreatedAt = "created_at"
	fieldRevision  = "revision_token"
)

// buildHashFields converts a domain Document into a flat map[string]string for HSET.
func buildHashFields(doc *domdoc.Document) map[string]string {
	tags := doc.Tags()
	if tags == nil {
		tags = []string{}
	}
	encodedTags, _ := json.Marshal(tags)

	return map[string]string{
		fieldOwner:     doc.Owner(),
		fieldProject:   doc.ProjectID(),
		fieldTitle:     doc.Title(),
		fieldSlug:      doc.Slug(),
		fieldSuffix:    doc.Suffix(),
		fieldBody:      doc.Body(),
		fieldTags:      string(encodedTags),
		fieldStatus:    doc.Status(),
		fieldUpdated:   strconv.FormatInt(doc.Updated(), 10),
		fieldCreatedAt: strconv.FormatInt(doc.CreatedAt(), 10),
		fieldRevision:  doc.RevisionToken(),
	}
}

// parseHashFields converts a flat hash map back into a domain Document.
// Malformed numeric or tag fields decode to zero values.
func parseHashFields(id string, m map[string]string) domdoc.Document {
	var tags []string
	if raw := m[fieldTags]; raw != "" {
		_ = json.Unmarshal([]byte(raw), &tags)
	}
	if tags == nil {
		tags = []string{}
	}
	updated, _ := strconv.ParseInt(m[fieldUpdated], 10, 64)
	createdAt, _ := strconv.ParseInt(m[fieldCreatedAt], 10, 64)

	return domdoc.Reconstruct(domdoc.Snapshot{
		ID:            id,
		Owner:         m[fieldOwner],
		ProjectID:     m[fieldProject],
		Title:         m[fieldTitle],
		Slug:          m[fieldSlug],
		Suffix:        m[fieldSuffix],
		Body:          m[fieldBody],
		Tags:          tags,
		Status:        m[fieldStatus],
		Updated:       updated,
		CreatedAt:     createdAt,
		RevisionToken: m[fieldRevision],
	})
}
