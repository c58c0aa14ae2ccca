package result

// Result is a single ranked document. The ranking score is not part of it.
type Result struct {
	id           string
	compoundSlug string
	title        string
	updated      int64
	sizeBytes    int64
}

// New creates a search result.
func New(id, compoundSlug, title string, updated, sizeBytes int64) Result {
	return Result{
		id: id, compoundSlug: compoundSlug, title: title,
		updated: updated, sizeBytes: sizeBytes,
	}
}

// ID returns the document identifier.
func (r *Result) ID() string { return r.id }

// CompoundSlug returns the slug-suffix handle of the document.
func (r *Result) CompoundSlug() string { return r.compoundSlug }

// Title returns the document title.
func (r *Result) Title() string { return r.title }

// Updated returns the last update time in ms since epoch.
func (r *Result) Updated() int64 { return r.updated }

// SizeBytes returns the body size in bytes.
func (r *Result) SizeBytes() int64 { return r.sizeBytes }
