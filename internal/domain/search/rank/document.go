// Package rank scores and orders a caller's documents against a free-text
// query. Ranking is lexical: a query token matches a document field by exact,
// prefix or substring comparison after simple lowercasing.
package rank

import "github.com/kailas-cloud/memoria/internal/domain/search/order"

// Result limits.
const (
	DefaultLimit = 5
	MaxLimit     = 10
)

// Document is the read-only view of a stored document that ranking needs.
// The input set is expected to be scoped to one owner already.
type Document struct {
	ID        string
	Slug      string
	Suffix    string
	Title     string
	Tags      []string
	Updated   int64 // ms since epoch
	SizeBytes int64
}

// CompoundSlug returns slug-suffix, or the bare slug when there is no suffix.
func (d Document) CompoundSlug() string {
	if d.Suffix == "" {
		return d.Slug
	}
	return d.Slug + "-" + d.Suffix
}

// Options controls truncation and ordering.
type Options struct {
	Limit int
	Order order.Order
}

func (o Options) limit() int {
	switch {
	case o.Limit <= 0:
		return DefaultLimit
	case o.Limit > MaxLimit:
		return MaxLimit
	default:
		return o.Limit
	}
}
