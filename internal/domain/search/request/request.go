package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/memoria/internal/domain/search/order"
	"github.com/kailas-cloud/memoria/internal/domain/search/rank"
)

// MaxQueryLength is the maximum query length in characters.
const MaxQueryLength = 200

// Request is a validated search query.
type Request struct {
	query string
	order order.Order
	limit int
}

// New validates an agent search. The query must contain a non-blank
// character. Defaults: order=relevance, limit=5.
func New(query string, o order.Order, limit int) (Request, error) {
	if strings.TrimSpace(query) == "" {
		return Request{}, fmt.Errorf("query is required")
	}
	return build(query, o, limit)
}

// NewBrowse validates a UI search, where a blank query lists documents by
// recency.
func NewBrowse(query string, o order.Order, limit int) (Request, error) {
	return build(query, o, limit)
}

func build(query string, o order.Order, limit int) (Request, error) {
	if n := utf8.RuneCountInString(query); n > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (%d chars, max %d)", n, MaxQueryLength)
	}
	o = o.OrDefault()
	if !o.IsValid() {
		return Request{}, fmt.Errorf("invalid sort order: %q", o)
	}
	if limit == 0 {
		limit = rank.DefaultLimit
	}
	if limit < 1 || limit > rank.MaxLimit {
		return Request{}, fmt.Errorf("limit must be between 1 and %d", rank.MaxLimit)
	}
	return Request{query: query, order: o, limit: limit}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Order returns the result ordering.
func (r *Request) Order() order.Order { return r.order }

// Limit returns the maximum results to return.
func (r *Request) Limit() int { return r.limit }

// RankOptions converts the request into ranker options.
func (r *Request) RankOptions() rank.Options {
	return rank.Options{Limit: r.limit, Order: r.order}
}
