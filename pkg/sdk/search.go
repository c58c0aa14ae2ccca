package memoria

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kailas-cloud/memoria/internal/domain/search/order"
	"github.com/kailas-cloud/memoria/internal/domain/search/request"
)

// Search ranks the caller's documents against query. The query must be
// non-blank and at most 200 characters; Limit must be 0 or within 1..10.
// Invalid input fails with ErrInvalidRequest before any request is sent.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (results []SearchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	req, verr := request.New(query, order.Order(opts.Sort), opts.Limit)
	if verr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, verr)
	}

	var raw []searchResultWire
	body := searchRequest{Query: query, Limit: opts.Limit, Sort: string(opts.Sort)}
	if err = c.do(ctx, http.MethodPost, "/mcp/search", body, &raw); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results = make([]SearchResult, len(raw))
	for i := range raw {
		r, cerr := raw[i].toResult()
		if cerr != nil {
			return nil, fmt.Errorf("search: result %d: %w", i, cerr)
		}
		results[i] = r
	}
	c.obs.observeSearch(string(req.Order()), len(results))
	return results, nil
}

func (w *searchResultWire) toResult() (SearchResult, error) {
	if err := missingField(
		[]string{"doc_handle", "title", "updated", "approx_size"},
		w.DocHandle != nil, w.Title != nil, w.Updated != nil, w.ApproxSize != nil,
	); err != nil {
		return SearchResult{}, err
	}
	return SearchResult{
		DocHandle:  *w.DocHandle,
		Title:      *w.Title,
		Updated:    *w.Updated,
		ApproxSize: *w.ApproxSize,
	}, nil
}
