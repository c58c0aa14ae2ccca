package memoria

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
)

// GetDocument fetches a document by its slug-suffix handle. A malformed
// handle fails with ErrInvalidHandle before any request is sent; an unknown
// one with ErrDocumentNotFound.
func (c *Client) GetDocument(ctx context.Context, handle string, opts GetOptions) (doc Document, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_document", start, err) }()

	handle = strings.TrimSpace(handle)
	if _, _, perr := domdoc.ParseHandle(handle); perr != nil {
		return Document{}, fmt.Errorf("get document %q: %w", handle, perr)
	}

	var raw documentWire
	body := getDocumentRequest{DocHandle: handle, MaxBytes: max(opts.MaxBytes, 0)}
	if err = c.do(ctx, http.MethodPost, "/mcp/get_document", body, &raw); err != nil {
		return Document{}, fmt.Errorf("get document %q: %w", handle, err)
	}

	if err = missingField(
		[]string{"body", "updated", "full_size", "is_truncated"},
		raw.Body != nil, raw.Updated != nil, raw.FullSize != nil, raw.IsTruncated != nil,
	); err != nil {
		return Document{}, fmt.Errorf("get document %q: %w", handle, err)
	}

	doc = Document{
		Body:        *raw.Body,
		Updated:     *raw.Updated,
		FullSize:    *raw.FullSize,
		IsTruncated: *raw.IsTruncated,
	}
	if raw.Frontmatter != nil {
		doc.Frontmatter = *raw.Frontmatter
	}
	c.obs.observeDocument(doc)
	return doc, nil
}
