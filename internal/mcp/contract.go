package mcp

import (
	"context"

	memoria "github.com/kailas-cloud/memoria/pkg/sdk"
)

// API is the memoria HTTP API as seen by the tool bridge.
type API interface {
	Search(ctx context.Context, query string, opts memoria.SearchOptions) ([]memoria.SearchResult, error)
	GetDocument(ctx context.Context, handle string, opts memoria.GetOptions) (memoria.Document, error)
}
