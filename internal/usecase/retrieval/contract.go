package retrieval

import (
	"context"

	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
)

// HandleResolver resolves a slug-suffix handle within an owner's documents.
type HandleResolver interface {
	GetByHandle(ctx context.Context, owner, handle string) (domdoc.Document, error)
}
