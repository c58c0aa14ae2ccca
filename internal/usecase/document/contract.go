package document

import (
	"context"

	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Create(ctx context.Context, doc *domdoc.Document) error
	Get(ctx context.Context, id string) (domdoc.Document, error)
	GetBySuffix(ctx context.Context, owner, suffix string) (domdoc.Document, error)
	ListByOwner(ctx context.Context, owner string, limit int) ([]domdoc.Document, error)
	CountByOwner(ctx context.Context, owner string) (int, error)
	Update(ctx context.Context, doc *domdoc.Document, expectedRevision string) error
	Delete(ctx context.Context, doc *domdoc.Document) error
}
