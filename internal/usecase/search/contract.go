package search

import (
	"context"

	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
)

// DocumentLister loads the documents a search ranks over.
type DocumentLister interface {
	ListByOwner(ctx context.Context, owner string, limit int) ([]domdoc.Document, error)
}
