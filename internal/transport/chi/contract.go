package chi

import (
	"context"

	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
	"github.com/kailas-cloud/memoria/internal/domain/document/patch"
	"github.com/kailas-cloud/memoria/internal/domain/search/request"
	"github.com/kailas-cloud/memoria/internal/domain/search/result"
	tokenrepo "github.com/kailas-cloud/memoria/internal/repository/token"
	healthuc "github.com/kailas-cloud/memoria/internal/usecase/health"
	retrievaluc "github.com/kailas-cloud/memoria/internal/usecase/retrieval"
)

// DocumentService is the document lifecycle the API exposes.
type DocumentService interface {
	Create(ctx context.Context, owner, title, projectID string) (domdoc.Document, error)
	Update(ctx context.Context, owner, id string, p patch.Patch) (domdoc.Document, error)
	Get(ctx context.Context, owner, id string) (domdoc.Document, error)
	GetByHandle(ctx context.Context, owner, handle string) (domdoc.Document, error)
	List(ctx context.Context, owner string) ([]domdoc.Document, error)
	Delete(ctx context.Context, owner, id string) error
}

// SearchService ranks an owner's documents.
type SearchService interface {
	Search(ctx context.Context, owner string, req *request.Request) ([]result.Result, error)
}

// RetrievalService serves bounded document bodies to agents.
type RetrievalService interface {
	Get(ctx context.Context, owner, handle string, maxBytes int) (retrievaluc.Document, error)
}

// TokenIssuer creates personal access tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, owner, name string) (tokenrepo.Issued, error)
}

// HealthChecker reports service health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}
