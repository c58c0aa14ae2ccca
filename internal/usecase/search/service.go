package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
	"github.com/kailas-cloud/memoria/internal/domain/search/rank"
	"github.com/kailas-cloud/memoria/internal/domain/search/request"
	"github.com/kailas-cloud/memoria/internal/domain/search/result"
	"github.com/kailas-cloud/memoria/internal/metrics"
)

// Service ranks an owner's documents against a query. The corpus per owner
// is capped at domdoc.MaxPerOwner, so every search scores the full set.
type Service struct {
	docs        DocumentLister
	maxPerOwner int
}

// New creates a search service.
func New(docs DocumentLister) *Service {
	return &Service{docs: docs, maxPerOwner: domdoc.MaxPerOwner}
}

// WithMaxPerOwner overrides how many documents are loaded per search.
func (s *Service) WithMaxPerOwner(n int) *Service {
	if n > 0 {
		s.maxPerOwner = n
	}
	return s
}

// Search returns owner's documents matching req, best first.
func (s *Service) Search(ctx context.Context, owner string, req *request.Request) ([]result.Result, error) {
	docs, err := s.docs.ListByOwner(ctx, owner, s.maxPerOwner)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	candidates := make([]rank.Document, len(docs))
	for i := range docs {
		candidates[i] = toRankDocument(&docs[i])
	}

	start := time.Now()
	results := rank.Rank(candidates, req.Query(), req.RankOptions())
	metrics.SearchRankDuration.Observe(time.Since(start).Seconds())

	blank := strconv.FormatBool(strings.TrimSpace(req.Query()) == "")
	metrics.SearchQueriesTotal.WithLabelValues(string(req.Order()), blank).Inc()
	metrics.SearchResultsReturned.Observe(float64(len(results)))

	return results, nil
}

func toRankDocument(d *domdoc.Document) rank.Document {
	return rank.Document{
		ID:        d.ID(),
		Slug:      d.Slug(),
		Suffix:    d.Suffix(),
		Title:     d.Title(),
		Tags:      d.Tags(),
		Updated:   d.Updated(),
		SizeBytes: d.SizeBytes(),
	}
}
