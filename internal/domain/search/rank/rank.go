package rank

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/memoria/internal/domain/search/order"
	"github.com/kailas-cloud/memoria/internal/domain/search/result"
)

type scored struct {
	doc   Document
	slug  string
	score int
}

// Rank filters and orders docs against query and returns at most opts.Limit
// results. A blank query skips scoring and lists documents newest first.
// Every token of a non-blank query must match at least one field of a
// document for it to be returned. The input slice is not modified.
func Rank(docs []Document, query string, opts Options) []result.Result {
	limit := opts.limit()

	if strings.TrimSpace(query) == "" {
		sorted := slices.Clone(docs)
		slices.SortStableFunc(sorted, func(a, b Document) int {
			return cmp.Compare(b.Updated, a.Updated)
		})
		return toResults(sorted, limit, func(d Document) Document { return d })
	}

	tokens := tokenize(query)
	hits := make([]scored, 0, len(docs))
	for _, d := range docs {
		if s, ok := score(d, tokens); ok {
			hits = append(hits, scored{doc: d, slug: d.CompoundSlug(), score: s})
		}
	}

	if opts.Order.OrDefault() == order.Recency {
		slices.SortStableFunc(hits, byRecency)
	} else {
		slices.SortStableFunc(hits, byRelevance())
	}
	return toResults(hits, limit, func(s scored) Document { return s.doc })
}

// score sums per-token scores. A document is kept only when every token
// scored above zero.
func score(d Document, tokens []string) (int, bool) {
	f := newFields(d)
	perToken := make([]int, len(tokens))
	for i, tok := range tokens {
		perToken[i] = f.tokenScore(tok)
	}
	if slices.Contains(perToken, 0) {
		return 0, false
	}
	total := 0
	for _, s := range perToken {
		total += s
	}
	return total, true
}

func byRecency(a, b scored) int {
	return cmp.Compare(b.doc.Updated, a.doc.Updated)
}

// byRelevance orders by score desc, updated desc, then compound slug under
// root-locale collation. Collators are not safe for concurrent use, so each
// call gets its own.
func byRelevance() func(a, b scored) int {
	coll := collate.New(language.Und)
	return func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.doc.Updated, a.doc.Updated); c != 0 {
			return c
		}
		if c := coll.CompareString(a.slug, b.slug); c != 0 {
			return c
		}
		return strings.Compare(a.slug, b.slug)
	}
}

func toResults[T any](items []T, limit int, doc func(T) Document) []result.Result {
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]result.Result, len(items))
	for i, it := range items {
		d := doc(it)
		out[i] = result.New(d.ID, d.CompoundSlug(), d.Title, d.Updated, d.SizeBytes)
	}
	return out
}
