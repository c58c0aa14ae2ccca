package rank

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"testing"

	"github.com/kailas-cloud/memoria/internal/domain/search/order"
	"github.com/kailas-cloud/memoria/internal/domain/search/result"
)

func slugsOf(rs []result.Result) []string {
	out := make([]string, len(rs))
	for i := range rs {
		out[i] = rs[i].CompoundSlug()
	}
	return out
}

func meetingDocs() []Document {
	return []Document{
		{ID: "2", Slug: "meeting-notes", Suffix: "xyz789", Title: "Old Meeting", Updated: 100},
		{ID: "1", Slug: "meeting-notes", Suffix: "abc123", Title: "Meeting Notes", Updated: 200},
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Design Review", []string{"design", "review"}},
		{"  q3--roadmap \t plan ", []string{"q3", "roadmap", "plan"}},
		{"notes notes", []string{"notes", "notes"}},
		{"---", []string{}},
		{"Éclair", []string{"éclair"}},
	}
	for _, tc := range tests {
		got := tokenize(tc.in)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("tokenize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		doc   Document
		query string
		want  int
	}{
		{
			name:  "slug contains both tokens",
			doc:   Document{Slug: "q3-design-review", Suffix: "ef901234", Title: "Planning"},
			query: "design review",
			want:  70,
		},
		{
			name:  "slug prefix and contains",
			doc:   Document{Slug: "design-review", Suffix: "ef901234", Title: "Quarterly"},
			query: "design review",
			want:  100,
		},
		{
			name:  "exact compound slug",
			doc:   Document{Slug: "roadmap", Title: "Q3"},
			query: "roadmap",
			want:  105,
		},
		{
			name:  "exact title and prefix slug are additive",
			doc:   Document{Slug: "plan", Suffix: "a1", Title: "Plan"},
			query: "plan",
			want:  60 + 50 + 5,
		},
		{
			name:  "exact tag wins over earlier contains",
			doc:   Document{Slug: "x", Title: "y", Tags: []string{"golang", "Go"}},
			query: "go",
			want:  20,
		},
		{
			name:  "tag contains",
			doc:   Document{Slug: "x", Title: "y", Tags: []string{"golang"}},
			query: "lang",
			want:  15,
		},
		{
			name:  "duplicate tokens score independently",
			doc:   Document{Slug: "meeting-notes", Suffix: "abc123", Title: "Meeting Notes"},
			query: "notes notes",
			want:  90,
		},
		{
			name:  "case insensitive",
			doc:   Document{Slug: "x", Title: "ÉCLAIR recipes"},
			query: "éclair",
			want:  30,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := score(tc.doc, tokenize(tc.query))
			if !ok {
				t.Fatal("document eliminated")
			}
			if got != tc.want {
				t.Errorf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScore_EliminatesOnUnmatchedToken(t *testing.T) {
	d := Document{Slug: "meeting-notes", Suffix: "abc123", Title: "Meeting Notes", Tags: []string{"work"}}
	if _, ok := score(d, tokenize("meeting budget")); ok {
		t.Error("document with an unmatched token must be eliminated")
	}
	if _, ok := score(d, tokenize("eclair")); ok {
		t.Error("accents are not folded")
	}
}

func TestRank_TieBrokenByUpdated(t *testing.T) {
	got := Rank(meetingDocs(), "meeting", Options{})
	want := []string{"meeting-notes-abc123", "meeting-notes-xyz789"}
	if !slices.Equal(slugsOf(got), want) {
		t.Errorf("got %v, want %v", slugsOf(got), want)
	}
}

func TestRank_ExactSlugOutranksTitle(t *testing.T) {
	docs := []Document{
		{ID: "b", Slug: "draft", Suffix: "aa11", Title: "Roadmap draft", Updated: 2},
		{ID: "a", Slug: "roadmap", Title: "Q3", Updated: 1},
	}
	got := Rank(docs, "roadmap", Options{})
	if len(got) != 2 || got[0].ID() != "a" {
		t.Fatalf("got %v, want roadmap first", slugsOf(got))
	}
}

func TestRank_EveryResultMatchesEveryToken(t *testing.T) {
	docs := []Document{
		{ID: "1", Slug: "design-review", Suffix: "ef901234", Title: "Design review", Updated: 3},
		{ID: "2", Slug: "design-system", Suffix: "aa", Title: "Components", Updated: 2},
		{ID: "3", Slug: "notes", Suffix: "bb", Title: "Review notes", Tags: []string{"design"}, Updated: 1},
	}
	got := Rank(docs, "design review", Options{Limit: MaxLimit})
	ids := make([]string, len(got))
	for i := range got {
		ids[i] = got[i].ID()
	}
	if !slices.Equal(ids, []string{"1", "3"}) {
		t.Errorf("ids = %v, want [1 3]", ids)
	}
}

func TestRank_NoMatches(t *testing.T) {
	got := Rank(meetingDocs(), "budget", Options{})
	if got == nil || len(got) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", got)
	}
}

func TestRank_BlankQueryListsNewestFirst(t *testing.T) {
	docs := []Document{
		{ID: "a", Slug: "a", Updated: 1},
		{ID: "c", Slug: "c", Updated: 3},
		{ID: "b", Slug: "b", Updated: 2},
	}
	input := slices.Clone(docs)

	for _, q := range []string{"", "   \t"} {
		got := Rank(docs, q, Options{Limit: 2})
		if !slices.Equal(slugsOf(got), []string{"c", "b"}) {
			t.Errorf("query %q: got %v", q, slugsOf(got))
		}
	}
	if !reflect.DeepEqual(docs, input) {
		t.Error("input slice was reordered")
	}
}

func TestRank_Recency(t *testing.T) {
	docs := []Document{
		{ID: "old", Slug: "plan", Title: "Plan", Updated: 1},
		{ID: "new", Slug: "notes", Title: "Plan notes", Updated: 2},
	}
	relevance := Rank(docs, "plan", Options{Order: order.Relevance})
	if relevance[0].ID() != "old" {
		t.Errorf("relevance: first = %s, want old", relevance[0].ID())
	}
	recency := Rank(docs, "plan", Options{Order: order.Recency})
	if recency[0].ID() != "new" {
		t.Errorf("recency: first = %s, want new", recency[0].ID())
	}
}

func TestRank_SlugTieBreakIsTotal(t *testing.T) {
	docs := []Document{
		{ID: "z", Slug: "zebra", Title: "Plan", Updated: 5},
		{ID: "b", Slug: "beta", Suffix: "b2", Title: "Plan", Updated: 5},
		{ID: "e", Slug: "éclair", Title: "Plan", Updated: 5},
		{ID: "a", Slug: "alpha", Suffix: "a1", Title: "Plan", Updated: 5},
	}
	want := []string{"alpha-a1", "beta-b2", "éclair", "zebra"}

	for i := range 4 {
		rotated := append(slices.Clone(docs[i:]), docs[:i]...)
		got := Rank(rotated, "plan", Options{})
		if !slices.Equal(slugsOf(got), want) {
			t.Errorf("rotation %d: got %v, want %v", i, slugsOf(got), want)
		}
	}
}

func TestRank_LimitClamp(t *testing.T) {
	docs := make([]Document, 12)
	for i := range docs {
		docs[i] = Document{ID: fmt.Sprint(i), Slug: fmt.Sprintf("doc%02d", i), Title: "Doc", Updated: int64(i)}
	}
	tests := []struct {
		limit int
		want  int
	}{
		{0, DefaultLimit},
		{-3, DefaultLimit},
		{3, 3},
		{10, 10},
		{50, MaxLimit},
	}
	for _, tc := range tests {
		if got := len(Rank(docs, "doc", Options{Limit: tc.limit})); got != tc.want {
			t.Errorf("limit %d: got %d results, want %d", tc.limit, got, tc.want)
		}
		if got := len(Rank(docs, "", Options{Limit: tc.limit})); got != tc.want {
			t.Errorf("blank query, limit %d: got %d results, want %d", tc.limit, got, tc.want)
		}
	}
}

func TestRank_Idempotent(t *testing.T) {
	docs := meetingDocs()
	first := Rank(docs, "meeting notes", Options{})
	second := Rank(docs, "meeting notes", Options{})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %v vs %v", slugsOf(first), slugsOf(second))
	}
}

func TestRank_Concurrent(t *testing.T) {
	docs := meetingDocs()
	want := slugsOf(Rank(docs, "meeting", Options{}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if got := slugsOf(Rank(docs, "meeting", Options{})); !slices.Equal(got, want) {
					t.Errorf("got %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
