package retrieval

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kailas-cloud/memoria/internal/domain"
	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
)

type mockResolver struct {
	doc        domdoc.Document
	err        error
	lastHandle string
}

func (m *mockResolver) GetByHandle(_ context.Context, _, handle string) (domdoc.Document, error) {
	m.lastHandle = handle
	return m.doc, m.err
}

func withBody(body string) *mockResolver {
	return &mockResolver{doc: domdoc.Reconstruct(domdoc.Snapshot{
		ID: "d1", Owner: "alice", Title: "Meeting Notes", Slug: "meeting-notes", Suffix: "abc12345",
		Body: body, Status: "draft", Updated: 200,
	})}
}

func TestGet_SplitsFrontmatter(t *testing.T) {
	docs := withBody("---\ntitle: Meeting Notes\ntags: [work]\n---\n# Agenda\n")
	svc := New(docs)

	got, err := svc.Get(context.Background(), "alice", "meeting-notes-abc12345", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Frontmatter != "title: Meeting Notes\ntags: [work]" {
		t.Errorf("Frontmatter = %q", got.Frontmatter)
	}
	if got.Body != "# Agenda\n" {
		t.Errorf("Body = %q", got.Body)
	}
	if got.IsTruncated || got.FullSize != 51 || got.Updated != 200 {
		t.Errorf("unexpected metadata: %+v", got)
	}
	if got.Handle != "meeting-notes-abc12345" || docs.lastHandle != "meeting-notes-abc12345" {
		t.Errorf("handle = %q", got.Handle)
	}
}

func TestGet_PlainBody(t *testing.T) {
	svc := New(withBody("no block here"))

	got, err := svc.Get(context.Background(), "alice", "x-abc12345", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Frontmatter != "" || got.Body != "no block here" {
		t.Errorf("got %+v", got)
	}
}

func TestGet_Truncates(t *testing.T) {
	body := strings.Repeat("é", 10) // 20 bytes
	svc := New(withBody(body))

	got, err := svc.Get(context.Background(), "alice", "x-abc12345", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsTruncated {
		t.Error("expected truncation")
	}
	if got.Body != "éé" {
		t.Errorf("Body = %q, want two whole runes", got.Body)
	}
	if got.FullSize != 20 {
		t.Errorf("FullSize = %d", got.FullSize)
	}
}

func TestGet_DefaultAndAbsoluteLimits(t *testing.T) {
	body := strings.Repeat("a", 100)
	svc := New(withBody(body)).WithLimits(10, 40)

	got, _ := svc.Get(context.Background(), "alice", "x-abc12345", 0)
	if len(got.Body) != 10 {
		t.Errorf("default limit: len = %d, want 10", len(got.Body))
	}
	got, _ = svc.Get(context.Background(), "alice", "x-abc12345", 1000)
	if len(got.Body) != 40 {
		t.Errorf("absolute limit: len = %d, want 40", len(got.Body))
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := New(&mockResolver{err: domain.ErrDocumentNotFound})

	_, err := svc.Get(context.Background(), "alice", "x-abc12345", 0)
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		max      int
		want     string
		wantTrim bool
	}{
		{"hello", 10, "hello", false},
		{"hello", 5, "hello", false},
		{"hello", 3, "hel", true},
		{"日本語", 4, "日", true},
		{"日本語", 2, "", true},
		{"a😀b", 4, "a", true},
		{"a😀b", 5, "a😀", true},
	}
	for _, tc := range tests {
		got, trimmed := Truncate(tc.in, tc.max)
		if got != tc.want || trimmed != tc.wantTrim {
			t.Errorf("Truncate(%q, %d) = %q, %v; want %q, %v", tc.in, tc.max, got, trimmed, tc.want, tc.wantTrim)
		}
		if !utf8.ValidString(got) {
			t.Errorf("Truncate(%q, %d) produced invalid UTF-8", tc.in, tc.max)
		}
	}
}
