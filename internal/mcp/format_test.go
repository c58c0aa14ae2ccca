package mcp

import (
	"strings"
	"testing"

	memoria "github.com/kailas-cloud/memoria/pkg/sdk"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{800 * 1024, "800.0 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 / 2, "2.5 MB"},
	}
	for _, tc := range tests {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSearchResults(t *testing.T) {
	if got := formatSearchResults(nil); got != "No documents matched your search." {
		t.Errorf("empty: %q", got)
	}

	got := formatSearchResults([]memoria.SearchResult{
		{DocHandle: "meeting-notes-abc123", Title: "Meeting Notes", Updated: 0, ApproxSize: 2048},
		{DocHandle: "roadmap", Title: "Q3", Updated: 0, ApproxSize: 10},
	})
	lines := strings.Split(got, "\n")
	if len(lines) != 3 || lines[0] != "Search results:" {
		t.Fatalf("got %q", got)
	}
	want := "1. Meeting Notes (handle: meeting-notes-abc123, updated: 1970-01-01 00:00 UTC, approx size: 2.0 KB)"
	if lines[1] != want {
		t.Errorf("line 1 = %q, want %q", lines[1], want)
	}
	if !strings.HasPrefix(lines[2], "2. Q3 (handle: roadmap,") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestFormatDocument(t *testing.T) {
	got := formatDocument("x-1", memoria.Document{
		Frontmatter: "title: X", Body: "# X\n", FullSize: 20,
	})
	want := "Document \"x-1\" (updated: 1970-01-01 00:00 UTC, full size: 20 B)\n\n---\ntitle: X\n---\n# X\n"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestFormatDocument_Truncated(t *testing.T) {
	got := formatDocument("x-1", memoria.Document{Body: "abcd", FullSize: 4096, IsTruncated: true})
	if !strings.Contains(got, "WARNING: Response truncated to 4 B.") {
		t.Errorf("missing warning: %q", got)
	}
	if strings.Contains(got, "---") {
		t.Errorf("no frontmatter expected: %q", got)
	}
}
