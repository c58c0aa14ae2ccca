package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

// execute runs the CLI with args and returns its stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestFrontmatterCheck_Valid(t *testing.T) {
	path := writeFile(t, "---\ntitle: Meeting Notes\ntags: [work, weekly]\nupdated: 0\n---\n# Notes\n")

	out, err := execute(t, "", "frontmatter", "check", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"OK " + path, "title:   Meeting Notes", "status:  draft", "tags:    work, weekly"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFrontmatterCheck_JSON(t *testing.T) {
	out, err := execute(t, "---\ntitle: X\nstatus: published\nupdated: 42\n---\n", "--json", "frontmatter", "check", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got struct {
		Title   string   `json:"title"`
		Tags    []string `json:"tags"`
		Status  string   `json:"status"`
		Updated int64    `json:"updated"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Title != "X" || got.Status != "published" || got.Updated != 42 || len(got.Tags) != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestFrontmatterCheck_Invalid(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"no block", "# Notes\n", "no frontmatter block"},
		{"unclosed", "---\ntitle: X\n", "missing closing --- line"},
		{"missing title", "---\nstatus: draft\n---\n", "title"},
		{"bad line", "---\ntitle: X\n  indented: y\n---\n", "line 3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.body, "frontmatter", "check", "-")
			if !errors.Is(err, errInvalidFrontmatter) {
				t.Fatalf("err = %v, want errInvalidFrontmatter", err)
			}
			if !strings.HasPrefix(out, "FAIL -") || !strings.Contains(out, tc.want) {
				t.Errorf("output = %q, want it to mention %q", out, tc.want)
			}
		})
	}
}

func TestFrontmatterCheck_MissingFile(t *testing.T) {
	if _, err := execute(t, "", "frontmatter", "check", filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFrontmatterFmt(t *testing.T) {
	out, err := execute(t, "---\ntags: b, a\ntitle:   Plan  \nupdated: 7\n---\nbody\n", "frontmatter", "fmt", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "---\ntitle: Plan\nstatus: draft\nupdated: 7\ntags:\n- b\n- a\n---\nbody\n"
	if out != want {
		t.Errorf("got %q\nwant %q", out, want)
	}
}

func newAPI(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestSearch(t *testing.T) {
	var body map[string]any
	url := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer k" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `[{"doc_handle":"design-review-ab12","title":"Design Review","updated":0,"approx_size":2048}]`)
	})

	out, err := execute(t, "", "--api-url", url, "--token", "k", "search", "design", "review", "-n", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["query"] != "design review" || body["limit"] != float64(3) {
		t.Errorf("request = %v", body)
	}
	if !strings.Contains(out, " 1. Design Review  design-review-ab12") || !strings.Contains(out, "2.0 KB") {
		t.Errorf("output = %q", out)
	}
}

func TestSearch_NoResults(t *testing.T) {
	url := newAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	out, err := execute(t, "", "--api-url", url, "search", "nothing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "No documents matched your search." {
		t.Errorf("output = %q", out)
	}
}

func TestSearch_InvalidLimit(t *testing.T) {
	url := newAPI(t, func(http.ResponseWriter, *http.Request) {
		t.Error("server must not be called")
	})
	if _, err := execute(t, "", "--api-url", url, "search", "x", "--limit", "50"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGet(t *testing.T) {
	url := newAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"frontmatter":"title: X","body":"# X\n","updated":0,"full_size":30,"is_truncated":true}`)
	})

	out, err := execute(t, "", "--api-url", url, "get", "x-ab12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"x-ab12", "30 B", "truncated to 4 B", "---\ntitle: X\n---\n# X\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	raw, err := execute(t, "", "--api-url", url, "get", "x-ab12", "--raw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "# X\n" {
		t.Errorf("raw = %q", raw)
	}
}

func TestGet_NotFound(t *testing.T) {
	url := newAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"code":"document_not_found","message":"document not found"}`)
	})
	_, err := execute(t, "", "--api-url", url, "get", "x-ab12")
	if err == nil || !strings.Contains(err.Error(), "document not found") {
		t.Fatalf("err = %v", err)
	}
}

func TestHealth(t *testing.T) {
	url := newAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"status":"error","version":"dev","checks":{"database":"error"}}`)
	})
	out, err := execute(t, "", "--api-url", url, "health")
	if err == nil {
		t.Fatal("expected error for unhealthy service")
	}
	if !strings.Contains(out, "status: error") || !strings.Contains(out, "database") {
		t.Errorf("output = %q", out)
	}
}
