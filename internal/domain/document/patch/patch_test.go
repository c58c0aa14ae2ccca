package patch

import (
	"reflect"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestNew_BodyOnly(t *testing.T) {
	p, err := New("# Notes", nil, nil, false, "rev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Body() != "# Notes" {
		t.Errorf("Body() = %q", p.Body())
	}
	if p.Title() != nil {
		t.Error("Title() should be nil")
	}
	if _, ok := p.Tags(); ok {
		t.Error("Tags() reported as provided")
	}
	if p.RevisionToken() != "rev-1" {
		t.Errorf("RevisionToken() = %q", p.RevisionToken())
	}
}

func TestNew_EmptyBodyAllowed(t *testing.T) {
	if _, err := New("", nil, nil, false, "rev-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_TagsCleaned(t *testing.T) {
	p, err := New("x", strPtr("Title"), []string{" go ", "", "  ", "redis"}, true, "rev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags, ok := p.Tags()
	if !ok {
		t.Fatal("Tags() not provided")
	}
	if !reflect.DeepEqual(tags, []string{"go", "redis"}) {
		t.Errorf("Tags() = %v", tags)
	}
}

func TestNew_EmptyTagsProvided(t *testing.T) {
	p, err := New("x", nil, nil, true, "rev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags, ok := p.Tags()
	if !ok || tags == nil || len(tags) != 0 {
		t.Errorf("Tags() = %#v, %v; want empty, true", tags, ok)
	}
}

func TestNew_MissingRevisionToken(t *testing.T) {
	_, err := New("x", nil, nil, false, "  ")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "revision token") {
		t.Errorf("error = %q", err)
	}
}

func TestNew_BlankTitle(t *testing.T) {
	if _, err := New("x", strPtr("   "), nil, false, "rev-1"); err == nil {
		t.Fatal("expected error for blank title")
	}
}
