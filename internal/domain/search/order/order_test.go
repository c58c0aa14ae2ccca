package order

import "testing"

func TestIsValid(t *testing.T) {
	valid := []Order{Relevance, Recency}
	for _, o := range valid {
		if !o.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", o)
		}
	}

	invalid := []Order{"", "score", "newest", "RELEVANCE"}
	for _, o := range invalid {
		if o.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", o)
		}
	}
}

func TestOrDefault(t *testing.T) {
	if got := Order("").OrDefault(); got != Relevance {
		t.Errorf("OrDefault() = %q, want relevance", got)
	}
	if got := Recency.OrDefault(); got != Recency {
		t.Errorf("OrDefault() = %q, want recency", got)
	}
}
