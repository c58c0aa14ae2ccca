package rank

import (
	"strings"
	"unicode"
)

// Field weights.
const (
	slugExact     = 100
	slugPrefix    = 60
	slugContains  = 30
	titleExact    = 50
	titlePrefix   = 25
	titleContains = 10
	tagExact      = 15
	tagContains   = 10
	matchBonus    = 5
)

// tokenize lowercases q and splits it on runs of whitespace and hyphens.
// Duplicate tokens are kept.
func tokenize(q string) []string {
	return strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
}

// fields holds the lowercased match targets of one document.
type fields struct {
	slug  string
	title string
	tags  []string
}

func newFields(d Document) fields {
	tags := make([]string, len(d.Tags))
	for i, t := range d.Tags {
		tags[i] = strings.ToLower(t)
	}
	return fields{
		slug:  strings.ToLower(d.CompoundSlug()),
		title: strings.ToLower(d.Title),
		tags:  tags,
	}
}

// matchText scores one field with the first rule that applies.
func matchText(field, token string, exact, prefix, contains int) int {
	switch {
	case field == token:
		return exact
	case strings.HasPrefix(field, token):
		return prefix
	case strings.Contains(field, token):
		return contains
	default:
		return 0
	}
}

// matchTags adds a tag score once: an exact tag anywhere beats a substring hit.
func matchTags(tags []string, token string) int {
	best := 0
	for _, t := range tags {
		if t == token {
			return tagExact
		}
		if strings.Contains(t, token) {
			best = tagContains
		}
	}
	return best
}

// tokenScore is the additive score of one token over all fields, including
// the match bonus. Zero means the token matched nothing.
func (f fields) tokenScore(token string) int {
	s := matchText(f.slug, token, slugExact, slugPrefix, slugContains) +
		matchText(f.title, token, titleExact, titlePrefix, titleContains) +
		matchTags(f.tags, token)
	if s == 0 {
		return 0
	}
	return s + matchBonus
}
