package document

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxSlugLen   = 60
	fallbackSlug = "untitled"
	suffixLen    = 8
	maxAttempts  = 16
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug lowercases title, strips accents and collapses everything that
// is not [a-z0-9] into single hyphens.
func GenerateSlug(title string) string {
	stripAccents := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(stripAccents, strings.ToLower(title))
	if err != nil {
		folded = strings.ToLower(title)
	}
	slug := strings.Trim(nonSlugRun.ReplaceAllString(folded, "-"), "-")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		return fallbackSlug
	}
	return slug
}

// NewSuffix returns an 8-character hex suffix not present in existing.
func NewSuffix(existing []string) string {
	return newSuffix(existing, randomSuffix)
}

func newSuffix(existing []string, gen func() string) string {
	s := gen()
	for range maxAttempts {
		if !slices.Contains(existing, s) {
			return s
		}
		s = gen()
	}
	// Exhausted: widen the suffix instead of looping forever.
	return s + gen()
}

func randomSuffix() string {
	id, err := uuid.NewRandom()
	if err != nil {
		var b [suffixLen / 2]byte
		_, _ = rand.Read(b[:])
		return hex.EncodeToString(b[:])
	}
	return strings.ReplaceAll(id.String(), "-", "")[:suffixLen]
}
