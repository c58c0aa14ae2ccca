package frontmatter

import (
	"math"
	"strings"
	"time"
)

// DefaultStatus is used when the block has no usable status.
const DefaultStatus = "draft"

// Validated is the normalized projection of a frontmatter block that the
// write path merges into the stored document.
type Validated struct {
	Title   string
	Tags    []string
	Status  string
	Updated int64 // ms since epoch
}

// ValidateAndFill checks required fields and fills defaults. now supplies the
// fallback for updated.
func ValidateAndFill(fields Fields, now time.Time) (Validated, error) {
	title, err := validateTitle(fields)
	if err != nil {
		return Validated{}, err
	}
	tags, err := normalizeTags(fields["tags"])
	if err != nil {
		return Validated{}, err
	}

	return Validated{
		Title:   title,
		Tags:    tags,
		Status:  normalizeStatus(fields["status"]),
		Updated: normalizeUpdated(fields["updated"], now),
	}, nil
}

func validateTitle(fields Fields) (string, error) {
	v, ok := fields["title"]
	if !ok {
		return "", &ValidationError{Field: "title", Reason: "is required"}
	}
	s, isString := v.AsString()
	if !isString {
		return "", &ValidationError{Field: "title", Reason: "must be a string, got " + v.Kind().String()}
	}
	title := strings.TrimSpace(s)
	if title == "" {
		return "", &ValidationError{Field: "title", Reason: "must not be blank"}
	}
	return title, nil
}

func normalizeTags(v Value) ([]string, error) {
	if items, ok := v.AsSequence(); ok {
		tags := make([]string, 0, len(items))
		for _, item := range items {
			s, isString := item.AsString()
			if !isString {
				return nil, &ValidationError{
					Field:  "tags",
					Reason: "must contain only strings, got " + item.Kind().String(),
				}
			}
			tags = appendTrimmed(tags, s)
		}
		return tags, nil
	}
	if s, ok := v.AsString(); ok {
		var tags []string
		for _, part := range strings.Split(s, ",") {
			tags = appendTrimmed(tags, part)
		}
		if tags == nil {
			tags = []string{}
		}
		return tags, nil
	}
	return []string{}, nil
}

func appendTrimmed(dst []string, s string) []string {
	if t := strings.TrimSpace(s); t != "" {
		return append(dst, t)
	}
	return dst
}

func normalizeStatus(v Value) string {
	if s, ok := v.AsString(); ok {
		if t := strings.TrimSpace(s); t != "" {
			return t
		}
	}
	return DefaultStatus
}

// maxSafeTimestamp bounds updated to integers a float64 represents exactly.
const maxSafeTimestamp = 1<<53 - 1

func normalizeUpdated(v Value, now time.Time) int64 {
	if f, ok := v.AsNumber(); ok && safeTimestamp(f) {
		return int64(f)
	}
	if s, ok := v.AsString(); ok {
		if f, isNum := looseNumber(s); isNum && safeTimestamp(f) {
			return int64(f)
		}
	}
	return now.UnixMilli()
}

func safeTimestamp(f float64) bool {
	return !math.IsNaN(f) && math.Abs(f) <= maxSafeTimestamp
}
