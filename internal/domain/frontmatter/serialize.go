package frontmatter

import (
	"strconv"
	"strings"
)

// Serialize renders v as a canonical frontmatter block, delimiters included.
// Strings that would otherwise be coerced to another kind are double-quoted.
func Serialize(v Validated) string {
	var b strings.Builder
	b.WriteString(delimiter + "\n")
	b.WriteString("title: " + serializeString(v.Title) + "\n")
	b.WriteString("status: " + serializeString(v.Status) + "\n")
	b.WriteString("updated: " + strconv.FormatInt(v.Updated, 10) + "\n")
	if len(v.Tags) == 0 {
		b.WriteString("tags: []\n")
	} else {
		b.WriteString("tags:\n")
		for _, t := range v.Tags {
			b.WriteString("- " + serializeString(t) + "\n")
		}
	}
	b.WriteString(delimiter + "\n")
	return b.String()
}

func serializeString(s string) string {
	if s != strings.TrimSpace(s) {
		return `"` + s + `"`
	}
	if parsed, ok := ParseScalar(s).AsString(); ok && parsed == s && !strings.HasPrefix(s, "[") {
		return s
	}
	return `"` + s + `"`
}
