package frontmatter

import (
	"math"
	"strconv"
	"strings"
)

// ParseScalar coerces a raw value into a typed Value.
//
// true/false become booleans, "null" and the empty string become null, a
// matching pair of single or double quotes is stripped verbatim (no escape
// processing), finite numbers become numbers and everything else stays the
// trimmed string.
func ParseScalar(raw string) Value {
	s := strings.TrimSpace(raw)
	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null", "":
		return Null()
	}
	if isQuoted(s) {
		return String(s[1 : len(s)-1])
	}
	if f, ok := looseNumber(s); ok {
		return Number(f)
	}
	return String(s)
}

func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return (first == '"' || first == '\'') && first == last
}

// looseNumber parses s the way a dynamic language's Number() would: surrounding
// whitespace is ignored, decimal and exponent forms are accepted, unsigned
// 0x/0o/0b integer literals are accepted, and only finite results count.
// An empty (or all-space) string is not a number.
func looseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			n, err := strconv.ParseUint(s, 0, 64)
			if err != nil || strings.Contains(s, "_") {
				return 0, false
			}
			return float64(n), true
		}
	}

	// ParseFloat also understands "inf", "nan" and hex floats; only plain
	// decimal notation is a number here.
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == 'e', r == 'E', r == '+', r == '-':
		default:
			return 0, false
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
