package frontmatter

import (
	"strings"
)

const delimiter = "---"

// Split separates the leading frontmatter block from the rest of the body.
// The block is everything between the opening `---` line and the first
// following `---` line; rest is whatever comes after the closing line.
func Split(body string) (block, rest string, err error) {
	first, after, found := strings.Cut(body, "\n")
	if !isDelimiter(first) {
		return "", "", &FormatError{Reason: "body must start with a --- line"}
	}
	if !found {
		return "", "", &FormatError{Reason: "missing closing --- line"}
	}

	var lines []string
	remaining := after
	for {
		line, next, more := strings.Cut(remaining, "\n")
		if isDelimiter(line) {
			if !more {
				next = ""
			}
			return strings.Join(lines, "\n"), next, nil
		}
		if !more {
			return "", "", &FormatError{Reason: "missing closing --- line"}
		}
		lines = append(lines, line)
		remaining = next
	}
}

// HasBlock reports whether body opens with a frontmatter delimiter line.
func HasBlock(body string) bool {
	first, _, _ := strings.Cut(body, "\n")
	return isDelimiter(first)
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == delimiter
}

// Parse extracts and parses the frontmatter block at the top of body.
func Parse(body string) (Fields, error) {
	block, _, err := Split(body)
	if err != nil {
		return nil, err
	}

	st := lineState{fields: Fields{}}
	if block == "" {
		return st.fields, nil
	}
	for i, line := range strings.Split(block, "\n") {
		// The opening delimiter is body line 1.
		st, err = classifyLine(st, strings.TrimRight(line, "\r"), i+2)
		if err != nil {
			return nil, err
		}
	}
	return st.fields, nil
}

// lineState is the accumulator threaded through the line fold. arrayKey is
// only meaningful while inArray is set.
type lineState struct {
	fields   Fields
	arrayKey string
	inArray  bool
}

func (s lineState) closeArray() lineState {
	s.arrayKey, s.inArray = "", false
	return s
}

// classifyLine applies one block line to the accumulator.
func classifyLine(st lineState, line string, lineNo int) (lineState, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return st.closeArray(), nil
	}

	if strings.HasPrefix(trimmed, "- ") {
		if !st.inArray {
			return st, &FormatError{Line: lineNo, Reason: "list item without a preceding key"}
		}
		item := ParseScalar(trimmed[2:])
		st.fields[st.arrayKey] = st.fields[st.arrayKey].appended(item)
		return st, nil
	}

	if len(line) != len(strings.TrimLeft(line, " \t")) {
		return st, &FormatError{Line: lineNo, Reason: "unexpected indentation"}
	}

	rawKey, rawValue, ok := strings.Cut(line, ":")
	if !ok {
		return st, &FormatError{Line: lineNo, Reason: "unable to parse line " + quote(trimmed)}
	}
	key := strings.TrimSpace(rawKey)
	value := strings.TrimSpace(rawValue)

	switch {
	case value == "":
		st.fields[key] = Sequence()
		st.arrayKey, st.inArray = key, true
		return st, nil
	case strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]"):
		st.fields[key] = parseInlineSequence(value[1 : len(value)-1])
	default:
		st.fields[key] = ParseScalar(value)
	}
	return st.closeArray(), nil
}

// parseInlineSequence parses the inside of `[a, b, c]`. `[]` is empty.
func parseInlineSequence(inner string) Value {
	if strings.TrimSpace(inner) == "" {
		return Sequence()
	}
	parts := strings.Split(inner, ",")
	items := make([]Value, len(parts))
	for i, p := range parts {
		items[i] = ParseScalar(p)
	}
	return Sequence(items...)
}

func quote(s string) string {
	const maxLen = 40
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return `"` + s + `"`
}
