// Package frontmatter parses and validates the metadata block at the top of a
// Markdown document body.
//
// The grammar is a small YAML-like subset: `key: scalar`, `key: [a, b]`, and a
// `key:` line followed by `- item` lines. Anything else inside the block is a
// format error.
package frontmatter

import (
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindSequence:
		return "sequence"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a parsed frontmatter value: string, number, bool, null or an
// ordered sequence of those.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	seq  []Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Sequence returns a sequence holding a copy of items.
func Sequence(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)
	return Value{kind: KindSequence, seq: seq}
}

// Kind returns the variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the numeric payload and whether v is a number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the boolean payload and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsSequence returns the items and whether v is a sequence.
// The returned slice must not be modified.
func (v Value) AsSequence() ([]Value, bool) { return v.seq, v.kind == KindSequence }

// Equal reports deep equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num || (math.IsNaN(v.num) && math.IsNaN(o.num))
	case KindBool:
		return v.b == o.b
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// appended returns a sequence with item added at the end. Non-sequences are
// treated as empty.
func (v Value) appended(item Value) Value {
	seq := make([]Value, len(v.seq), len(v.seq)+1)
	copy(seq, v.seq)
	return Value{kind: KindSequence, seq: append(seq, item)}
}

// Fields is a parsed frontmatter block keyed by field name.
type Fields map[string]Value
