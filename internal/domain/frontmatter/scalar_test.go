package frontmatter

import "testing"

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"true", Bool(true)},
		{" false ", Bool(false)},
		{"True", String("True")},
		{"null", Null()},
		{"", Null()},
		{"   ", Null()},
		{`"quoted"`, String("quoted")},
		{`'single'`, String("single")},
		{`"mismatched'`, String(`"mismatched'`)},
		{`"`, String(`"`)},
		{`""`, String("")},
		{`"a \"b\""`, String(`a \"b\"`)},
		{"42", Number(42)},
		{"-3.5", Number(-3.5)},
		{"+7", Number(7)},
		{".5", Number(0.5)},
		{"5.", Number(5)},
		{"1e3", Number(1000)},
		{"0x1F", Number(31)},
		{"0b101", Number(5)},
		{"0o17", Number(15)},
		{"017", Number(17)},
		{"-0x1F", String("-0x1F")},
		{"Infinity", String("Infinity")},
		{"NaN", String("NaN")},
		{"inf", String("inf")},
		{"1e400", String("1e400")},
		{"1_000", String("1_000")},
		{"12abc", String("12abc")},
		{"hello world", String("hello world")},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseScalar(tc.in); !got.Equal(tc.want) {
				t.Errorf("ParseScalar(%q) = %v %+v, want %v %+v", tc.in, got.Kind(), got, tc.want.Kind(), tc.want)
			}
		})
	}
}

func TestLooseNumber_Empty(t *testing.T) {
	if _, ok := looseNumber(""); ok {
		t.Error("empty string must not be a number")
	}
	if f, ok := looseNumber("  12  "); !ok || f != 12 {
		t.Errorf("padded number: got %v %v", f, ok)
	}
}
