package frontmatter

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func TestValidateAndFill_Defaults(t *testing.T) {
	v, err := ValidateAndFill(Fields{"title": String("  Notes  ")}, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Title != "Notes" {
		t.Errorf("Title = %q", v.Title)
	}
	if v.Status != DefaultStatus {
		t.Errorf("Status = %q, want %q", v.Status, DefaultStatus)
	}
	if v.Updated != fixedNow.UnixMilli() {
		t.Errorf("Updated = %d, want %d", v.Updated, fixedNow.UnixMilli())
	}
	if v.Tags == nil || len(v.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty non-nil slice", v.Tags)
	}
}

func TestValidateAndFill_Title(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
	}{
		{"missing", Fields{}},
		{"number", Fields{"title": Number(3)}},
		{"null", Fields{"title": Null()}},
		{"sequence", Fields{"title": Sequence(String("a"))}},
		{"blank", Fields{"title": String("   ")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateAndFill(tc.fields, fixedNow)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != "title" {
				t.Errorf("Field = %q", ve.Field)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("ValidationError must unwrap to ErrValidation")
			}
		})
	}
}

func TestValidateAndFill_Tags(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want []string
	}{
		{"sequence", Sequence(String(" a "), String(""), String("b")), []string{"a", "b"}},
		{"comma string", String("x, y,,  z "), []string{"x", "y", "z"}},
		{"blank string", String("  "), []string{}},
		{"number", Number(5), []string{}},
		{"bool", Bool(true), []string{}},
		{"absent", Null(), []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ValidateAndFill(Fields{"title": String("T"), "tags": tc.in}, fixedNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(v.Tags, tc.want) {
				t.Errorf("Tags = %#v, want %#v", v.Tags, tc.want)
			}
		})
	}
}

func TestValidateAndFill_NonStringTag(t *testing.T) {
	_, err := ValidateAndFill(Fields{
		"title": String("T"),
		"tags":  Sequence(String("ok"), Number(2024)),
	}, fixedNow)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "tags" {
		t.Fatalf("expected tags ValidationError, got %v", err)
	}
}

func TestValidateAndFill_StatusAndUpdated(t *testing.T) {
	tests := []struct {
		name        string
		status      Value
		updated     Value
		wantStatus  string
		wantUpdated int64
	}{
		{"explicit", String(" published "), Number(1234), "published", 1234},
		{"blank status", String(" "), Null(), DefaultStatus, fixedNow.UnixMilli()},
		{"non-string status", Bool(true), Bool(true), DefaultStatus, fixedNow.UnixMilli()},
		{"numeric string updated", Null(), String("1699999999999"), DefaultStatus, 1699999999999},
		{"garbage updated", Null(), String("yesterday"), DefaultStatus, fixedNow.UnixMilli()},
		{"empty string updated", Null(), String(""), DefaultStatus, fixedNow.UnixMilli()},
		{"huge updated", Null(), Number(1e300), DefaultStatus, fixedNow.UnixMilli()},
		{"huge string updated", Null(), String("1e300"), DefaultStatus, fixedNow.UnixMilli()},
		{"negative huge updated", Null(), Number(-1e19), DefaultStatus, fixedNow.UnixMilli()},
		{"largest safe updated", Null(), Number(1<<53 - 1), DefaultStatus, 1<<53 - 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ValidateAndFill(Fields{
				"title":   String("T"),
				"status":  tc.status,
				"updated": tc.updated,
			}, fixedNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Status != tc.wantStatus {
				t.Errorf("Status = %q, want %q", v.Status, tc.wantStatus)
			}
			if v.Updated != tc.wantUpdated {
				t.Errorf("Updated = %d, want %d", v.Updated, tc.wantUpdated)
			}
		})
	}
}

func TestHugeUpdatedFromParsedBlock(t *testing.T) {
	fields, err := Parse("---\ntitle: X\nupdated: 1e300\n---\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v, err := ValidateAndFill(fields, fixedNow)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if v.Updated != fixedNow.UnixMilli() {
		t.Errorf("Updated = %d, want %d", v.Updated, fixedNow.UnixMilli())
	}
}

func TestEmptyBlockFailsValidation(t *testing.T) {
	fields, err := Parse("---\n---\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := ValidateAndFill(fields, fixedNow); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []Validated{
		{Title: "Meeting Notes", Tags: []string{"work", "weekly sync"}, Status: "draft", Updated: 100},
		{Title: "true", Tags: []string{"42", "null", "[x]"}, Status: "in review", Updated: 5},
		{Title: `"quoted"`, Tags: []string{}, Status: "published", Updated: 1},
		{Title: "ratio: 3:2", Tags: []string{"a,b"}, Status: "draft", Updated: 7},
	}
	for _, want := range cases {
		t.Run(want.Title, func(t *testing.T) {
			fields, err := Parse(Serialize(want) + "body text\n")
			if err != nil {
				t.Fatalf("parse: %v\n%s", err, Serialize(want))
			}
			got, err := ValidateAndFill(fields, fixedNow)
			if err != nil {
				t.Fatalf("validate: %v\n%s", err, Serialize(want))
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip mismatch:\ngot:  %#v\nwant: %#v", got, want)
			}
		})
	}
}
