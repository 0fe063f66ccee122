package vref

import (
	"errors"
	"strings"
	"testing"

	vrerrors "github.com/FocuswithJustin/vref2sfm/core/errors"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		input    string
		expected Ref
		wantErr  bool
	}{
		{input: "GEN 1:1", expected: Ref{Book: "GEN", Chapter: 1, Verse: 1}},
		{input: "REV 22:21", expected: Ref{Book: "REV", Chapter: 22, Verse: 21}},
		// Numeric book prefix
		{input: "1SA 3:4", expected: Ref{Book: "1SA", Chapter: 3, Verse: 4}},
		{input: "3JN 1:15", expected: Ref{Book: "3JN", Chapter: 1, Verse: 15}},
		// Surrounding whitespace and tabs
		{input: "  MAT 5:3  ", expected: Ref{Book: "MAT", Chapter: 5, Verse: 3}},
		{input: "PSA\t119:176", expected: Ref{Book: "PSA", Chapter: 119, Verse: 176}},
		// Trailing content is ignored
		{input: "GEN 1:1 extra", expected: Ref{Book: "GEN", Chapter: 1, Verse: 1}},
		{input: "GEN 1:1-3", expected: Ref{Book: "GEN", Chapter: 1, Verse: 1}},
		{input: "GEN 1:1a", expected: Ref{Book: "GEN", Chapter: 1, Verse: 1}},
		// Leading zeros are decimal
		{input: "GEN 1:08", expected: Ref{Book: "GEN", Chapter: 1, Verse: 8}},
		{input: "GEN 01:010", expected: Ref{Book: "GEN", Chapter: 1, Verse: 10}},
		{input: "PSA 009:0019", expected: Ref{Book: "PSA", Chapter: 9, Verse: 19}},
		// Unknown codes are not rejected
		{input: "XYZ 2:7", expected: Ref{Book: "XYZ", Chapter: 2, Verse: 7}},
		// Errors
		{input: "", wantErr: true},
		{input: "   ", wantErr: true},
		{input: "GEN1:1", wantErr: true},
		{input: "GEN 1", wantErr: true},
		{input: "GEN a:1", wantErr: true},
		{input: "GEN 1:", wantErr: true},
		{input: "GEN 1.1", wantErr: true},
		{input: "1 SA 1:1", wantErr: true},
		{input: ":1 1:1", wantErr: true},
		{input: "GEN 99999999999999999999:1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLine(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLine(%q) expected error, got %+v", tt.input, got)
				}
				if !errors.Is(err, vrerrors.ErrInvalidInput) {
					t.Errorf("ParseLine(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseLineErrorReportsLine(t *testing.T) {
	_, err := ParseLine("GEN1:1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"GEN1:1"`) {
		t.Errorf("error %q does not quote the offending line", err.Error())
	}
}

func TestRefString(t *testing.T) {
	ref := Ref{Book: "JHN", Chapter: 3, Verse: 16}
	if got := ref.String(); got != "JHN 3:16" {
		t.Errorf("String() = %q, want %q", got, "JHN 3:16")
	}

	parsed, err := ParseLine(ref.String())
	if err != nil {
		t.Fatalf("ParseLine(String()) failed: %v", err)
	}
	if parsed != ref {
		t.Errorf("ParseLine(String()) = %+v, want %+v", parsed, ref)
	}
}

func TestSameChapter(t *testing.T) {
	a := Ref{Book: "GEN", Chapter: 1, Verse: 1}
	tests := []struct {
		other Ref
		want  bool
	}{
		{Ref{Book: "GEN", Chapter: 1, Verse: 9}, true},
		{Ref{Book: "GEN", Chapter: 2, Verse: 1}, false},
		{Ref{Book: "EXO", Chapter: 1, Verse: 1}, false},
	}
	for _, tt := range tests {
		if got := a.SameChapter(tt.other); got != tt.want {
			t.Errorf("SameChapter(%v) = %v, want %v", tt.other, got, tt.want)
		}
	}
}

func TestRead(t *testing.T) {
	input := "GEN 1:1\n\nGEN 1:2\r\n   \nGEN 1:3\n"
	refs, err := Read(strings.NewReader(input), "vref.txt")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := []Ref{
		{Book: "GEN", Chapter: 1, Verse: 1},
		{Book: "GEN", Chapter: 1, Verse: 2},
		{Book: "GEN", Chapter: 1, Verse: 3},
	}
	if len(refs) != len(want) {
		t.Fatalf("Read returned %d refs, want %d", len(refs), len(want))
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("refs[%d] = %+v, want %+v", i, refs[i], want[i])
		}
	}
}

func TestReadLoneCR(t *testing.T) {
	refs, err := Read(strings.NewReader("GEN 1:1\rGEN 1:2\r\rGEN 1:3"), "vref.txt")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(refs) != 3 || refs[2] != (Ref{Book: "GEN", Chapter: 1, Verse: 3}) {
		t.Errorf("Read() = %+v, want GEN 1:1 through GEN 1:3", refs)
	}
}

func TestReadEmpty(t *testing.T) {
	refs, err := Read(strings.NewReader(""), "vref.txt")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("Read returned %d refs, want 0", len(refs))
	}
}

func TestReadMalformed(t *testing.T) {
	input := "GEN 1:1\n\nnot a reference\nGEN 1:3\n"
	_, err := Read(strings.NewReader(input), "vref.txt")
	if err == nil {
		t.Fatal("expected error for malformed line")
	}

	var perr *vrerrors.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not a ParseError", err)
	}
	if perr.Path != "vref.txt" {
		t.Errorf("Path = %q, want vref.txt", perr.Path)
	}
	if perr.Line != 3 {
		t.Errorf("Line = %d, want 3", perr.Line)
	}
	if perr.Format != "vref" {
		t.Errorf("Format = %q, want vref", perr.Format)
	}
}
