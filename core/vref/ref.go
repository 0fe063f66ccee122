// Package vref parses verse reference (vref) index files.
//
// A vref file lists one reference per line in the form "GEN 1:1". Line N of
// a vref file names the verse carried by line N of every aligned text file.
package vref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/vref2sfm/core/errors"
)

// Ref is a single book/chapter/verse reference.
type Ref struct {
	// Book is the book code as written in the vref file (e.g., "GEN", "1SA").
	Book string `json:"book"`

	// Chapter is the chapter number.
	Chapter int `json:"chapter"`

	// Verse is the verse number.
	Verse int `json:"verse"`
}

// String returns the reference in vref form, e.g. "GEN 1:1".
func (r Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Book)
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(r.Chapter))
	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(r.Verse))
	return sb.String()
}

// SameChapter reports whether r and other are in the same book and chapter.
func (r Ref) SameChapter(other Ref) bool {
	return r.Book == other.Book && r.Chapter == other.Chapter
}

// lineGrammar is the participle grammar for a vref line.
// Examples: "GEN 1:1", "1SA 3:4", "MAT 5:3 trailing text is ignored"
//
//nolint:govet // participle grammar tags are not standard struct tags
type lineGrammar struct {
	Book    string `parser:"@(Int | Ident)+"`
	Gap     string `parser:"@Whitespace"`
	Chapter string `parser:"@Int \":\""`
	Verse   string `parser:"@Int"`
}

// lineLexer keeps whitespace as a token so "1 SA 1:1" is not read as "1SA".
// Int is listed before Ident so digit runs lex as Int.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[\p{L}\p{M}\p{N}_]+`},
	{Name: "Punct", Pattern: `[^\s\p{L}\p{M}\p{N}_]`},
})

var lineParser = participle.MustBuild[lineGrammar](
	participle.Lexer(lineLexer),
)

// ParseLine parses a single vref line such as "GEN 1:1".
// Surrounding whitespace is ignored, as is anything after the verse number.
func ParseLine(line string) (Ref, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return Ref{}, errors.NewParse("vref", "", 0, "empty vref line")
	}

	// Only a prefix has to match; anything after the verse number is ignored.
	parsed, err := lineParser.ParseString("", s, participle.AllowTrailing(true))
	if err != nil {
		return Ref{}, invalidLine(line, err)
	}

	// Numbers are decimal even with leading zeros ("GEN 01:010" is 1:10).
	chapter, err := strconv.Atoi(parsed.Chapter)
	if err != nil {
		return Ref{}, invalidLine(line, err)
	}
	verse, err := strconv.Atoi(parsed.Verse)
	if err != nil {
		return Ref{}, invalidLine(line, err)
	}

	return Ref{
		Book:    parsed.Book,
		Chapter: chapter,
		Verse:   verse,
	}, nil
}

func invalidLine(line string, err error) *errors.ParseError {
	perr := errors.NewParse("vref", "", 0, fmt.Sprintf("invalid vref line: %q", line))
	perr.Err = fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
	return perr
}
