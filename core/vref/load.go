package vref

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strings"

	"github.com/FocuswithJustin/vref2sfm/core/errors"
)

// NewLineScanner returns a scanner over r that splits lines with ScanLines
// and places no limit on line length.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(ScanLines)
	return scanner
}

// ScanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a lone "\r".
// Terminators are not part of the returned line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing \r may be the first half of \r\n.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Read parses every non-blank line of r as a vref line.
// Blank lines are skipped and not counted. name is used in error messages.
func Read(r io.Reader, name string) ([]Ref, error) {
	var refs []Ref

	scanner := NewLineScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		ref, err := ParseLine(line)
		if err != nil {
			var perr *errors.ParseError
			if errors.As(err, &perr) {
				perr.Path = name
				perr.Line = lineNo
			}
			return nil, err
		}
		refs = append(refs, ref)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", name, err)
	}

	return refs, nil
}
