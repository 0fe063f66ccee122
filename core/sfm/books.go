package sfm

import "strings"

// Books holds the marker lines of each converted book, keyed by book code.
// Codes iterate in the order their first line was emitted.
type Books struct {
	order []string
	lines map[string][]string
}

// Len returns the number of books.
func (b Books) Len() int {
	return len(b.order)
}

// Codes returns the book codes in emission order.
func (b Books) Codes() []string {
	return append([]string(nil), b.order...)
}

// Lines returns a copy of the marker lines for a book, or nil if the book is absent.
func (b Books) Lines(code string) []string {
	lines, ok := b.lines[code]
	if !ok {
		return nil
	}
	return append([]string(nil), lines...)
}

// Has reports whether the book produced any output.
func (b Books) Has(code string) bool {
	_, ok := b.lines[code]
	return ok
}

// Content returns the book's file content: lines joined by newlines with a
// trailing newline.
func (b Books) Content(code string) []byte {
	lines, ok := b.lines[code]
	if !ok {
		return nil
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func (b *Books) add(code, line string) {
	if b.lines == nil {
		b.lines = make(map[string][]string)
	}
	if _, ok := b.lines[code]; !ok {
		b.order = append(b.order, code)
	}
	b.lines[code] = append(b.lines[code], line)
}
