package sfm

import "strconv"

// RangeSentinel marks a line whose verse belongs to the preceding verse's range.
const RangeSentinel = "<range>"

// IDLine returns the book identification marker line.
func IDLine(book string) string {
	return `\id ` + book
}

// ChapterLine returns the chapter marker line.
func ChapterLine(chapter int) string {
	return `\c ` + strconv.Itoa(chapter)
}

// VerseLine returns a verse marker line. When end is greater than verse the
// verse number is written as a range "verse-end".
func VerseLine(verse, end int, text string) string {
	num := strconv.Itoa(verse)
	if end > verse {
		num += "-" + strconv.Itoa(end)
	}
	return `\v ` + num + " " + text
}
