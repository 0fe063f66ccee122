// Package sfm converts vref-aligned verse text into SFM marker lines.
//
// The input is two parallel sequences: verse references and verse texts,
// associated purely by position. Convert walks them once, front to back,
// and emits \id, \c and \v lines per book. A text of "<range>" marks a verse
// folded into the preceding verse, which is then written as "\v 1-3 text".
package sfm

import (
	"strings"

	"github.com/FocuswithJustin/vref2sfm/core/errors"
	"github.com/FocuswithJustin/vref2sfm/core/vref"
)

// Options controls a conversion.
type Options struct {
	// Book restricts output to a single book code. Empty converts every book.
	Book string

	// Normalize applies a Unicode normalization form to emitted verse text.
	Normalize Normalization
}

// Convert groups aligned references and texts into per-book marker lines.
//
// Empty texts and range sentinels are never emitted as verses of their own.
// A verse followed by sentinels in the same book and chapter absorbs their
// verse numbers into a range. refs and texts must have equal length;
// otherwise nothing is converted and a LengthMismatchError is returned.
func Convert(refs []vref.Ref, texts []string, opts Options) (Books, error) {
	if len(refs) != len(texts) {
		return Books{}, errors.NewLengthMismatch(len(refs), len(texts))
	}

	var (
		books          Books
		currentBook    string
		currentChapter int
		inBook         bool
		inChapter      bool
	)

	for i, ref := range refs {
		if opts.Book != "" && ref.Book != opts.Book {
			continue
		}

		text := strings.TrimSpace(texts[i])
		if text == "" || text == RangeSentinel {
			continue
		}

		if !inBook || ref.Book != currentBook {
			currentBook = ref.Book
			inBook = true
			inChapter = false
			books.add(ref.Book, IDLine(ref.Book))
		}

		if !inChapter || ref.Chapter != currentChapter {
			currentChapter = ref.Chapter
			inChapter = true
			books.add(ref.Book, ChapterLine(ref.Chapter))
		}

		books.add(ref.Book, VerseLine(ref.Verse, rangeEnd(refs, texts, i), opts.Normalize.apply(text)))
	}

	return books, nil
}

// rangeEnd returns the last verse number covered by the verse at index i:
// the verse of the final consecutive range sentinel following i in the same
// book and chapter, or the verse at i itself when none follow.
func rangeEnd(refs []vref.Ref, texts []string, i int) int {
	end := refs[i].Verse
	for j := i + 1; j < len(refs); j++ {
		if !refs[j].SameChapter(refs[i]) || strings.TrimSpace(texts[j]) != RangeSentinel {
			break
		}
		end = refs[j].Verse
	}
	return end
}
