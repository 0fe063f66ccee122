// Package corpus reads the vref index and aligned text files from disk.
// Files ending in .xz are decompressed transparently.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/vref2sfm/core/errors"
	"github.com/FocuswithJustin/vref2sfm/core/vref"
)

// XZSuffix selects xz decompression for an input path.
const XZSuffix = ".xz"

// file wraps an opened input with its optional decompressor.
type file struct {
	io.Reader
	f *os.File
}

func (r *file) Close() error {
	return r.f.Close()
}

// Open opens an input file for reading, decompressing it when the path ends in .xz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = fmt.Errorf("%w: %w", errors.ErrNotFound, err)
		}
		return nil, errors.NewIO("open", path, err)
	}

	if !strings.HasSuffix(strings.ToLower(path), XZSuffix) {
		return f, nil
	}

	xzr, err := xz.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, errors.NewIO("decompress", path, err)
	}
	return &file{Reader: xzr, f: f}, nil
}

// ReadRefs loads every reference from a vref file. Blank lines are skipped.
func ReadRefs(path string) ([]vref.Ref, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return vref.Read(r, path)
}

// ReadTexts loads every line of an aligned text file, blank lines included,
// with line terminators removed.
func ReadTexts(path string) ([]string, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadLines(r, path)
}

// ReadLines splits r into lines ended by "\n", "\r\n" or a lone "\r".
// A final line without a terminator is kept; a trailing terminator does not
// produce an extra empty line.
func ReadLines(r io.Reader, name string) ([]string, error) {
	var lines []string

	scanner := vref.NewLineScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", name, err)
	}

	return lines, nil
}
