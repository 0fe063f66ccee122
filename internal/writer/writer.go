// Package writer writes converted books to SFM files.
package writer

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/vref2sfm/core/errors"
	"github.com/FocuswithJustin/vref2sfm/core/sfm"
	"github.com/FocuswithJustin/vref2sfm/core/vref"
)

// File describes one written book file.
type File struct {
	Book      string `json:"book"`
	Name      string `json:"name"`
	Path      string `json:"-"`
	SizeBytes int64  `json:"size_bytes"`
	BLAKE3    string `json:"blake3"`
}

// Filename returns the output filename for a book.
//
// Without a project ID the name is "{BOOK}.sfm". With one it is
// "{NN}{BOOK}{ID}.SFM" where NN is the two-digit canonical book number,
// "00" for books outside the canonical 66.
func Filename(book, projectID string) string {
	if projectID == "" {
		return book + ".sfm"
	}
	return fmt.Sprintf("%02d%s%s.SFM", vref.BookNumber(book), book, projectID)
}

// Dir returns the directory files are written into: outputDir, or its
// projectID subdirectory when a project ID is given.
func Dir(outputDir, projectID string) string {
	if projectID == "" {
		return outputDir
	}
	return filepath.Join(outputDir, projectID)
}

// WriteBooks creates the output directory and writes one file per book in
// books order. Existing files with the same name are replaced.
func WriteBooks(ctx context.Context, books sfm.Books, outputDir, projectID string) ([]File, error) {
	dir := Dir(outputDir, projectID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.NewIO("create directory", dir, err)
	}

	files := make([]File, 0, books.Len())
	for _, book := range books.Codes() {
		if err := ctx.Err(); err != nil {
			return files, err
		}

		data := books.Content(book)
		name := Filename(book, projectID)
		path := filepath.Join(dir, name)
		if err := writeAtomic(dir, path, data); err != nil {
			return files, err
		}

		files = append(files, File{
			Book:      book,
			Name:      name,
			Path:      path,
			SizeBytes: int64(len(data)),
			BLAKE3:    Digest(data),
		})
	}

	return files, nil
}

// Digest returns the hex BLAKE3 digest of data.
func Digest(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// writeAtomic writes data to a temp file in dir and renames it over path.
func writeAtomic(dir, path string, data []byte) error {
	tempFile, err := os.CreateTemp(dir, ".sfm-*")
	if err != nil {
		return errors.NewIO("create temp file in", dir, err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return errors.NewIO("write", path, err)
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return errors.NewIO("close", path, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return errors.NewIO("chmod", path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.NewIO("rename", path, err)
	}

	return nil
}
