// Package validation checks user-supplied paths and identifiers before any
// input is read or output directory is created.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Limits on user-supplied values.
const (
	// MaxFilenameLength is the maximum allowed filename length.
	MaxFilenameLength = 255
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
	// MaxProjectIDLength leaves room in a filename for the book number,
	// book code and ".SFM" suffix.
	MaxProjectIDLength = MaxFilenameLength - 16
)

// Common validation errors.
var (
	ErrInvalidFilename  = errors.New("invalid filename")
	ErrPathTooLong      = errors.New("path too long")
	ErrFilenameTooLong  = errors.New("filename too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrInvalidBookCode  = errors.New("invalid book code")
)

// bookCodePattern matches the word characters a vref book code may contain.
var bookCodePattern = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_]+$`)

// ValidateFilename checks if a filename is safe and does not contain malicious characters.
// It rejects filenames with path separators, control characters, and dangerous patterns.
func ValidateFilename(filename string) error {
	if filename == "" {
		return ErrInvalidFilename
	}

	if len(filename) > MaxFilenameLength {
		return ErrFilenameTooLong
	}

	if filename == "." || filename == ".." {
		return fmt.Errorf("%w: reserved name", ErrInvalidFilename)
	}

	if strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("%w: path separator not allowed", ErrInvalidFilename)
	}

	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidFilename)
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidFilename)
		}
	}

	// Reject filenames starting with hyphen (can be confused with command flags)
	if strings.HasPrefix(filename, "-") {
		return fmt.Errorf("%w: filename cannot start with hyphen", ErrInvalidFilename)
	}

	return nil
}

// ValidatePath checks a path for length limits and invalid characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ValidateProjectID checks a project identifier. The identifier names the
// output subdirectory and is embedded in every output filename.
func ValidateProjectID(id string) error {
	if len(id) > MaxProjectIDLength {
		return ErrFilenameTooLong
	}
	if strings.TrimSpace(id) != id {
		return fmt.Errorf("%w: leading or trailing whitespace", ErrInvalidFilename)
	}
	return ValidateFilename(id)
}

// NormalizeBookCode upper-cases a book filter and checks that it could match
// a vref book code.
func NormalizeBookCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !bookCodePattern.MatchString(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidBookCode, code)
	}
	return code, nil
}
