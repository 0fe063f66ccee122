package sfm

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/FocuswithJustin/vref2sfm/core/errors"
)

// Normalization selects an optional Unicode normalization form for verse text.
type Normalization string

const (
	// NormalizeNone leaves verse text untouched.
	NormalizeNone Normalization = "none"
	// NormalizeNFC composes verse text.
	NormalizeNFC Normalization = "nfc"
	// NormalizeNFD decomposes verse text.
	NormalizeNFD Normalization = "nfd"
)

// ParseNormalization parses a normalization name. The empty string means none.
func ParseNormalization(s string) (Normalization, error) {
	switch n := Normalization(strings.ToLower(strings.TrimSpace(s))); n {
	case "", NormalizeNone:
		return NormalizeNone, nil
	case NormalizeNFC, NormalizeNFD:
		return n, nil
	}
	return "", errors.NewValidation("normalize", s, "must be one of none, nfc, nfd")
}

func (n Normalization) apply(s string) string {
	switch n {
	case NormalizeNFC:
		return norm.NFC.String(s)
	case NormalizeNFD:
		return norm.NFD.String(s)
	}
	return s
}
