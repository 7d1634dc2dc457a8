package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// Clean returns the NFC form of str without surrounding whitespace.
// Catalog records mix composed and decomposed accents for the same name.
func (s *StringHelper) Clean(str string) string {
	return strings.TrimSpace(norm.NFC.String(str))
}
