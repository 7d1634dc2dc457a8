// Package validator checks the ISBN input list before it is looked up.
package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationIssue describes one suspicious input line.
type ValidationIssue struct {
	Line    int
	Value   string
	Message string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Issues  []ValidationIssue
	Stats   ValidationStats
	IsValid bool
}

// ValidationStats counts input lines by kind.
type ValidationStats struct {
	TotalLines int
	ISBN10     int
	ISBN13     int
	Blank      int
	Invalid    int
	Duplicates int
}

// String returns a one-line summary of the stats.
func (s ValidationStats) String() string {
	return fmt.Sprintf("%d lines: %d ISBN-10, %d ISBN-13, %d blank, %d invalid, %d duplicate",
		s.TotalLines, s.ISBN10, s.ISBN13, s.Blank, s.Invalid, s.Duplicates)
}

// ISBNValidator validates ISBN-10 and ISBN-13 identifiers.
type ISBNValidator struct {
	separators *regexp.Regexp
	isbn10     *regexp.Regexp
	isbn13     *regexp.Regexp
}

// NewISBNValidator creates a new validator.
func NewISBNValidator() *ISBNValidator {
	return &ISBNValidator{
		separators: regexp.MustCompile(`[\s-]`),
		isbn10:     regexp.MustCompile(`^\d{9}[\dXx]$`),
		isbn13:     regexp.MustCompile(`^97[89]\d{10}$`),
	}
}

// ValidateList checks every identifier. Issues are advisory: every line is
// still looked up, so a bad line only costs one failed request.
func (v *ISBNValidator) ValidateList(isbns []string) *ValidationResult {
	result := &ValidationResult{
		IsValid: true,
		Issues:  []ValidationIssue{},
	}

	seen := make(map[string]int, len(isbns))

	for i, raw := range isbns {
		line := i + 1
		result.Stats.TotalLines++

		if raw == "" {
			result.Stats.Blank++
			result.IsValid = false
			result.Issues = append(result.Issues, ValidationIssue{Line: line, Message: "blank line"})

			continue
		}

		isbn := v.separators.ReplaceAllString(raw, "")

		if first, dup := seen[isbn]; dup {
			result.Stats.Duplicates++
			result.Issues = append(result.Issues, ValidationIssue{
				Line:    line,
				Value:   raw,
				Message: fmt.Sprintf("duplicate of line %d", first),
			})
		} else {
			seen[isbn] = line
		}

		if msg := v.check(isbn); msg != "" {
			result.Stats.Invalid++
			result.IsValid = false
			result.Issues = append(result.Issues, ValidationIssue{Line: line, Value: raw, Message: msg})

			continue
		}

		if len(isbn) == 10 {
			result.Stats.ISBN10++
		} else {
			result.Stats.ISBN13++
		}
	}

	return result
}

// check returns why isbn is not a valid ISBN, or "" when it is.
func (v *ISBNValidator) check(isbn string) string {
	switch {
	case v.isbn10.MatchString(isbn):
		if !validISBN10(isbn) {
			return "ISBN-10 check digit mismatch"
		}
	case v.isbn13.MatchString(isbn):
		if !validISBN13(isbn) {
			return "ISBN-13 check digit mismatch"
		}
	default:
		return "not an ISBN-10 or ISBN-13"
	}

	return ""
}

func validISBN10(isbn string) bool {
	sum := 0

	for i, c := range strings.ToUpper(isbn) {
		d := int(c - '0')
		if c == 'X' {
			d = 10
		}

		sum += (10 - i) * d
	}

	return sum%11 == 0
}

func validISBN13(isbn string) bool {
	sum := 0

	for i, c := range isbn {
		d := int(c - '0')
		if i%2 == 1 {
			d *= 3
		}

		sum += d
	}

	return sum%10 == 0
}
