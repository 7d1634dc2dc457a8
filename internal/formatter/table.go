// Package formatter renders tabular answers as aligned text.
package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style selects how a table is drawn.
type Style string

// Supported table styles.
const (
	StylePlain    Style = "plain"
	StyleMarkdown Style = "markdown"
)

// ErrUnknownStyle is returned for a style name that is not supported.
var ErrUnknownStyle = errors.New("unknown table style")

// ParseStyle validates a style name from configuration.
func ParseStyle(name string) (Style, error) {
	switch Style(name) {
	case StylePlain, StyleMarkdown:
		return Style(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// FormatTable renders header and rows in the given style. Column widths are
// measured in display cells, so wide and combining characters line up.
func FormatTable(style Style, header []string, rows [][]string) string {
	table := append([][]string{header}, rows...)
	widths := columnWidths(table)

	if style == StyleMarkdown {
		return strings.Join(markdownLines(table, widths), "\n")
	}

	return strings.Join(plainLines(table, widths), "\n")
}

func columnWidths(table [][]string) []int {
	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	widths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

// plainLines right-aligns every cell and separates columns with one space.
func plainLines(table [][]string, widths []int) []string {
	lines := make([]string, 0, len(table))

	for _, row := range table {
		cells := make([]string, len(widths))

		for j, w := range widths {
			content := ""
			if j < len(row) {
				content = row[j]
			}

			cells[j] = strings.Repeat(" ", w-runewidth.StringWidth(content)) + content
		}

		lines = append(lines, strings.Join(cells, " "))
	}

	return lines
}

// markdownLines draws a pipe table with a separator row under the header.
func markdownLines(table [][]string, widths []int) []string {
	// Separator needs at least three dashes.
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	lines := make([]string, 0, len(table)+1)

	for i, row := range table {
		lines = append(lines, markdownRow(row, widths))

		if i == 0 {
			sep := make([]string, len(widths))
			for j, w := range widths {
				sep[j] = strings.Repeat("-", w)
			}

			lines = append(lines, markdownRow(sep, widths))
		}
	}

	return lines
}

func markdownRow(row []string, widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, w := range widths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		if padding := w - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
