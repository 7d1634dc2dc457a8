// Package report writes the question and answer blocks to the output sinks.
package report

import (
	"fmt"
	"io"

	"bookstats/internal/analysis"
	"bookstats/internal/formatter"
	"bookstats/internal/models"
)

// Delimiter closes every answer block.
const Delimiter = "--------------------------------"

// NoDataText is printed for a question no record qualified for.
const NoDataText = "no data"

// Reporter renders answers and writes them to all sinks at once.
type Reporter struct {
	out   io.Writer
	style formatter.Style
}

// New creates a reporter writing to every sink. Tables use style.
func New(style formatter.Style, sinks ...io.Writer) *Reporter {
	return &Reporter{
		out:   io.MultiWriter(sinks...),
		style: style,
	}
}

// Report answers each question over books, in order.
func (r *Reporter) Report(questions []analysis.Question, books []models.Book) error {
	for _, q := range questions {
		if err := r.WriteBlock(q.Text, q.Solve(books)); err != nil {
			return fmt.Errorf("question %d: %w", q.Number, err)
		}
	}

	return nil
}

// WriteBlock writes one question, its answer and the delimiter.
func (r *Reporter) WriteBlock(question string, answer analysis.Answer) error {
	block := fmt.Sprintf("%s\nAnswer: \n %s\n%s\n", question, r.Render(answer), Delimiter)

	if _, err := io.WriteString(r.out, block); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// Render formats an answer as report text.
func (r *Reporter) Render(a analysis.Answer) string {
	switch a.Kind {
	case analysis.KindScalar:
		return a.Value
	case analysis.KindPair:
		return fmt.Sprintf("(%s, %s)", a.First, a.Second)
	case analysis.KindTable:
		return formatter.FormatTable(r.style, a.Header, a.Rows)
	default:
		return NoDataText
	}
}
