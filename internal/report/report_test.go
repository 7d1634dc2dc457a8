package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstats/internal/analysis"
	"bookstats/internal/formatter"
	"bookstats/internal/models"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestReporter_WriteBlock(t *testing.T) {
	var buf bytes.Buffer

	r := New(formatter.StylePlain, &buf)
	require.NoError(t, r.WriteBlock("1. How many different books are in the list?", analysis.Count(3)))

	expected := "1. How many different books are in the list?\n" +
		"Answer: \n" +
		" 3\n" +
		"--------------------------------\n"
	assert.Equal(t, expected, buf.String())
}

func TestReporter_Render(t *testing.T) {
	r := New(formatter.StylePlain)

	assert.Equal(t, "Dune", r.Render(analysis.Scalar("Dune")))
	assert.Equal(t, "(Ace, Frank Herbert)", r.Render(analysis.Pair("Ace", "Frank Herbert")))
	assert.Equal(t, NoDataText, r.Render(analysis.NoData()))
	assert.Equal(t, "publisher count\n      Ace     2",
		r.Render(analysis.Table([]string{"publisher", "count"}, [][]string{{"Ace", "2"}})))
}

func TestReporter_Report_AllSinks(t *testing.T) {
	var console, file bytes.Buffer

	books := []models.Book{
		{Title: "Dune", Authors: []string{"Frank Herbert"}, Publishers: []string{"Ace"}},
		{Title: "Dune", Authors: []string{"Frank Herbert"}, Publishers: []string{"Ace"}},
	}

	r := New(formatter.StyleMarkdown, &console, &file)
	require.NoError(t, r.Report(analysis.Questions(), books))

	out := console.String()
	assert.Equal(t, out, file.String())
	assert.Equal(t, 12, strings.Count(out, Delimiter+"\n"))
	assert.Equal(t, 12, strings.Count(out, "\nAnswer: \n "))
	assert.True(t, strings.HasPrefix(out, "1. How many different books are in the list?\nAnswer: \n 1\n"))
	assert.Contains(t, out, "| Ace       | 2     |")
	assert.Contains(t, out, "(Ace, Frank Herbert)")
}

func TestReporter_Report_WriteError(t *testing.T) {
	r := New(formatter.StylePlain, failingWriter{})

	err := r.Report(analysis.Questions(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 1")
}
