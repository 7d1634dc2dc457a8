// Package analysis computes the twelve report answers over a book collection.
package analysis

import "strconv"

// AnswerKind tells which form an Answer takes.
type AnswerKind int

// Answer forms.
const (
	KindNoData AnswerKind = iota
	KindScalar
	KindPair
	KindTable
)

// Answer is the result of one question: a scalar, a pair, a table, or
// nothing when no record qualified.
type Answer struct {
	Kind   AnswerKind
	Value  string
	First  string
	Second string
	Header []string
	Rows   [][]string
}

// NoData is the answer of a question no record qualified for.
func NoData() Answer {
	return Answer{Kind: KindNoData}
}

// Scalar wraps a single textual value.
func Scalar(v string) Answer {
	return Answer{Kind: KindScalar, Value: v}
}

// Count wraps an integer value.
func Count(n int) Answer {
	return Scalar(strconv.Itoa(n))
}

// Pair wraps an ordered pair of values.
func Pair(first, second string) Answer {
	return Answer{Kind: KindPair, First: first, Second: second}
}

// Table wraps rows under a header. Every row has len(header) cells.
func Table(header []string, rows [][]string) Answer {
	return Answer{Kind: KindTable, Header: header, Rows: rows}
}
