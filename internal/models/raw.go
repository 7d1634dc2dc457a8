package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawCatalogEntry is one bibkey object of the Open Library
// api/books?jscmd=data response.
type RawCatalogEntry struct {
	Title         string      `json:"title"`
	Key           string      `json:"key"`
	PublishDate   string      `json:"publish_date"`
	Authors       []NamedRef  `json:"authors"`
	Publishers    []NamedRef  `json:"publishers"`
	Identifiers   Identifiers `json:"identifiers"`
	NumberOfPages *int        `json:"number_of_pages"`
	Excerpts      []Excerpt   `json:"excerpts"`
	present       bool
}

// NamedRef is an author or publisher reference. Name is nil when the
// upstream object carried no name.
type NamedRef struct {
	Name *string `json:"name"`
	URL  string  `json:"url"`
}

// Identifiers holds the external identifier lists of an edition.
type Identifiers struct {
	Goodreads []string `json:"goodreads"`
}

// Excerpt is a quoted passage of the book.
type Excerpt struct {
	Text *string `json:"text"`
}

// UnmarshalJSON decodes each field on its own, so a field of an unexpected
// type falls back to its zero value instead of failing the whole entry.
// Anything but a non-empty object leaves the entry empty.
func (e *RawCatalogEntry) UnmarshalJSON(data []byte) error {
	*e = RawCatalogEntry{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	e.present = len(fields) > 0
	e.Title = decodeText(fields["title"])
	e.Key = decodeText(fields["key"])
	e.PublishDate = decodeText(fields["publish_date"])
	e.Authors = decodeRefs(fields["authors"])
	e.Publishers = decodeRefs(fields["publishers"])
	e.Identifiers = decodeIdentifiers(fields["identifiers"])
	e.NumberOfPages = decodeInt(fields["number_of_pages"])
	e.Excerpts = decodeExcerpts(fields["excerpts"])

	return nil
}

// IsEmpty reports whether the catalog had nothing for the identifier.
func (e *RawCatalogEntry) IsEmpty() bool {
	return e == nil || !e.present
}

// RawDetailEntry is the work/edition record resolved from RawCatalogEntry.Key.
type RawDetailEntry struct {
	Description  TextValue `json:"description"`
	LastModified TextValue `json:"last_modified"`
}

// TextValueKind tells which upstream shape a TextValue was decoded from.
type TextValueKind int

// Shapes a TextValue can take.
const (
	TextAbsent TextValueKind = iota
	TextPlain
	TextTyped
)

// TextValue is a field that Open Library sends either as a bare string
// or as an object {"type": "...", "value": "..."}.
type TextValue struct {
	Kind  TextValueKind
	Plain string
	Typed TypedValue
}

// TypedValue is the object form of a TextValue.
type TypedValue struct {
	Type  string  `json:"type"`
	Value *string `json:"value"`
}

// UnmarshalJSON accepts both shapes; anything else leaves the value absent.
func (v *TextValue) UnmarshalJSON(data []byte) error {
	*v = TextValue{}

	if isAbsent(data) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Kind = TextPlain
		v.Plain = s

		return nil
	}

	var typed TypedValue
	if err := json.Unmarshal(data, &typed); err == nil && typed.Value != nil {
		v.Kind = TextTyped
		v.Typed = typed
	}

	return nil
}

// String returns the textual content for either shape.
func (v TextValue) String() string {
	switch v.Kind {
	case TextPlain:
		return v.Plain
	case TextTyped:
		return *v.Typed.Value
	default:
		return ""
	}
}

// decodeText reads a JSON string, or a number as its literal text.
func decodeText(raw json.RawMessage) string {
	if isAbsent(raw) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// decodeInt reads a whole number given as a JSON number or numeric string.
func decodeInt(raw json.RawMessage) *int {
	text := strings.TrimSpace(decodeText(raw))
	if text == "" {
		return nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}

	n := int(f)

	return &n
}

// decodeList splits a JSON array into its elements. Other shapes yield nil.
func decodeList(raw json.RawMessage) []json.RawMessage {
	if isAbsent(raw) {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	return items
}

// decodeObject reads a JSON object. Other shapes yield nil.
func decodeObject(raw json.RawMessage) map[string]json.RawMessage {
	if isAbsent(raw) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}

	return fields
}

// decodeRefs keeps every object element; elements of other shapes are dropped.
func decodeRefs(raw json.RawMessage) []NamedRef {
	var refs []NamedRef

	for _, item := range decodeList(raw) {
		fields := decodeObject(item)
		if fields == nil {
			continue
		}

		ref := NamedRef{URL: decodeText(fields["url"])}
		if name, ok := fields["name"]; ok && !isAbsent(name) {
			text := decodeText(name)
			ref.Name = &text
		}

		refs = append(refs, ref)
	}

	return refs
}

// decodeIdentifiers accepts goodreads as a list of scalars or a single scalar.
func decodeIdentifiers(raw json.RawMessage) Identifiers {
	goodreads := decodeObject(raw)["goodreads"]

	var ids Identifiers

	if items := decodeList(goodreads); items != nil {
		for _, item := range items {
			ids.Goodreads = append(ids.Goodreads, decodeText(item))
		}

		return ids
	}

	if id := decodeText(goodreads); id != "" {
		ids.Goodreads = []string{id}
	}

	return ids
}

// decodeExcerpts keeps one Excerpt per element so the first stays first.
func decodeExcerpts(raw json.RawMessage) []Excerpt {
	var excerpts []Excerpt

	for _, item := range decodeList(raw) {
		var excerpt Excerpt

		if text, ok := decodeObject(item)["text"]; ok && !isAbsent(text) {
			s := decodeText(text)
			excerpt.Text = &s
		}

		excerpts = append(excerpts, excerpt)
	}

	return excerpts
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
