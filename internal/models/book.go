// Package models defines the catalog payloads and the normalized book record.
package models

import "time"

// Book is the normalized record built from one catalog lookup.
// Slices are never nil and optional values are nil pointers.
type Book struct {
	PublishDate    *time.Time `json:"publishDate"`
	NumberOfPages  *int       `json:"numberOfPages"`
	LastModified   *time.Time `json:"lastModified"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	FirstSentence  string     `json:"firstSentence"`
	Authors        []string   `json:"authors"`
	Publishers     []string   `json:"publishers"`
	HasMonthInfo   bool       `json:"hasMonthInfo"`
	HasGoodreadsID bool       `json:"hasGoodreadsId"`
}
