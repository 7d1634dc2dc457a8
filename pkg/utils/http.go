// Package utils provides common utility functions.
package utils

import "net/http"

// DefaultUserAgent identifies the tool to upstream catalogs.
const DefaultUserAgent = "bookstats/1.0"

// HTTPHelper provides HTTP utility functions.
type HTTPHelper struct {
	userAgent string
}

// NewHTTPHelper creates a new HTTP helper. An empty userAgent falls back to DefaultUserAgent.
func NewHTTPHelper(userAgent string) *HTTPHelper {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &HTTPHelper{userAgent: userAgent}
}

// BuildHeaders creates the headers sent with every catalog request.
func (h *HTTPHelper) BuildHeaders() http.Header {
	headers := http.Header{}

	headers.Set("User-Agent", h.userAgent)
	headers.Set("Accept", "application/json")

	return headers
}
