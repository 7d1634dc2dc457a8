package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNames maps lowercase English month names and three-letter
// abbreviations to months.
var monthNames = func() map[string]time.Month {
	names := map[string]time.Month{"sept": time.September}

	for m := time.January; m <= time.December; m++ {
		names[strings.ToLower(m.String())] = m
		names[strings.ToLower(m.String()[:3])] = m
	}

	return names
}()

// monthSpellings are matched verbatim (case-sensitive) by HasMonthInfo.
var monthSpellings = func() []string {
	var spellings []string

	for m := time.January; m <= time.December; m++ {
		spellings = append(spellings, m.String(), m.String()[:3])
	}

	return spellings
}()

// lastModifiedLayouts are the ISO-8601 forms accepted for last_modified.
var lastModifiedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// DateParser extracts calendar dates from free-form publish_date strings.
// Components missing from the text are taken from the anchor date.
type DateParser struct {
	anchor    time.Time
	thisYear  int
	isoDay    *regexp.Regexp
	isoMonth  *regexp.Regexp
	slashDate *regexp.Regexp
	slashYear *regexp.Regexp
	token     *regexp.Regexp
}

// NewDateParser creates a parser anchored at 1900-01-01.
func NewDateParser() *DateParser {
	return &DateParser{
		anchor:    time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
		thisYear:  time.Now().Year(),
		isoDay:    regexp.MustCompile(`\b(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})\b`),
		isoMonth:  regexp.MustCompile(`\b(\d{4})-(\d{1,2})\b`),
		slashDate: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`),
		slashYear: regexp.MustCompile(`\b(\d{1,2})/(\d{4})\b`),
		token:     regexp.MustCompile(`[A-Za-z]+|\d+`),
	}
}

// Parse returns the date found in s, or nil when s has no recognizable
// year, month or day, or when the components do not form a valid date.
func (p *DateParser) Parse(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if m := p.isoDay.FindStringSubmatch(s); m != nil {
		if t := p.build(atoi(m[1]), atoi(m[2]), atoi(m[3])); t != nil {
			return t
		}
	}

	if m := p.slashDate.FindStringSubmatch(s); m != nil {
		month, day := atoi(m[1]), atoi(m[2])
		if month > 12 {
			month, day = day, month
		}

		if t := p.build(atoi(m[3]), month, day); t != nil {
			return t
		}
	}

	if m := p.slashYear.FindStringSubmatch(s); m != nil {
		if t := p.build(atoi(m[2]), atoi(m[1]), 0); t != nil {
			return t
		}
	}

	if m := p.isoMonth.FindStringSubmatch(s); m != nil {
		if t := p.build(atoi(m[1]), atoi(m[2]), 0); t != nil {
			return t
		}
	}

	return p.parseTokens(s)
}

// parseTokens reads years, day numbers and month names in any order and
// skips every other token, so "c1995" and "5th May" both parse.
func (p *DateParser) parseTokens(s string) *time.Time {
	var year, month, day int

	for _, tok := range p.token.FindAllString(s, -1) {
		if tok[0] >= '0' && tok[0] <= '9' {
			n := atoi(tok)

			switch {
			case len(tok) == 4 && year == 0:
				year = n
			case len(tok) == 2 && n > 31 && year == 0:
				year = p.expandYear(n)
			case len(tok) <= 2 && n >= 1 && n <= 31 && day == 0:
				day = n
			case len(tok) <= 2 && n >= 1 && n <= 12 && month == 0:
				month = n
			}

			continue
		}

		if m, ok := monthNames[strings.ToLower(tok)]; ok && month == 0 {
			month = int(m)
		}
	}

	if year == 0 && month == 0 && day == 0 {
		return nil
	}

	return p.build(year, month, day)
}

// expandYear places a two-digit year within 50 years of the current year.
func (p *DateParser) expandYear(yy int) int {
	year := p.thisYear - p.thisYear%100 + yy

	switch {
	case year >= p.thisYear+50:
		year -= 100
	case year < p.thisYear-50:
		year += 100
	}

	return year
}

// build fills zero components from the anchor and validates the result.
func (p *DateParser) build(year, month, day int) *time.Time {
	if year == 0 {
		year = p.anchor.Year()
	}

	if month == 0 {
		month = int(p.anchor.Month())
	}

	if day == 0 {
		day = p.anchor.Day()
	}

	if month < 1 || month > 12 || day < 1 {
		return nil
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return nil
	}

	return &t
}

// HasMonthInfo reports whether s literally contains an English month name
// or abbreviation. It does not depend on s being a parseable date.
func HasMonthInfo(s string) bool {
	for _, name := range monthSpellings {
		if strings.Contains(s, name) {
			return true
		}
	}

	return false
}

// ParseLastModified parses an ISO-8601 timestamp. Anything else yields nil.
func ParseLastModified(s string) *time.Time {
	if s == "" {
		return nil
	}

	for _, layout := range lastModifiedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}
