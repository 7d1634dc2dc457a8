package normalizer

import (
	"bookstats/internal/models"
	"bookstats/pkg/utils"
)

// Transformer maps catalog payloads onto the Book schema.
type Transformer struct {
	strings *utils.StringHelper
	dates   *DateParser
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{
		strings: utils.NewStringHelper(),
		dates:   NewDateParser(),
	}
}

// Transform builds a Book from a catalog entry and its optional detail
// record. It has no side effects, so equal inputs give equal books.
func (t *Transformer) Transform(raw *models.RawCatalogEntry, detail *models.RawDetailEntry) models.Book {
	book := models.Book{
		Title:          t.strings.Clean(raw.Title),
		Authors:        t.names(raw.Authors),
		Publishers:     t.names(raw.Publishers),
		PublishDate:    t.dates.Parse(raw.PublishDate),
		HasMonthInfo:   HasMonthInfo(raw.PublishDate),
		HasGoodreadsID: len(raw.Identifiers.Goodreads) > 0,
		NumberOfPages:  raw.NumberOfPages,
		FirstSentence:  t.firstSentence(raw.Excerpts),
	}

	if detail != nil {
		book.Description = t.strings.Clean(detail.Description.String())
		book.LastModified = ParseLastModified(detail.LastModified.String())
	}

	return book
}

// names keeps source order and duplicates, dropping references without a name.
func (t *Transformer) names(refs []models.NamedRef) []string {
	names := make([]string, 0, len(refs))

	for _, ref := range refs {
		if ref.Name == nil {
			continue
		}

		names = append(names, t.strings.Clean(*ref.Name))
	}

	return names
}

func (t *Transformer) firstSentence(excerpts []models.Excerpt) string {
	if len(excerpts) == 0 || excerpts[0].Text == nil {
		return ""
	}

	return t.strings.Clean(*excerpts[0].Text)
}
