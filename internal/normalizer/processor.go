// Package normalizer converts catalog payloads into normalized book records.
package normalizer

import (
	"fmt"

	"bookstats/internal/models"
)

// Processor validates a catalog entry and transforms it into a Book.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Process normalizes raw and its optional detail record.
func (p *Processor) Process(raw *models.RawCatalogEntry, detail *models.RawDetailEntry) (models.Book, error) {
	if err := p.validator.Validate(raw); err != nil {
		return models.Book{}, fmt.Errorf("validation failed: %w", err)
	}

	return p.transformer.Transform(raw, detail), nil
}
