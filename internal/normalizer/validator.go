package normalizer

import (
	"errors"

	"bookstats/internal/models"
)

// Validation errors.
var (
	ErrNilEntry   = errors.New("catalog entry is nil")
	ErrEmptyEntry = errors.New("catalog entry is empty")
)

// Validator handles data validation.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate rejects entries that carry nothing to normalize.
func (v *Validator) Validate(raw *models.RawCatalogEntry) error {
	if raw == nil {
		return ErrNilEntry
	}

	if raw.IsEmpty() {
		return ErrEmptyEntry
	}

	return nil
}
