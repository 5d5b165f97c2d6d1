package service

import (
	"errors"
	"strings"

	"legal-advisor-backend/models"
)

// Caller-side validation errors. ProcessQuery never returns these; handlers and the
// CLI check input with ValidateQuery before calling it.
var (
	ErrEmptyQuery          = errors.New("please enter a question")
	ErrInvalidCategory     = errors.New("unknown area of law")
	ErrInvalidJurisdiction = errors.New("unknown jurisdiction")
)

// ValidateQuery checks a submission before it reaches the orchestrator
func ValidateQuery(query string, category models.Category, jurisdiction models.Jurisdiction) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	if !category.Valid() {
		return ErrInvalidCategory
	}
	if !jurisdiction.Valid() {
		return ErrInvalidJurisdiction
	}
	return nil
}
