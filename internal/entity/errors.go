package entity

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrDuplicateName   = errors.New("category name already exists")
	ErrCategoryInUse   = errors.New("category has notes")
	ErrInvalidCategory = errors.New("invalid category")
	ErrConflict        = errors.New("note was changed or removed")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError describes a rejected input field. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsBusiness reports whether err is one of the typed domain outcomes rather
// than a store or transport failure.
func IsBusiness(err error) bool {
	for _, target := range []error{
		ErrUnauthorized,
		ErrNotFound,
		ErrDuplicateName,
		ErrCategoryInUse,
		ErrInvalidCategory,
		ErrConflict,
		ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
