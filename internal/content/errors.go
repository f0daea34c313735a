package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when the identifier does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrValidation is returned when input fails validation. The store is untouched.
	ErrValidation = errors.New("validation failed")
	// ErrStore wraps any failure reported by the database.
	ErrStore = errors.New("store error")
	// ErrHasChildren is returned when deleting a parent that still owns rows.
	ErrHasChildren = errors.New("record still has children")
	// ErrConfirmationRequired is returned when a delete was not confirmed.
	ErrConfirmationRequired = errors.New("delete requires confirmation")
)

// FieldError describes one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the list of invalid fields.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// ChildrenError reports how many children block a delete.
type ChildrenError struct {
	Name  string
	Count int64
}

func (e *ChildrenError) Error() string {
	return fmt.Sprintf("%s has %d child rows", e.Name, e.Count)
}

func (e *ChildrenError) Unwrap() error {
	return ErrHasChildren
}

func storeErr(op, name string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, name, ErrStore, err)
}
