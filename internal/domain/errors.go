package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// ErrDuplicateAttempt is returned when a client attempt id was already
	// claimed for the form. It matches ErrAlreadyExists.
	ErrDuplicateAttempt = fmt.Errorf("duplicate attempt: %w", ErrAlreadyExists)
)

// FieldError points at one malformed part of a request or form definition.
// Field uses dotted paths such as "fields[2].quiz.points" or "values.<id>".
// Problems with submitted answers are Findings, not FieldErrors.
type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) String() string { return fe.Field + ": " + fe.Message }

// ValidationError groups every FieldError found in a single pass.
type ValidationError struct {
	Errors []FieldError
}

// maxListedErrors caps how many field errors Error() spells out.
const maxListedErrors = 3

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i == maxListedErrors {
			fmt.Fprintf(&b, " (+%d more)", len(e.Errors)-maxListedErrors)
			break
		}
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.String())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Has reports whether any error targets field.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
