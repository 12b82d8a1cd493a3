package submission

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

// SubmitInput holds a respondent's answers keyed by field id.
type SubmitInput struct {
	FormID          uuid.UUID
	Values          map[uuid.UUID]string
	ClientAttemptID *string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	errs := validateValues(i.FormID, i.Values)

	if i.ClientAttemptID != nil {
		id := strings.TrimSpace(*i.ClientAttemptID)
		if id == "" {
			errs = append(errs, domain.FieldError{Field: "client_attempt_id", Message: "must not be blank"})
		}
		if len(id) > MaxAttemptIDLength {
			errs = append(errs, domain.FieldError{Field: "client_attempt_id", Message: fmt.Sprintf("max %d characters", MaxAttemptIDLength)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CheckInput holds answers for a dry-run evaluation.
type CheckInput struct {
	FormID uuid.UUID
	Values map[uuid.UUID]string
}

// Validate checks all fields and collects all errors.
func (i CheckInput) Validate() error {
	if errs := validateValues(i.FormID, i.Values); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateValues(formID uuid.UUID, values map[uuid.UUID]string) []domain.FieldError {
	var errs []domain.FieldError

	if formID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "form_id", Message: "required"})
	}
	for id, v := range values {
		if utf8.RuneCountInString(v) > MaxValueLength {
			errs = append(errs, domain.FieldError{Field: "values." + id.String(), Message: fmt.Sprintf("max %d characters", MaxValueLength)})
		}
	}

	return errs
}

// unknownFields reports value keys that are not fields of the form.
func unknownFields(form *domain.Form, values map[uuid.UUID]string) error {
	known := make(map[uuid.UUID]struct{}, len(form.Fields))
	for _, f := range form.Fields {
		known[f.ID] = struct{}{}
	}

	var errs []domain.FieldError
	for id := range values {
		if _, ok := known[id]; !ok {
			errs = append(errs, domain.FieldError{Field: "values." + id.String(), Message: "unknown field"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSubmissionsInput holds the parameters for listing a form's submissions.
type ListSubmissionsInput struct {
	FormID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListSubmissionsInput) Validate() error {
	var errs []domain.FieldError

	if i.FormID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "form_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxPageSize)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListSubmissionsInput) limit() int {
	if i.Limit == 0 {
		return DefaultPageSize
	}
	return i.Limit
}
