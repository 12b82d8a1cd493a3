package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/pkg/ctxutil"
)

// GetForm returns a form with its fields. Forms are public so respondents
// can render them; quiz answer keys are stripped by the transport layer.
func (s *Service) GetForm(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("form_id", "required")
	}

	form, err := s.forms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}

	return form, nil
}

// ListForms returns the authenticated user's forms, newest first.
func (s *Service) ListForms(ctx context.Context, input ListFormsInput) ([]domain.Form, error) {
	ownerID, ok := ctxutil.AuthorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	forms, err := s.forms.ListByOwner(ctx, ownerID, input.limit(), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}

	return forms, nil
}
