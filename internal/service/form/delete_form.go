package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/pkg/ctxutil"
)

// DeleteForm deletes a form of the authenticated user together with its
// submissions.
func (s *Service) DeleteForm(ctx context.Context, id uuid.UUID) error {
	ownerID, ok := ctxutil.AuthorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return domain.NewValidationError("form_id", "required")
	}

	if err := s.forms.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete form: %w", err)
	}

	s.log.InfoContext(ctx, "form deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("form_id", id.String()),
	)

	return nil
}
