package form

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/pkg/ctxutil"
)

// CreateForm creates a new form owned by the authenticated user.
func (s *Service) CreateForm(ctx context.Context, input CreateFormInput) (*domain.Form, error) {
	ownerID, ok := ctxutil.AuthorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	form := input.ToDomain(ownerID, time.Now().UTC())

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.forms.Create(txCtx, &form); err != nil {
			return fmt.Errorf("create form: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "form created",
		slog.String("owner_id", ownerID.String()),
		slog.String("form_id", form.ID.String()),
		slog.Int("fields", len(form.Fields)),
		slog.Bool("quiz", form.HasQuiz()),
	)

	return &form, nil
}
