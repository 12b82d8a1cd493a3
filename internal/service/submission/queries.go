package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/pkg/ctxutil"
)

// GetSubmission returns a stored submission to the owner of its form.
// Other users get domain.ErrNotFound.
func (s *Service) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	authorID, ok := ctxutil.AuthorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	if _, err := s.ownedForm(ctx, authorID, sub.FormID); err != nil {
		return nil, fmt.Errorf("submission %s: %w", id, err)
	}

	return sub, nil
}

// ListSubmissions returns a form's submissions to the form owner, newest first.
func (s *Service) ListSubmissions(ctx context.Context, input ListSubmissionsInput) ([]domain.Submission, error) {
	authorID, ok := ctxutil.AuthorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedForm(ctx, authorID, input.FormID); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	subs, err := s.submissions.ListByForm(ctx, input.FormID, input.limit(), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	return subs, nil
}

// PurgeOlderThan deletes submissions stored before threshold.
func (s *Service) PurgeOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	deleted, err := s.submissions.DeleteOlderThan(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge submissions: %w", err)
	}

	s.log.InfoContext(ctx, "submissions purged",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)

	return deleted, nil
}

func (s *Service) ownedForm(ctx context.Context, authorID, formID uuid.UUID) (*domain.Form, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.OwnerID != authorID {
		return nil, domain.ErrNotFound
	}
	return form, nil
}
