package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

// Submit evaluates the answers and stores them when the outcome is accepted.
// A rejected outcome is returned with a nil Submission and is not stored.
//
// When ClientAttemptID is set the attempt is claimed first; a second claim of
// the same attempt returns domain.ErrDuplicateAttempt. The claim is released on
// rejection or storage failure so the client can retry.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	form, err := s.forms.GetByID(ctx, input.FormID)
	if err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}
	if err := unknownFields(form, input.Values); err != nil {
		return nil, err
	}

	var attemptID string
	if input.ClientAttemptID != nil {
		attemptID = strings.TrimSpace(*input.ClientAttemptID)
		claimed, err := s.attempts.Claim(ctx, form.ID, attemptID)
		if err != nil {
			return nil, fmt.Errorf("claim attempt: %w", err)
		}
		if !claimed {
			return nil, fmt.Errorf("attempt %q: %w", attemptID, domain.ErrDuplicateAttempt)
		}
	}

	outcome := s.engine.Evaluate(ctx, form.Fields, input.Values)

	if !outcome.Accepted {
		s.release(ctx, form.ID, attemptID)
		s.log.InfoContext(ctx, "submission rejected",
			slog.String("form_id", form.ID.String()),
			slog.Int("errors", outcome.ErrorCount()),
		)
		return &SubmitResult{Outcome: outcome}, nil
	}

	sub := buildSubmission(form.ID, attemptID, input.Values, outcome)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.submissions.Create(txCtx, sub); err != nil {
			if attemptID != "" && errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("attempt %q: %w", attemptID, domain.ErrDuplicateAttempt)
			}
			return fmt.Errorf("create submission: %w", err)
		}
		return nil
	})
	if err != nil {
		s.release(ctx, form.ID, attemptID)
		return nil, err
	}

	s.log.InfoContext(ctx, "submission accepted",
		slog.String("form_id", form.ID.String()),
		slog.String("submission_id", sub.ID.String()),
		slog.Int("warnings", sub.WarningCount),
		slog.Int("not_evaluated", len(outcome.NotEvaluatedFields())),
	)

	return &SubmitResult{Outcome: outcome, Submission: sub}, nil
}

// Check evaluates the answers without claiming an attempt or storing anything.
func (s *Service) Check(ctx context.Context, input CheckInput) (domain.SubmissionOutcome, error) {
	if err := input.Validate(); err != nil {
		return domain.SubmissionOutcome{}, err
	}

	form, err := s.forms.GetByID(ctx, input.FormID)
	if err != nil {
		return domain.SubmissionOutcome{}, fmt.Errorf("get form: %w", err)
	}
	if err := unknownFields(form, input.Values); err != nil {
		return domain.SubmissionOutcome{}, err
	}

	return s.engine.Evaluate(ctx, form.Fields, input.Values), nil
}

func (s *Service) release(ctx context.Context, formID uuid.UUID, attemptID string) {
	if attemptID == "" {
		return
	}
	if err := s.attempts.Release(ctx, formID, attemptID); err != nil {
		s.log.WarnContext(ctx, "release attempt failed",
			slog.String("form_id", formID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func buildSubmission(formID uuid.UUID, attemptID string, values map[uuid.UUID]string, outcome domain.SubmissionOutcome) *domain.Submission {
	sub := &domain.Submission{
		ID:           uuid.New(),
		FormID:       formID,
		QuizScore:    outcome.QuizScore,
		QuizMaxScore: outcome.QuizMaxScore,
		SubmittedAt:  time.Now().UTC(),
		Answers:      make([]domain.Answer, 0, len(outcome.Fields)),
	}
	if attemptID != "" {
		sub.ClientAttemptID = &attemptID
	}

	for _, r := range outcome.Fields {
		a := domain.NewAnswer(sub.ID, values[r.FieldID], r)
		a.ID = uuid.New()
		sub.Answers = append(sub.Answers, a)
		sub.WarningCount += len(r.Findings)
	}

	return sub
}
