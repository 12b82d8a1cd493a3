package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

//go:generate moq -out form_repo_mock_test.go -pkg submission . formRepo
//go:generate moq -out submission_repo_mock_test.go -pkg submission . submissionRepo
//go:generate moq -out evaluator_mock_test.go -pkg submission . evaluator
//go:generate moq -out attempt_guard_mock_test.go -pkg submission . attemptGuard
//go:generate moq -out tx_manager_mock_test.go -pkg submission . txManager

type formRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
}

type submissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	ListByForm(ctx context.Context, formID uuid.UUID, limit, offset int) ([]domain.Submission, error)
	DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error)
}

type evaluator interface {
	Evaluate(ctx context.Context, fields []domain.Field, values map[uuid.UUID]string) domain.SubmissionOutcome
}

type attemptGuard interface {
	Claim(ctx context.Context, formID uuid.UUID, attemptID string) (bool, error)
	Release(ctx context.Context, formID uuid.UUID, attemptID string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxValueLength     = 20000
	MaxAttemptIDLength = 128
	DefaultPageSize    = 20
	MaxPageSize        = 100
)

// Service evaluates and stores form submissions.
type Service struct {
	forms       formRepo
	submissions submissionRepo
	engine      evaluator
	attempts    attemptGuard
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Submission service.
func NewService(
	log *slog.Logger,
	forms formRepo,
	submissions submissionRepo,
	engine evaluator,
	attempts attemptGuard,
	tx txManager,
) *Service {
	return &Service{
		forms:       forms,
		submissions: submissions,
		engine:      engine,
		attempts:    attempts,
		tx:          tx,
		log:         log.With("service", "submission"),
	}
}

// SubmitResult is the outcome of a submission attempt. Submission is nil
// when the outcome was rejected.
type SubmitResult struct {
	Outcome    domain.SubmissionOutcome
	Submission *domain.Submission
}
