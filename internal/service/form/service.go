package form

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

//go:generate moq -out form_repo_mock_test.go -pkg form . formRepo
//go:generate moq -out tx_manager_mock_test.go -pkg form . txManager

type formRepo interface {
	Create(ctx context.Context, form *domain.Form) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.Form, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxFieldsPerForm = 100
	DefaultPageSize  = 20
	MaxPageSize      = 100
)

// Service provides form authoring operations.
type Service struct {
	forms formRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Form service.
func NewService(log *slog.Logger, forms formRepo, tx txManager) *Service {
	return &Service{
		forms: forms,
		tx:    tx,
		log:   log.With("service", "form"),
	}
}
