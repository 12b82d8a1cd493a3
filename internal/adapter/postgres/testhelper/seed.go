package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedForm inserts a form owned by ownerID with one plain text field and one
// multiple-choice quiz field worth 2 points. Returns the filled domain.Form.
func SeedForm(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Form {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	form := domain.Form{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       "Test Form " + uniqueSuffix(),
		Description: "seeded",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	form.Fields = []domain.Field{
		{
			ID: uuid.New(), FormID: form.ID, Position: 0,
			Label: "Company Name", Type: domain.FieldTypeText, Required: true, SemanticCheck: true,
		},
		{
			ID: uuid.New(), FormID: form.ID, Position: 1,
			Label: "Capital of France?", Type: domain.FieldTypeText,
			Quiz: &domain.QuizData{
				Kind:          domain.QuestionKindMultipleChoice,
				Options:       []string{"Paris", "Rome", "Madrid"},
				CorrectAnswer: "Paris",
				Points:        2,
				MatchMode:     domain.MatchModeCaseInsensitive,
			},
		},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO forms (id, owner_id, title, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		form.ID, form.OwnerID, form.Title, form.Description, form.CreatedAt, form.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedForm insert form: %v", err)
	}

	for _, f := range form.Fields {
		_, err = pool.Exec(ctx,
			`INSERT INTO form_fields (id, form_id, position, label, field_type, required, semantic_check)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			f.ID, f.FormID, f.Position, f.Label, string(f.Type), f.Required, f.SemanticCheck,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedForm insert field: %v", err)
		}
		if f.Quiz == nil {
			continue
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO quiz_fields (field_id, question_kind, options, correct_answer, points, match_mode)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			f.ID, string(f.Quiz.Kind), f.Quiz.Options, f.Quiz.CorrectAnswer, f.Quiz.Points, string(f.Quiz.MatchMode),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedForm insert quiz: %v", err)
		}
	}

	return form
}
