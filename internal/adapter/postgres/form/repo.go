// Package form implements the form definition repository using PostgreSQL.
// A form is stored as one forms row, one form_fields row per field and a
// quiz_fields row for every quiz field.
package form

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/formcheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var formColumns = []string{"id", "owner_id", "title", "description", "created_at", "updated_at"}

const selectFieldsSQL = `
SELECT
    f.id, f.form_id, f.position, f.label, f.field_type, f.required, f.semantic_check,
    f.expected_entity_hint, f.expected_sentiment_hint,
    q.question_kind, q.options, q.correct_answer, q.points, q.match_mode
FROM form_fields f
LEFT JOIN quiz_fields q ON q.field_id = f.id
WHERE f.form_id = $1
ORDER BY f.position`

// Repo provides form persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new form repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a form with its fields in position order.
// Returns domain.ErrNotFound if the form does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(formColumns...).From("forms").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get form query: %w", err)
	}

	form, err := scanForm(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "form", id)
	}

	rows, err := q.Query(ctx, selectFieldsSQL, id)
	if err != nil {
		return nil, fmt.Errorf("get form fields: %w", err)
	}
	defer rows.Close()

	form.Fields, err = scanFields(rows)
	if err != nil {
		return nil, fmt.Errorf("get form fields: %w", err)
	}

	return &form, nil
}

// ListByOwner returns the owner's forms, newest first, without fields.
// Returns an empty slice (not nil) when the owner has no forms.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.Form, error) {
	query, args, err := psql.Select(formColumns...).
		From("forms").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list forms query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	defer rows.Close()

	forms := []domain.Form{}
	for rows.Next() {
		f, err := scanForm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan form: %w", err)
		}
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}

	return forms, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the form, its fields and their quiz sub-records.
// IDs and timestamps must already be set. Call inside RunInTx so a partial
// form is never visible.
func (r *Repo) Create(ctx context.Context, form *domain.Form) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Insert("forms").
		Columns(formColumns...).
		Values(form.ID, form.OwnerID, form.Title, form.Description, form.CreatedAt, form.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert form query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "form", form.ID)
	}

	if len(form.Fields) == 0 {
		return nil
	}

	fields := psql.Insert("form_fields").Columns(
		"id", "form_id", "position", "label", "field_type", "required", "semantic_check",
		"expected_entity_hint", "expected_sentiment_hint",
	)
	quiz := psql.Insert("quiz_fields").Columns(
		"field_id", "question_kind", "options", "correct_answer", "points", "match_mode",
	)
	hasQuiz := false

	for _, f := range form.Fields {
		fields = fields.Values(
			f.ID, form.ID, f.Position, f.Label, string(f.Type), f.Required, f.SemanticCheck,
			nullString(string(f.ExpectedEntityHint)), nullString(f.ExpectedSentimentHint),
		)
		if f.Quiz != nil {
			hasQuiz = true
			options := f.Quiz.Options
			if options == nil {
				options = []string{}
			}
			quiz = quiz.Values(f.ID, string(f.Quiz.Kind), options, f.Quiz.CorrectAnswer, f.Quiz.Points, string(f.Quiz.MatchMode))
		}
	}

	query, args, err = fields.ToSql()
	if err != nil {
		return fmt.Errorf("build insert fields query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "form fields", form.ID)
	}

	if !hasQuiz {
		return nil
	}

	query, args, err = quiz.ToSql()
	if err != nil {
		return fmt.Errorf("build insert quiz query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "quiz fields", form.ID)
	}

	return nil
}

// Delete removes the form owned by ownerID; fields, quiz records and
// submissions cascade. Returns domain.ErrNotFound if no such form exists
// for this owner.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := psql.Delete("forms").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete form query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "form", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("form %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanForm(row pgx.Row) (domain.Form, error) {
	var f domain.Form
	err := row.Scan(&f.ID, &f.OwnerID, &f.Title, &f.Description, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func scanFields(rows pgx.Rows) ([]domain.Field, error) {
	fields := []domain.Field{}
	for rows.Next() {
		var (
			f                         domain.Field
			fieldType                 string
			entityHint, sentimentHint *string
			kind, correct, matchMode  *string
			options                   []string
			points                    *int
		)
		if err := rows.Scan(
			&f.ID, &f.FormID, &f.Position, &f.Label, &fieldType, &f.Required, &f.SemanticCheck,
			&entityHint, &sentimentHint,
			&kind, &options, &correct, &points, &matchMode,
		); err != nil {
			return nil, err
		}

		f.Type = domain.FieldType(fieldType)
		if entityHint != nil {
			f.ExpectedEntityHint = domain.EntityType(*entityHint)
		}
		if sentimentHint != nil {
			f.ExpectedSentimentHint = *sentimentHint
		}
		if kind != nil {
			f.Quiz = &domain.QuizData{
				Kind:          domain.QuestionKind(*kind),
				Options:       options,
				CorrectAnswer: deref(correct),
				MatchMode:     domain.MatchMode(deref(matchMode)),
			}
			if points != nil {
				f.Quiz.Points = *points
			}
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
