// Package submission implements the accepted-submission repository using
// PostgreSQL. Each submission owns one submission_answers row per form field.
package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/formcheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var submissionColumns = []string{
	"id", "form_id", "client_attempt_id", "quiz_score", "quiz_max_score", "warning_count", "submitted_at",
}

var answerColumns = []string{
	"id", "submission_id", "field_id", "value", "findings",
	"sentiment_flag", "entity_flag", "not_evaluated", "quiz_correct", "points_awarded",
}

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new submission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the submission and all of its answers. Call inside RunInTx.
// Returns domain.ErrAlreadyExists when the client attempt id was already
// used for this form and domain.ErrNotFound when the form is gone.
func (r *Repo) Create(ctx context.Context, s *domain.Submission) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Insert("submissions").
		Columns(submissionColumns...).
		Values(s.ID, s.FormID, s.ClientAttemptID, s.QuizScore, s.QuizMaxScore, s.WarningCount, s.SubmittedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert submission query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "submission", s.ID)
	}

	if len(s.Answers) == 0 {
		return nil
	}

	insert := psql.Insert("submission_answers").Columns(answerColumns...)
	for _, a := range s.Answers {
		findings, err := json.Marshal(a.Findings)
		if err != nil {
			return fmt.Errorf("marshal findings for field %s: %w", a.FieldID, err)
		}
		insert = insert.Values(
			a.ID, s.ID, a.FieldID, a.Value, findings,
			a.SentimentFlag, a.EntityFlag, a.NotEvaluated, a.QuizCorrect, a.PointsAwarded,
		)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert answers query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "submission answers", s.ID)
	}

	return nil
}

// DeleteOlderThan removes submissions submitted before threshold; answers
// cascade. Returns the number of deleted submissions.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := psql.Delete("submissions").
		Where(squirrel.Lt{"submitted_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge submissions: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a submission with its answers.
// Returns domain.ErrNotFound if the submission does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(submissionColumns...).
		From("submissions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get submission query: %w", err)
	}

	s, err := scanSubmission(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}

	query, args, err = psql.Select(prefixed("a", answerColumns)...).
		From("submission_answers a").
		Join("form_fields f ON f.id = a.field_id").
		Where(squirrel.Eq{"a.submission_id": id}).
		OrderBy("f.position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get answers query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get answers: %w", err)
	}
	defer rows.Close()

	s.Answers, err = scanAnswers(rows)
	if err != nil {
		return nil, fmt.Errorf("get answers: %w", err)
	}

	return &s, nil
}

// ListByForm returns the form's submissions, newest first, without answers.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByForm(ctx context.Context, formID uuid.UUID, limit, offset int) ([]domain.Submission, error) {
	query, args, err := psql.Select(submissionColumns...).
		From("submissions").
		Where(squirrel.Eq{"form_id": formID}).
		OrderBy("submitted_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list submissions query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	result := []domain.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanSubmission(row pgx.Row) (domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(&s.ID, &s.FormID, &s.ClientAttemptID, &s.QuizScore, &s.QuizMaxScore, &s.WarningCount, &s.SubmittedAt)
	return s, err
}

func scanAnswers(rows pgx.Rows) ([]domain.Answer, error) {
	answers := []domain.Answer{}
	for rows.Next() {
		var (
			a        domain.Answer
			findings []byte
		)
		if err := rows.Scan(
			&a.ID, &a.SubmissionID, &a.FieldID, &a.Value, &findings,
			&a.SentimentFlag, &a.EntityFlag, &a.NotEvaluated, &a.QuizCorrect, &a.PointsAwarded,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(findings, &a.Findings); err != nil {
			return nil, fmt.Errorf("decode findings of answer %s: %w", a.ID, err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
