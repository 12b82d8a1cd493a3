// Package validation is the answer validation and grading engine: rule
// checks, semantic checks over text signals, quiz grading and the
// aggregation of all findings into a submission outcome.
package validation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/formcheck-backend/internal/config"
	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/internal/provider"
)

// Aggregator evaluates whole submissions. Provider calls for different
// fields run concurrently (bounded by the configured limit); results are
// merged in field declaration order regardless of completion order.
type Aggregator struct {
	rules       *RuleValidator
	semantic    *SemanticValidator
	grader      QuizGrader
	signals     provider.TextSignals
	concurrency int
	timeout     time.Duration
	log         *slog.Logger
}

// NewAggregator creates an Aggregator over the given signal provider.
func NewAggregator(signals provider.TextSignals, cfg config.ValidationConfig, logger *slog.Logger) *Aggregator {
	sanitizer := NewSanitizer()

	concurrency := cfg.SemanticConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	timeout := cfg.SignalTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Aggregator{
		rules:       NewRuleValidator(cfg, sanitizer),
		semantic:    NewSemanticValidator(cfg, sanitizer),
		signals:     signals,
		concurrency: concurrency,
		timeout:     timeout,
		log:         logger.With("service", "validation"),
	}
}

// fieldEval collects the per-field intermediate results. Each goroutine
// writes only its own element.
type fieldEval struct {
	rules    []domain.Finding
	semantic []domain.Finding
	status   domain.SemanticStatus
	quizSig  *QuizSignals
}

// Evaluate validates values against fields and returns the outcome.
// It never fails: provider failures, timeouts, cancellation and malformed
// signals mark the affected field not evaluated.
func (a *Aggregator) Evaluate(ctx context.Context, fields []domain.Field, values map[uuid.UUID]string) domain.SubmissionOutcome {
	evals := make([]fieldEval, len(fields))

	for i, f := range fields {
		evals[i].rules = a.rules.Validate(f, values[f.ID])
		evals[i].status = domain.SemanticStatusSkipped
	}

	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for i, f := range fields {
		value := values[f.ID]
		if !a.needsSignals(f, value) {
			continue
		}
		g.Go(func() error {
			a.collectSignals(ctx, f, value, &evals[i])
			return nil
		})
	}
	_ = g.Wait()

	outcome := a.merge(fields, values, evals)

	a.log.DebugContext(ctx, "submission evaluated",
		slog.Bool("accepted", outcome.Accepted),
		slog.Int("fields", len(fields)),
		slog.Int("errors", outcome.ErrorCount()),
		slog.Int("not_evaluated", len(outcome.NotEvaluatedFields())),
	)

	return outcome
}

func (a *Aggregator) needsSignals(f domain.Field, value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	return f.SemanticCheck || a.needsQuizSignals(f, value)
}

// needsQuizSignals reports whether a fill-in-the-blank answer is neither
// empty nor an exact match, so entity signals could turn it into a near-match.
func (a *Aggregator) needsQuizSignals(f domain.Field, value string) bool {
	if f.Quiz == nil || f.Quiz.Kind != domain.QuestionKindFillBlank || !a.signals.Enabled() {
		return false
	}
	got := domain.NormalizeAnswer(value, f.Quiz.MatchMode)
	return got != "" && got != domain.NormalizeAnswer(f.Quiz.CorrectAnswer, f.Quiz.MatchMode)
}

// collectSignals runs the provider-dependent part of one field. Panics are
// contained here and degrade only this field.
func (a *Aggregator) collectSignals(ctx context.Context, f domain.Field, value string, ev *fieldEval) {
	defer func() {
		if r := recover(); r != nil {
			ev.semantic = nil
			ev.quizSig = nil
			if f.SemanticCheck {
				ev.status = domain.SemanticStatusNotEvaluated
			}
			a.logDegraded(ctx, f, fmt.Errorf("panic: %v", r))
		}
	}()

	var answerEntities []domain.Entity
	haveAnswerEntities := false

	if f.SemanticCheck {
		res := fetchSignals(ctx, a.signals, value, a.timeout)
		if res.Status == domain.SemanticStatusNotEvaluated {
			ev.status = res.Status
			a.logDegraded(ctx, f, res.Err)
		} else {
			findings, err := a.semantic.Analyze(f, value, res.Signal)
			if err != nil {
				ev.status = domain.SemanticStatusNotEvaluated
				a.logDegraded(ctx, f, err)
			} else {
				ev.semantic = findings
				ev.status = res.Status
				if res.Status == domain.SemanticStatusEvaluated {
					answerEntities, haveAnswerEntities = res.Signal.Entities, true
				}
			}
		}
	}

	if a.needsQuizSignals(f, value) {
		ev.quizSig = a.quizSignals(ctx, f, value, answerEntities, haveAnswerEntities)
	}
}

// quizSignals fetches entities for the answer (unless already known) and the
// key. Any failure returns nil; substring near-matching still applies.
func (a *Aggregator) quizSignals(ctx context.Context, f domain.Field, value string, answer []domain.Entity, haveAnswer bool) *QuizSignals {
	if !haveAnswer {
		ents, err := fetchEntities(ctx, a.signals, value, a.timeout)
		if err != nil {
			a.log.WarnContext(ctx, "quiz answer entities unavailable",
				slog.String("field_id", f.ID.String()),
				slog.String("error", err.Error()),
			)
			return nil
		}
		answer = ents
	}

	key, err := fetchEntities(ctx, a.signals, f.Quiz.CorrectAnswer, a.timeout)
	if err != nil {
		a.log.WarnContext(ctx, "quiz key entities unavailable",
			slog.String("field_id", f.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	return &QuizSignals{Answer: answer, Key: key}
}

// merge builds the outcome in declaration order: rule findings, then
// semantic findings, then the quiz finding.
func (a *Aggregator) merge(fields []domain.Field, values map[uuid.UUID]string, evals []fieldEval) domain.SubmissionOutcome {
	outcome := domain.SubmissionOutcome{
		Accepted: true,
		Fields:   make([]domain.FieldResult, 0, len(fields)),
	}

	score, hasQuiz := 0, false

	for i, f := range fields {
		ev := evals[i]
		res := domain.FieldResult{
			FieldID:  f.ID,
			Semantic: ev.status,
		}
		res.Findings = append(res.Findings, ev.rules...)
		res.Findings = append(res.Findings, ev.semantic...)

		if f.Quiz != nil {
			hasQuiz = true
			grade := a.grader.Grade(*f.Quiz, values[f.ID], ev.quizSig)
			if grade.Finding != nil {
				res.Findings = append(res.Findings, *grade.Finding)
			}

			qr := &domain.QuizResult{Correct: grade.Correct, PointsMax: f.Quiz.Points}
			if grade.Correct {
				qr.PointsAwarded = f.Quiz.Points
			}
			res.Quiz = qr
			score += qr.PointsAwarded
			outcome.QuizMaxScore += qr.PointsMax
		}

		if domain.ContainsError(res.Findings) {
			outcome.Accepted = false
		}
		outcome.Fields = append(outcome.Fields, res)
	}

	if hasQuiz {
		outcome.QuizScore = &score
	}

	return outcome
}

func (a *Aggregator) logDegraded(ctx context.Context, f domain.Field, err error) {
	a.log.WarnContext(ctx, "semantic evaluation degraded",
		slog.String("field_id", f.ID.String()),
		slog.String("label", f.Label),
		slog.String("error", err.Error()),
	)
}
