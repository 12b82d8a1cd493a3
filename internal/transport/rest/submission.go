package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/internal/service/submission"
)

// IdempotencyKeyHeader may carry the client attempt id instead of the body.
const IdempotencyKeyHeader = "Idempotency-Key"

// submissionService defines the minimal interface needed by SubmissionHandler.
type submissionService interface {
	Submit(ctx context.Context, input submission.SubmitInput) (*submission.SubmitResult, error)
	Check(ctx context.Context, input submission.CheckInput) (domain.SubmissionOutcome, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	ListSubmissions(ctx context.Context, input submission.ListSubmissionsInput) ([]domain.Submission, error)
}

// SubmissionHandler serves submission and dry-run check endpoints.
type SubmissionHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

type submitRequest struct {
	Values          map[string]string `json:"values"`
	ClientAttemptID *string           `json:"client_attempt_id,omitempty"`
}

type findingResponse struct {
	Type       string  `json:"type"`
	Issue      string  `json:"issue"`
	Correction *string `json:"correction"`
	Severity   string  `json:"severity"`
}

type quizResultResponse struct {
	Correct       bool `json:"correct"`
	PointsAwarded int  `json:"points_awarded"`
	PointsMax     int  `json:"points_max"`
}

type fieldResultResponse struct {
	FieldID        string              `json:"field_id"`
	SemanticStatus string              `json:"semantic_status,omitempty"`
	Findings       []findingResponse   `json:"findings"`
	Quiz           *quizResultResponse `json:"quiz,omitempty"`
}

type outcomeResponse struct {
	Accepted     bool                  `json:"accepted"`
	SubmissionID *string               `json:"submission_id,omitempty"`
	Fields       []fieldResultResponse `json:"fields"`
	QuizScore    *int                  `json:"quiz_score"`
	QuizMaxScore int                   `json:"quiz_max_score"`
	ErrorCount   int                   `json:"error_count"`
	NotEvaluated []string              `json:"not_evaluated"`
}

type answerResponse struct {
	FieldID       string            `json:"field_id"`
	Value         string            `json:"value"`
	Findings      []findingResponse `json:"findings"`
	SentimentFlag bool              `json:"sentiment_flag"`
	EntityFlag    bool              `json:"entity_flag"`
	NotEvaluated  bool              `json:"not_evaluated"`
	QuizCorrect   *bool             `json:"quiz_correct"`
	PointsAwarded int               `json:"points_awarded"`
}

type submissionResponse struct {
	ID              string           `json:"id"`
	FormID          string           `json:"form_id"`
	ClientAttemptID *string          `json:"client_attempt_id,omitempty"`
	QuizScore       *int             `json:"quiz_score"`
	QuizMaxScore    int              `json:"quiz_max_score"`
	WarningCount    int              `json:"warning_count"`
	SubmittedAt     time.Time        `json:"submitted_at"`
	Answers         []answerResponse `json:"answers"`
}

// Submit handles POST /forms/{id}/submissions.
// An accepted outcome responds 201, a rejected one 422; both carry the full
// findings list.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	values, err := parseValues(req.Values)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	attemptID := req.ClientAttemptID
	if key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader)); attemptID == nil && key != "" {
		attemptID = &key
	}

	res, err := h.svc.Submit(r.Context(), submission.SubmitInput{
		FormID:          formID,
		Values:          values,
		ClientAttemptID: attemptID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := toOutcomeResponse(res.Outcome)
	if res.Submission == nil {
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	id := res.Submission.ID.String()
	resp.SubmissionID = &id
	writeJSON(w, http.StatusCreated, resp)
}

// Check handles POST /forms/{id}/check: evaluation without storage.
func (h *SubmissionHandler) Check(w http.ResponseWriter, r *http.Request) {
	formID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	values, err := parseValues(req.Values)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	outcome, err := h.svc.Check(r.Context(), submission.CheckInput{FormID: formID, Values: values})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOutcomeResponse(outcome))
}

// Get handles GET /submissions/{id}.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	sub, err := h.svc.GetSubmission(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// List handles GET /forms/{id}/submissions?limit=&offset=.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	formID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}

	subs, err := h.svc.ListSubmissions(r.Context(), submission.ListSubmissionsInput{
		FormID: formID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]submissionResponse, 0, len(subs))
	for i := range subs {
		resp = append(resp, toSubmissionResponse(&subs[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *SubmissionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, h.log, err)
}

func parseValues(raw map[string]string) (map[uuid.UUID]string, error) {
	values := make(map[uuid.UUID]string, len(raw))
	var errs []domain.FieldError

	for k, v := range raw {
		id, err := uuid.Parse(k)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "values." + k, Message: "field id must be a UUID"})
			continue
		}
		values[id] = v
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return values, nil
}

func toFindingResponses(findings []domain.Finding) []findingResponse {
	out := make([]findingResponse, 0, len(findings))
	for _, f := range findings {
		out = append(out, findingResponse{
			Type:       string(f.Type),
			Issue:      sanitize(f.Issue),
			Correction: sanitizePtr(f.Correction),
			Severity:   string(f.Severity),
		})
	}
	return out
}

func toOutcomeResponse(o domain.SubmissionOutcome) outcomeResponse {
	resp := outcomeResponse{
		Accepted:     o.Accepted,
		Fields:       make([]fieldResultResponse, 0, len(o.Fields)),
		QuizScore:    o.QuizScore,
		QuizMaxScore: o.QuizMaxScore,
		ErrorCount:   o.ErrorCount(),
		NotEvaluated: []string{},
	}

	for _, f := range o.Fields {
		fr := fieldResultResponse{
			FieldID:        f.FieldID.String(),
			SemanticStatus: string(f.Semantic),
			Findings:       toFindingResponses(f.Findings),
		}
		if f.Quiz != nil {
			fr.Quiz = &quizResultResponse{
				Correct:       f.Quiz.Correct,
				PointsAwarded: f.Quiz.PointsAwarded,
				PointsMax:     f.Quiz.PointsMax,
			}
		}
		resp.Fields = append(resp.Fields, fr)
	}

	for _, id := range o.NotEvaluatedFields() {
		resp.NotEvaluated = append(resp.NotEvaluated, id.String())
	}

	return resp
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	resp := submissionResponse{
		ID:              s.ID.String(),
		FormID:          s.FormID.String(),
		ClientAttemptID: sanitizePtr(s.ClientAttemptID),
		QuizScore:       s.QuizScore,
		QuizMaxScore:    s.QuizMaxScore,
		WarningCount:    s.WarningCount,
		SubmittedAt:     s.SubmittedAt,
		Answers:         make([]answerResponse, 0, len(s.Answers)),
	}

	for _, a := range s.Answers {
		resp.Answers = append(resp.Answers, answerResponse{
			FieldID:       a.FieldID.String(),
			Value:         sanitize(a.Value),
			Findings:      toFindingResponses(a.Findings),
			SentimentFlag: a.SentimentFlag,
			EntityFlag:    a.EntityFlag,
			NotEvaluated:  a.NotEvaluated,
			QuizCorrect:   a.QuizCorrect,
			PointsAwarded: a.PointsAwarded,
		})
	}

	return resp
}
