package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/internal/service/form"
	"github.com/heartmarshall/formcheck-backend/pkg/ctxutil"
)

// formService defines the minimal interface needed by FormHandler.
type formService interface {
	CreateForm(ctx context.Context, input form.CreateFormInput) (*domain.Form, error)
	GetForm(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	ListForms(ctx context.Context, input form.ListFormsInput) ([]domain.Form, error)
	DeleteForm(ctx context.Context, id uuid.UUID) error
}

// FormHandler serves form authoring endpoints.
type FormHandler struct {
	svc formService
	log *slog.Logger
}

// NewFormHandler creates a FormHandler.
func NewFormHandler(svc formService, logger *slog.Logger) *FormHandler {
	return &FormHandler{svc: svc, log: logger.With("handler", "form")}
}

type formResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Fields      []fieldResponse `json:"fields"`
	CreatedAt   time.Time       `json:"created_at"`
}

type fieldResponse struct {
	ID                    string        `json:"id"`
	Position              int           `json:"position"`
	Label                 string        `json:"label"`
	Type                  string        `json:"type"`
	Required              bool          `json:"required"`
	SemanticCheck         bool          `json:"semantic_check"`
	ExpectedEntityHint    string        `json:"expected_entity_hint,omitempty"`
	ExpectedSentimentHint string        `json:"expected_sentiment_hint,omitempty"`
	Quiz                  *quizResponse `json:"quiz,omitempty"`
}

// quizResponse omits the answer key unless the caller owns the form.
type quizResponse struct {
	Kind          string   `json:"kind"`
	Options       []string `json:"options"`
	Points        int      `json:"points"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	MatchMode     string   `json:"match_mode,omitempty"`
}

// Create handles POST /forms.
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req form.CreateFormInput
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.svc.CreateForm(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFormResponse(f, true))
}

// Get handles GET /forms/{id}. Anyone may fetch a form; only its owner
// sees the quiz answer keys.
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	f, err := h.svc.GetForm(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	callerID, authed := ctxutil.AuthorIDFromCtx(r.Context())
	writeJSON(w, http.StatusOK, toFormResponse(f, authed && callerID == f.OwnerID))
}

// List handles GET /forms?limit=&offset=.
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}

	forms, err := h.svc.ListForms(r.Context(), form.ListFormsInput{Limit: limit, Offset: offset})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]formResponse, 0, len(forms))
	for i := range forms {
		resp = append(resp, toFormResponse(&forms[i], true))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /forms/{id}.
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteForm(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FormHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, h.log, err)
}

func toFormResponse(f *domain.Form, withAnswerKey bool) formResponse {
	resp := formResponse{
		ID:          f.ID.String(),
		Title:       sanitize(f.Title),
		Description: sanitize(f.Description),
		Fields:      make([]fieldResponse, 0, len(f.Fields)),
		CreatedAt:   f.CreatedAt,
	}

	for _, fd := range f.Fields {
		fr := fieldResponse{
			ID:                    fd.ID.String(),
			Position:              fd.Position,
			Label:                 sanitize(fd.Label),
			Type:                  string(fd.Type),
			Required:              fd.Required,
			SemanticCheck:         fd.SemanticCheck,
			ExpectedEntityHint:    string(fd.ExpectedEntityHint),
			ExpectedSentimentHint: fd.ExpectedSentimentHint,
		}
		if q := fd.Quiz; q != nil {
			fr.Quiz = &quizResponse{
				Kind:    string(q.Kind),
				Options: sanitizeAll(q.Options),
				Points:  q.Points,
			}
			if withAnswerKey {
				fr.Quiz.CorrectAnswer = sanitize(q.CorrectAnswer)
				fr.Quiz.MatchMode = string(q.MatchMode)
			}
		}
		resp.Fields = append(resp.Fields, fr)
	}

	return resp
}
