//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/formcheck-backend/internal/adapter/cache"
	"github.com/heartmarshall/formcheck-backend/internal/adapter/postgres"
	formrepo "github.com/heartmarshall/formcheck-backend/internal/adapter/postgres/form"
	submissionrepo "github.com/heartmarshall/formcheck-backend/internal/adapter/postgres/submission"
	"github.com/heartmarshall/formcheck-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/formcheck-backend/internal/adapter/provider/disabled"
	authpkg "github.com/heartmarshall/formcheck-backend/internal/auth"
	"github.com/heartmarshall/formcheck-backend/internal/config"
	"github.com/heartmarshall/formcheck-backend/internal/service/form"
	"github.com/heartmarshall/formcheck-backend/internal/service/submission"
	"github.com/heartmarshall/formcheck-backend/internal/service/validation"
	"github.com/heartmarshall/formcheck-backend/internal/transport/middleware"
	"github.com/heartmarshall/formcheck-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper). Signals are disabled and
// attempt deduplication relies on the database index.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	forms := formrepo.New(pool)
	submissions := submissionrepo.New(pool)

	engine := validation.NewAggregator(disabled.NewProvider(), config.DefaultValidation(), logger)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	formService := form.NewService(logger, forms, txm)
	submissionService := submission.NewService(logger, forms, submissions, engine, cache.NoopGuard{}, txm)

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler("test-version", rest.Component{Name: "database", Pinger: pool}),
		Forms:       rest.NewFormHandler(formService, logger),
		Submissions: rest.NewSubmissionHandler(submissionService, logger),
	}, nil)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,Idempotency-Key",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.MaxBody(1<<20),
		middleware.Auth(jwtMgr, logger),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// newAuthor returns a fresh author id and a valid access token for it.
func (ts *testServer) newAuthor(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	id := uuid.New()
	tok, err := ts.jwt.GenerateAccessToken(id)
	require.NoError(t, err)
	return id, tok
}

// do sends a JSON request and decodes the response body into out when out
// is non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()
	return ts.doWithHeaders(t, method, path, token, nil, body, out)
}

func (ts *testServer) doWithHeaders(t *testing.T, method, path, token string, headers map[string]string, body any, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// quizFormBody is a form with a required employer field, an email field and
// a two-point multiple-choice question.
func quizFormBody() map[string]any {
	return map[string]any{
		"title":       "E2E Onboarding",
		"description": "integration",
		"fields": []map[string]any{
			{"label": "Employer", "type": "text", "required": true, "semantic_check": true, "expected_entity_hint": "organization"},
			{"label": "Email", "type": "email", "required": true},
			{"label": "Capital of France?", "type": "text", "quiz": map[string]any{
				"kind":           "multiple_choice",
				"options":        []string{"Paris", "Rome"},
				"correct_answer": "Paris",
				"points":         2,
			}},
		},
	}
}

// createForm creates quizFormBody as the given author and returns the
// decoded response.
func (ts *testServer) createForm(t *testing.T, token string) createdForm {
	t.Helper()

	var f createdForm
	status := ts.do(t, http.MethodPost, "/forms", token, quizFormBody(), &f)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, f.Fields, 3)
	return f
}

type createdForm struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Fields []struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Quiz  *struct {
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correct_answer"`
		} `json:"quiz"`
	} `json:"fields"`
}

type outcome struct {
	Accepted     bool    `json:"accepted"`
	SubmissionID *string `json:"submission_id"`
	QuizScore    *int    `json:"quiz_score"`
	QuizMaxScore int     `json:"quiz_max_score"`
	ErrorCount   int     `json:"error_count"`
	Fields       []struct {
		FieldID        string `json:"field_id"`
		SemanticStatus string `json:"semantic_status"`
		Findings       []struct {
			Type       string  `json:"type"`
			Issue      string  `json:"issue"`
			Correction *string `json:"correction"`
			Severity   string  `json:"severity"`
		} `json:"findings"`
	} `json:"fields"`
}
