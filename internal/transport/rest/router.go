package rest

import "net/http"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Forms       *FormHandler
	Submissions *SubmissionHandler
}

// NewRouter mounts all endpoints. limitSubmit wraps the public evaluation
// endpoints (submit and check).
func NewRouter(h Handlers, limitSubmit func(http.Handler) http.Handler) *http.ServeMux {
	if limitSubmit == nil {
		limitSubmit = func(next http.Handler) http.Handler { return next }
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /forms", h.Forms.Create)
	mux.HandleFunc("GET /forms", h.Forms.List)
	mux.HandleFunc("GET /forms/{id}", h.Forms.Get)
	mux.HandleFunc("DELETE /forms/{id}", h.Forms.Delete)

	mux.Handle("POST /forms/{id}/submissions", limitSubmit(http.HandlerFunc(h.Submissions.Submit)))
	mux.Handle("POST /forms/{id}/check", limitSubmit(http.HandlerFunc(h.Submissions.Check)))
	mux.HandleFunc("GET /forms/{id}/submissions", h.Submissions.List)
	mux.HandleFunc("GET /submissions/{id}", h.Submissions.Get)

	return mux
}
