package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth attaches the author ID of a valid bearer token to the request context.
// Requests without a bearer token pass through anonymously; a token that
// fails validation is rejected with 401.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			authorID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := ctxutil.WithAuthorID(r.Context(), authorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
