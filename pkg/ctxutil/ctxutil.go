// Package ctxutil carries request-scoped identity and tracing values.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	authorIDKey ctxKey = iota
	requestIDKey
)

// WithAuthorID stores the authenticated form author's id.
func WithAuthorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, authorIDKey, id)
}

// AuthorIDFromCtx returns the authenticated author's id. Respondents are
// anonymous, so ok is false for them and for a nil id.
func AuthorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(authorIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request ID, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
