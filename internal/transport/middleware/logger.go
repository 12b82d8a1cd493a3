package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/formcheck-backend/pkg/ctxutil"
)

// probePaths are polled by orchestrators and logged at debug level.
var probePaths = map[string]bool{"/live": true, "/ready": true}

// requestLevel maps a finished request to its log level. 4xx other than 429
// stays at info.
func requestLevel(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status == http.StatusTooManyRequests:
		return slog.LevelWarn
	case probePaths[path] && status < 300:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, response size, duration and the request and author IDs.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if authorID, ok := ctxutil.AuthorIDFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("author_id", authorID.String()))
			}

			logger.LogAttrs(r.Context(), requestLevel(r.URL.Path, sw.status), "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code and size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
