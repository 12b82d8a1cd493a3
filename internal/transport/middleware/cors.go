package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/formcheck-backend/internal/config"
)

// originPolicy is the parsed form of CORSConfig.AllowedOrigins.
type originPolicy struct {
	any     bool
	origins map[string]struct{}
}

func parseOrigins(list string) originPolicy {
	p := originPolicy{origins: make(map[string]struct{})}
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			p.any = true
		default:
			p.origins[o] = struct{}{}
		}
	}
	return p
}

func (p originPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if p.any {
		return true
	}
	_, ok := p.origins[origin]
	return ok
}

// CORS lets browser-embedded forms reach the API. The matching origin is
// echoed rather than "*" so that credentialed author requests still work.
// Only real preflights (OPTIONS carrying Access-Control-Request-Method) are
// answered here; any other OPTIONS request falls through to the router.
func CORS(cfg config.CORSConfig) Middleware {
	policy := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)
	exposed := strings.Join([]string{RequestIDHeader, "Retry-After"}, ",")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := policy.allows(origin)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposed)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			if allowed {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
