package v1

import (
	"crypto/subtle"
	"net/http"

	"github.com/vmunix/arrlist/internal/catalog"
)

// requireAPIKey rejects requests without the configured key in the X-Api-Key
// header or the apikey query parameter. An empty key disables the check.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	if s.cfg.APIKey == "" {
		return next
	}
	want := []byte(s.cfg.APIKey)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get("X-Api-Key")
		if got == "" {
			got = r.URL.Query().Get("apikey")
		}
		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireNotifier wraps a handler and returns 503 if notifications are not configured.
func (s *Server) requireNotifier(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Notifier == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Notifications not configured")
			return
		}
		next(w, r)
	}
}

// targetParam parses the target query parameter, writing a 400 on failure.
func targetParam(w http.ResponseWriter, r *http.Request) (catalog.Kind, bool) {
	raw := r.URL.Query().Get("target")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "MISSING_TARGET", "target is required (movie or series)")
		return "", false
	}
	kind, err := catalog.ParseKind(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TARGET", err.Error())
		return "", false
	}
	return kind, true
}
