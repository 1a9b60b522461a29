package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"adsnap/internal/infra"
)

const maxRequestIDLength = 128

// RequestID reuses a sane inbound X-Request-ID or mints a new one, echoes it
// back and stores it on the context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if rid == "" || len(rid) > maxRequestIDLength {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(infra.WithRequestID(r.Context(), rid)))
	})
}
