package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ligafc/matchday/internal/api/response"
)

// Recovery is middleware that recovers from panics. Browsers get a plain
// error page; every other client gets the JSON error envelope.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(r.Context())
				slog.Error("panic recovered", "error", err, "requestId", requestID, "path", r.URL.Path)
				if wantsHTML(r) {
					http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
					return
				}
				response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", requestID)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}
