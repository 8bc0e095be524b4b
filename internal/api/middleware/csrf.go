package middleware

import (
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/ligafc/matchday/internal/api/response"
)

// CSRFFieldName is the form field carrying the CSRF token.
const CSRFFieldName = "csrf_token"

// CSRF is middleware that rejects unsafe requests lacking a valid token.
// When secure is false requests are treated as plain HTTP, which skips the
// Referer check that only applies over TLS.
func CSRF(authKey []byte, secure bool) func(http.Handler) http.Handler {
	protect := csrf.Protect(authKey,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.FieldName(CSRFFieldName),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !secure {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	Logger(r.Context()).Warn("csrf check failed", "reason", csrf.FailureReason(r), "path", r.URL.Path)
	response.Err(w, http.StatusForbidden, "FORBIDDEN", "Missing or invalid CSRF token", GetRequestID(r.Context()))
}
