package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/ligafc/matchday/internal/session"
)

// SessionCookieName is the cookie carrying the signed session ID.
const SessionCookieName = "matchday_session"

const sessionKey contextKey = "session"

// Session is middleware that resolves the session cookie to a live session,
// creating a new one when the cookie is missing, invalid or expired. The
// session is locked until the request completes, so requests within one
// session never interleave.
func Session(mgr *session.Manager, codec *securecookie.SecureCookie, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := lookupSession(r, mgr, codec)
			if sess == nil {
				sess = mgr.Create()
				encoded, err := codec.Encode(SessionCookieName, sess.ID)
				if err != nil {
					Logger(r.Context()).Error("failed to encode session cookie", "error", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    encoded,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			sess.Lock()
			defer sess.Unlock()

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func lookupSession(r *http.Request, mgr *session.Manager, codec *securecookie.SecureCookie) *session.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	var id string
	if err := codec.Decode(SessionCookieName, cookie.Value, &id); err != nil {
		Logger(r.Context()).Debug("discarding invalid session cookie", "error", err)
		return nil
	}
	sess, ok := mgr.Get(id)
	if !ok {
		return nil
	}
	return sess
}

// GetSession retrieves the current session from the context.
func GetSession(ctx context.Context) *session.Session {
	if sess, ok := ctx.Value(sessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}
