package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"github.com/ligafc/matchday/internal/api/middleware"
	"github.com/ligafc/matchday/internal/api/response"
	"github.com/ligafc/matchday/internal/session"
	"github.com/ligafc/matchday/internal/web"
)

// maxFormBytes caps the size of submitted forms.
const maxFormBytes = 1 << 20

// PageRenderer renders HTML views.
type PageRenderer interface {
	Render(w http.ResponseWriter, status int, page string, data any)
}

// Clock returns the current time.
type Clock func() time.Time

// currentSession returns the request's session or writes a 500 when the
// session middleware did not run.
func currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		middleware.Logger(r.Context()).Error("no session in request context", "path", r.URL.Path)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Session unavailable", middleware.GetRequestID(r.Context()))
		return nil, false
	}
	return sess, true
}

// newLayout consumes the session's flashes.
func newLayout(r *http.Request, sess *session.Session, active string) web.Layout {
	return web.Layout{
		Active:    active,
		Flashes:   sess.PopFlashes(),
		CSRFField: csrf.TemplateField(r),
	}
}

// parseForm limits and parses a urlencoded form body, writing a 400 on failure.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_FORM", "Request body must be a valid form", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

func seeOther(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
