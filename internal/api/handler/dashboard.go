package handler

import (
	"net/http"

	"github.com/ligafc/matchday/internal/web"
)

// DashboardHandler serves the league overview.
type DashboardHandler struct {
	views PageRenderer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(views PageRenderer) *DashboardHandler {
	return &DashboardHandler{views: views}
}

// ServeHTTP handles GET /.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	state := sess.State
	h.views.Render(w, http.StatusOK, web.PageDashboard, web.DashboardPage{
		Layout:    newLayout(r, sess, "dashboard"),
		Summary:   state.Summary(),
		Confirmed: state.Confirmed(),
		Teams:     state.PublicTeams(),
	})
}
