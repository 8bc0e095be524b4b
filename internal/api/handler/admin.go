package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ligafc/matchday/internal/api/middleware"
	"github.com/ligafc/matchday/internal/api/response"
	"github.com/ligafc/matchday/internal/league"
	"github.com/ligafc/matchday/internal/session"
	"github.com/ligafc/matchday/internal/web"
)

// AdminHandler handles the administrator view.
type AdminHandler struct {
	views PageRenderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(views PageRenderer) *AdminHandler {
	return &AdminHandler{views: views}
}

// Page handles GET /admin.
func (h *AdminHandler) Page(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	h.views.Render(w, http.StatusOK, web.PageAdmin, web.AdminPage{
		Layout:  newLayout(r, sess, "admin"),
		Pending: sess.State.Pending(),
	})
}

// Accept handles POST /admin/requests/{id}/accept.
func (h *AdminHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "accept")
}

// Reject handles POST /admin/requests/{id}/reject.
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "reject")
}

func (h *AdminHandler) decide(w http.ResponseWriter, r *http.Request, action string) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", middleware.GetRequestID(r.Context()))
		return
	}

	log := middleware.Logger(r.Context()).With("matchRequestId", id, "action", action)

	var req league.MatchRequest
	if action == "accept" {
		req, err = sess.State.Accept(id)
	} else {
		req, err = sess.State.Reject(id)
	}
	if err != nil {
		if errors.Is(err, league.ErrRequestNotFound) {
			log.Warn("match request not pending")
			sess.AddFlash(session.FlashError, "That request is no longer pending.")
			seeOther(w, r, "/admin")
			return
		}
		log.Error("failed to decide match request", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if action == "accept" {
		log.Info("match request accepted", "challenged", req.Challenged)
		sess.AddFlash(session.FlashSuccess, "Match confirmed and moved to the official list!")
	} else {
		log.Info("match request rejected", "challenged", req.Challenged)
		sess.AddFlash(session.FlashError, "Request rejected and removed.")
	}
	seeOther(w, r, "/admin")
}

// Reset handles POST /admin/reset.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	before := sess.State.Summary()
	sess.State.Reset()

	middleware.Logger(r.Context()).Warn("league state reset",
		"teams", before.Teams, "pending", before.Pending, "confirmed", before.Confirmed)
	sess.AddFlash(session.FlashSuccess, "System reset.")
	seeOther(w, r, "/admin")
}
