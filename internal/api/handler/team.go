package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ligafc/matchday/internal/api/middleware"
	"github.com/ligafc/matchday/internal/api/validation"
	"github.com/ligafc/matchday/internal/league"
	"github.com/ligafc/matchday/internal/session"
	"github.com/ligafc/matchday/internal/web"
)

// TeamHandler handles the team registration view.
type TeamHandler struct {
	views PageRenderer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(views PageRenderer) *TeamHandler {
	return &TeamHandler{views: views}
}

// Form handles GET /teams.
func (h *TeamHandler) Form(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	h.views.Render(w, http.StatusOK, web.PageTeams, web.TeamsPage{
		Layout: newLayout(r, sess, "teams"),
	})
}

// Register handles POST /teams.
func (h *TeamHandler) Register(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	if !parseForm(w, r) {
		return
	}

	input := league.RegisterTeamInput{
		Name:    r.PostForm.Get("name"),
		City:    r.PostForm.Get("city"),
		Contact: r.PostForm.Get("contact"),
	}

	fieldErrors := validation.ValidateRegisterTeamRequest(validation.RegisterTeamRequest{
		Name:    input.Name,
		City:    input.City,
		Contact: input.Contact,
	})
	if len(fieldErrors) > 0 {
		h.renderInvalid(w, r, sess, input, validation.ToMap(fieldErrors))
		return
	}

	t, err := sess.State.RegisterTeam(input)
	if err != nil {
		var verr *league.ValidationError
		if errors.As(err, &verr) {
			h.renderInvalid(w, r, sess, input, leagueFieldErrors(verr))
			return
		}
		middleware.Logger(r.Context()).Error("failed to register team", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	middleware.Logger(r.Context()).Info("team registered", "teamId", t.ID, "name", t.Name)
	sess.AddFlash(session.FlashSuccess, fmt.Sprintf("Team %s registered successfully! You can now be challenged.", t.Name))
	seeOther(w, r, "/teams")
}

func (h *TeamHandler) renderInvalid(w http.ResponseWriter, r *http.Request, sess *session.Session, input league.RegisterTeamInput, errs map[string]string) {
	sess.AddFlash(session.FlashError, "Please fill in all fields.")
	h.views.Render(w, http.StatusUnprocessableEntity, web.PageTeams, web.TeamsPage{
		Layout: newLayout(r, sess, "teams"),
		Form:   input,
		Errors: errs,
	})
}

func leagueFieldErrors(verr *league.ValidationError) map[string]string {
	m := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		m[f.Field] = f.Message
	}
	return m
}
