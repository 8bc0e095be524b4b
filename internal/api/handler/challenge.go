package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ligafc/matchday/internal/api/middleware"
	"github.com/ligafc/matchday/internal/api/validation"
	"github.com/ligafc/matchday/internal/league"
	"github.com/ligafc/matchday/internal/session"
	"github.com/ligafc/matchday/internal/web"
)

// ChallengeHandler handles the challenge request view.
type ChallengeHandler struct {
	views PageRenderer
	now   Clock
}

// NewChallengeHandler creates a new ChallengeHandler. A nil clock uses time.Now.
func NewChallengeHandler(views PageRenderer, now Clock) *ChallengeHandler {
	if now == nil {
		now = time.Now
	}
	return &ChallengeHandler{views: views, now: now}
}

// Form handles GET /challenges.
func (h *ChallengeHandler) Form(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	h.render(w, r, sess, http.StatusOK, league.ChallengeInput{}, nil)
}

// Submit handles POST /challenges.
func (h *ChallengeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	if !parseForm(w, r) {
		return
	}

	input := league.ChallengeInput{
		Opponent: r.PostForm.Get("opponent"),
		Date:     r.PostForm.Get("date"),
		Location: r.PostForm.Get("location"),
	}

	fieldErrors := validation.ValidateChallengeRequest(validation.ChallengeRequest{
		Opponent: input.Opponent,
		Date:     input.Date,
		Location: input.Location,
	}, h.now())
	if len(fieldErrors) > 0 {
		h.render(w, r, sess, http.StatusUnprocessableEntity, input, validation.ToMap(fieldErrors))
		return
	}

	req, err := sess.State.Challenge(input)
	if err != nil {
		var verr *league.ValidationError
		if errors.As(err, &verr) {
			h.render(w, r, sess, http.StatusUnprocessableEntity, input, leagueFieldErrors(verr))
			return
		}
		middleware.Logger(r.Context()).Error("failed to create match request", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	middleware.Logger(r.Context()).Info("match request created",
		"matchRequestId", req.ID, "challenged", req.Challenged, "date", req.ProposedDate)
	sess.AddFlash(session.FlashInfo, fmt.Sprintf("Request sent to %s. Awaiting administrator confirmation.", req.Challenged))
	seeOther(w, r, "/challenges")
}

func (h *ChallengeHandler) render(w http.ResponseWriter, r *http.Request, sess *session.Session, status int, input league.ChallengeInput, errs map[string]string) {
	h.views.Render(w, status, web.PageChallenge, web.ChallengePage{
		Layout:    newLayout(r, sess, "challenges"),
		Opponents: sess.State.Opponents(),
		Form:      input,
		MinDate:   h.now().Format(validation.DateLayout),
		Errors:    errs,
	})
}
