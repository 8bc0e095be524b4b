package handler

import (
	"net/http"
	"time"

	"github.com/ligafc/matchday/internal/api/middleware"
	"github.com/ligafc/matchday/internal/api/response"
	"github.com/ligafc/matchday/internal/league"
)

type teamResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Contact string `json:"contact"`
}

type matchRequestResponse struct {
	ID               string  `json:"id"`
	Challenger       string  `json:"challenger"`
	Challenged       string  `json:"challenged"`
	ProposedDate     string  `json:"proposedDate"`
	ProposedLocation string  `json:"proposedLocation"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"createdAt"`
	DecidedAt        *string `json:"decidedAt,omitempty"`
}

type summaryResponse struct {
	Teams     int `json:"teams"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}

type leagueResponse struct {
	Sentinel   teamResponse           `json:"sentinel"`
	Teams      []teamResponse         `json:"teams"`
	Pending    []matchRequestResponse `json:"pending"`
	Confirmed  []matchRequestResponse `json:"confirmed"`
	NextTeamID int                    `json:"nextTeamId"`
	Summary    summaryResponse        `json:"summary"`
}

func toTeamResponse(t league.Team) teamResponse {
	return teamResponse{
		ID:      t.ID,
		Name:    t.Name,
		City:    t.City,
		Contact: t.Contact,
	}
}

func toMatchRequestResponse(m league.MatchRequest) matchRequestResponse {
	resp := matchRequestResponse{
		ID:               m.ID.String(),
		Challenger:       m.Challenger,
		Challenged:       m.Challenged,
		ProposedDate:     m.ProposedDate,
		ProposedLocation: m.ProposedLocation,
		Status:           string(m.Status),
		CreatedAt:        m.CreatedAt.UTC().Format(time.RFC3339),
	}
	if m.DecidedAt != nil {
		decided := m.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &decided
	}
	return resp
}

func toMatchRequestResponses(ms []league.MatchRequest) []matchRequestResponse {
	items := make([]matchRequestResponse, 0, len(ms))
	for _, m := range ms {
		items = append(items, toMatchRequestResponse(m))
	}
	return items
}

// LeagueHandler exposes the session's league state as JSON.
type LeagueHandler struct{}

// NewLeagueHandler creates a new LeagueHandler.
func NewLeagueHandler() *LeagueHandler {
	return &LeagueHandler{}
}

// ServeHTTP handles GET /api/v1/league.
func (h *LeagueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	snap := sess.State.Snapshot()

	teams := make([]teamResponse, 0, len(snap.Teams))
	for _, t := range snap.Teams {
		teams = append(teams, toTeamResponse(t))
	}

	response.Success(w, http.StatusOK, leagueResponse{
		Sentinel:   toTeamResponse(snap.Sentinel),
		Teams:      teams,
		Pending:    toMatchRequestResponses(snap.Pending),
		Confirmed:  toMatchRequestResponses(snap.Confirmed),
		NextTeamID: snap.NextTeamID,
		Summary: summaryResponse{
			Teams:     snap.Summary.Teams,
			Confirmed: snap.Summary.Confirmed,
			Pending:   snap.Summary.Pending,
		},
	}, middleware.GetRequestID(r.Context()))
}
