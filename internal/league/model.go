package league

import (
	"time"

	"github.com/google/uuid"
)

// SentinelTeamID is the ID of the operator's own team, present in every state.
const SentinelTeamID = 1

// Status is the lifecycle stage of a match request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// Team is a registered league team.
type Team struct {
	ID      int
	Name    string
	City    string
	Contact string
}

// MatchRequest is a challenge sent by the sentinel team to another team.
// Once accepted it is kept as a confirmed match.
type MatchRequest struct {
	ID               uuid.UUID
	Challenger       string
	Challenged       string
	ProposedDate     string // YYYY-MM-DD
	ProposedLocation string
	Status           Status
	CreatedAt        time.Time
	DecidedAt        *time.Time
}

// Summary holds the counters shown on the dashboard.
type Summary struct {
	Teams     int
	Confirmed int
	Pending   int
}

// Snapshot is a point-in-time copy of a whole State.
type Snapshot struct {
	Sentinel   Team
	Teams      []Team
	Pending    []MatchRequest
	Confirmed  []MatchRequest
	NextTeamID int
	Summary    Summary
}

// RegisterTeamInput holds the fields of a team registration form.
type RegisterTeamInput struct {
	Name    string
	City    string
	Contact string
}

// ChallengeInput holds the fields of a challenge form.
type ChallengeInput struct {
	Opponent string
	Date     string
	Location string
}
