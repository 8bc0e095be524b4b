package league

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrTeamFieldsRequired is returned when a registration is missing name, city or contact.
var ErrTeamFieldsRequired = errors.New("team name, city and contact are required")

// ErrUnknownOpponent is returned when a challenge names no challengeable team.
var ErrUnknownOpponent = errors.New("opponent is not a registered team")

// ErrRequestNotFound is returned when no pending match request has the given ID.
var ErrRequestNotFound = errors.New("match request not found")

// FieldError describes a problem with a single input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries the field errors behind a rejected mutation.
// It unwraps to the sentinel error describing the failure.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Option configures a State.
type Option func(*State)

// WithClock overrides the time source used to stamp match requests.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

// State is the in-memory league of a single session. It is not safe for
// concurrent use; callers serialize access.
type State struct {
	sentinel   Team
	teams      []Team
	pending    []MatchRequest
	confirmed  []MatchRequest
	nextTeamID int
	now        func() time.Time
}

// NewState creates a State holding only the sentinel team. The sentinel's ID
// is always SentinelTeamID regardless of the value passed in.
func NewState(sentinel Team, opts ...Option) *State {
	sentinel.ID = SentinelTeamID
	s := &State{
		sentinel: sentinel,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset restores the state to a single sentinel team and no requests.
func (s *State) Reset() {
	s.teams = []Team{s.sentinel}
	s.pending = []MatchRequest{}
	s.confirmed = []MatchRequest{}
	s.nextTeamID = SentinelTeamID + 1
}

// Sentinel returns the operator's own team.
func (s *State) Sentinel() Team {
	return s.sentinel
}

// NextTeamID returns the ID the next registered team will receive.
func (s *State) NextTeamID() int {
	return s.nextTeamID
}

// Teams returns all teams, sentinel first, in registration order.
func (s *State) Teams() []Team {
	return append([]Team(nil), s.teams...)
}

// PublicTeams returns every team except the sentinel.
func (s *State) PublicTeams() []Team {
	out := make([]Team, 0, len(s.teams))
	for _, t := range s.teams {
		if t.ID == SentinelTeamID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Opponents returns the names of the teams the sentinel can challenge.
func (s *State) Opponents() []string {
	public := s.PublicTeams()
	names := make([]string, 0, len(public))
	for _, t := range public {
		names = append(names, t.Name)
	}
	return names
}

// Pending returns the pending match requests in insertion order.
func (s *State) Pending() []MatchRequest {
	return append([]MatchRequest{}, s.pending...)
}

// Confirmed returns the confirmed matches in acceptance order.
func (s *State) Confirmed() []MatchRequest {
	return append([]MatchRequest{}, s.confirmed...)
}

// Summary returns the dashboard counters.
func (s *State) Summary() Summary {
	return Summary{
		Teams:     len(s.teams),
		Confirmed: len(s.confirmed),
		Pending:   len(s.pending),
	}
}

// Snapshot copies every collection at once.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Sentinel:   s.sentinel,
		Teams:      s.Teams(),
		Pending:    s.Pending(),
		Confirmed:  s.Confirmed(),
		NextTeamID: s.nextTeamID,
		Summary:    s.Summary(),
	}
}

// RegisterTeam appends a new team with the next ID. Fields are checked for
// emptiness only; whitespace and duplicate names are accepted.
func (s *State) RegisterTeam(in RegisterTeamInput) (Team, error) {
	var fields []FieldError
	if in.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if in.City == "" {
		fields = append(fields, FieldError{Field: "city", Message: "city is required"})
	}
	if in.Contact == "" {
		fields = append(fields, FieldError{Field: "contact", Message: "contact is required"})
	}
	if len(fields) > 0 {
		return Team{}, &ValidationError{Err: ErrTeamFieldsRequired, Fields: fields}
	}

	t := Team{
		ID:      s.nextTeamID,
		Name:    in.Name,
		City:    in.City,
		Contact: in.Contact,
	}
	s.teams = append(s.teams, t)
	s.nextTeamID++

	return t, nil
}

// Challenge records a pending match request from the sentinel team to the
// named opponent.
func (s *State) Challenge(in ChallengeInput) (MatchRequest, error) {
	if !s.isOpponent(in.Opponent) {
		return MatchRequest{}, &ValidationError{
			Err:    ErrUnknownOpponent,
			Fields: []FieldError{{Field: "opponent", Message: "opponent must be a registered team"}},
		}
	}

	req := MatchRequest{
		ID:               uuid.New(),
		Challenger:       s.sentinel.Name,
		Challenged:       in.Opponent,
		ProposedDate:     in.Date,
		ProposedLocation: in.Location,
		Status:           StatusPending,
		CreatedAt:        s.now().UTC(),
	}
	s.pending = append(s.pending, req)

	return req, nil
}

// Accept moves the pending request with the given ID to the confirmed matches.
func (s *State) Accept(id uuid.UUID) (MatchRequest, error) {
	req, err := s.take(id)
	if err != nil {
		return MatchRequest{}, err
	}

	decided := s.now().UTC()
	req.Status = StatusConfirmed
	req.DecidedAt = &decided
	s.confirmed = append(s.confirmed, req)

	return req, nil
}

// Reject discards the pending request with the given ID.
func (s *State) Reject(id uuid.UUID) (MatchRequest, error) {
	return s.take(id)
}

// take removes a pending request by ID and returns it.
func (s *State) take(id uuid.UUID) (MatchRequest, error) {
	for i, req := range s.pending {
		if req.ID != id {
			continue
		}
		s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
		return req, nil
	}
	return MatchRequest{}, fmt.Errorf("%w: %s", ErrRequestNotFound, id)
}

func (s *State) isOpponent(name string) bool {
	for _, t := range s.teams {
		if t.ID != SentinelTeamID && t.Name == name {
			return true
		}
	}
	return false
}
