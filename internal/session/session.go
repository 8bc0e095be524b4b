package session

import (
	"sync"
	"time"

	"github.com/ligafc/matchday/internal/league"
)

// Flash kinds, matching the alert styles of the UI.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// Session is one browser session and the league state it owns.
// Callers hold Lock for the duration of a request.
type Session struct {
	ID    string
	State *league.State

	mu       sync.Mutex
	flashes  []Flash
	lastSeen time.Time
}

// Lock serializes requests made within this session.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the request lock.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// AddFlash queues a message for the next render.
func (s *Session) AddFlash(kind, message string) {
	s.flashes = append(s.flashes, Flash{Kind: kind, Message: message})
}

// PopFlashes returns and clears the queued messages.
func (s *Session) PopFlashes() []Flash {
	out := s.flashes
	s.flashes = nil
	return out
}
