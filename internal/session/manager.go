package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ligafc/matchday/internal/league"
)

// StateFactory builds the league state of a new session.
type StateFactory func() *league.State

// Option configures a Manager.
type Option func(*Manager)

// WithTTL sets how long an idle session is kept. Zero keeps sessions forever.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.ttl = ttl
	}
}

// WithMaxSessions caps the number of live sessions. Zero means no cap.
func WithMaxSessions(n int) Option {
	return func(m *Manager) {
		m.max = n
	}
}

// WithClock overrides the time source used for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager owns every live session.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	newState StateFactory
	ttl      time.Duration
	max      int
	now      func() time.Time
}

// NewManager creates an empty Manager.
func NewManager(newState StateFactory, opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		newState: newState,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the live session with the given ID and marks it as used.
// Expired sessions are dropped and reported as missing.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	now := m.now()
	if m.expired(s, now) {
		delete(m.sessions, id)
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

// Create starts a new session with a fresh league state. When the manager is
// full the least recently used session is evicted first.
func (m *Manager) Create() *Session {
	s := &Session{
		ID:    uuid.New().String(),
		State: m.newState(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.max > 0 && len(m.sessions) >= m.max {
		m.evictOldest()
	}
	s.lastSeen = m.now()
	m.sessions[s.ID] = s

	slog.Debug("session created", "sessionId", s.ID)
	return s
}

// Delete ends a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes every expired session and returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Start runs Sweep on every tick of interval. It blocks until ctx is cancelled.
func (m *Manager) Start(ctx context.Context, interval time.Duration) {
	slog.Info("session sweeper started", "interval", interval.String(), "ttl", m.ttl.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				slog.Info("expired sessions removed", "count", n, "live", m.Count())
			}
		}
	}
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.lastSeen) > m.ttl
}

// evictOldest must be called with m.mu held.
func (m *Manager) evictOldest() {
	var oldest *Session
	for _, s := range m.sessions {
		if oldest == nil || s.lastSeen.Before(oldest.lastSeen) {
			oldest = s
		}
	}
	if oldest != nil {
		delete(m.sessions, oldest.ID)
		slog.Warn("session limit reached; evicted least recently used session", "sessionId", oldest.ID, "max", m.max)
	}
}
