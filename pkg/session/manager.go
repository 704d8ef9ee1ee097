// Package session keeps per-user conversation state in memory: the threat
// score, the mode state machine and the bounded history rings that feed
// scoring and reporting.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/honeybotlabs/honeybot/pkg/models"
)

// Manager manages sessions in memory, one per user
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the user's session, creating it on first contact.
// The second return value reports whether a new session was started.
func (m *Manager) GetOrCreate(userID string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[userID]
	m.mu.RUnlock()
	if ok {
		return s, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s, false
	}

	now := time.Now()
	s = &Session{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		Mode:        models.ModeNormal,
		StartedAt:   now,
		UpdatedAt:   now,
		attackTypes: make(map[string]bool),
	}
	m.sessions[userID] = s
	return s, true
}

// Get retrieves a session by user ID
func (m *Manager) Get(userID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("session not found for user: %s", userID)
	}
	return s, nil
}

// List returns safe copies of all sessions
func (m *Manager) List() []Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s.Clone())
	}
	return sessions
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Delete removes a session
func (m *Manager) Delete(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[userID]; !ok {
		return fmt.Errorf("session not found for user: %s", userID)
	}
	delete(m.sessions, userID)
	return nil
}

// SweepIdle removes sessions whose last message is older than idleFor and
// returns copies of the removed sessions so callers can report their end.
func (m *Manager) SweepIdle(idleFor time.Duration, now time.Time) []Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed []Session
	for userID, s := range m.sessions {
		c := s.Clone()
		last := c.LastMessageAt
		if last.IsZero() {
			last = c.StartedAt
		}
		if now.Sub(last) >= idleFor {
			removed = append(removed, c)
			delete(m.sessions, userID)
		}
	}
	return removed
}
