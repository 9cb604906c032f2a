// Package session holds per-browsing-session state. Each session carries at
// most one uploaded dataset in a single slot; a new upload replaces the
// slot wholesale. Sessions are identified by a UUID cookie and live for the
// browsing session, with idle ones lazily pruned server-side.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/dataset"
)

// DefaultTTL is how long an idle session survives before lazy pruning.
const DefaultTTL = time.Hour

// Session is the state of one browsing session.
type Session struct {
	ID       string
	Dataset  *dataset.Dataset
	LastSeen time.Time
}

// HasDataset reports whether an upload has populated the slot.
func (s *Session) HasDataset() bool {
	return s.Dataset != nil
}

// SetDataset replaces the slot wholesale. Prior contents, including any
// attached prediction columns, are discarded.
func (s *Session) SetDataset(ds *dataset.Dataset) {
	s.Dataset = ds
}

// Manager keys live sessions by ID. The mutex guards cross-session map
// access only; within one session all work is a single synchronous render.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*Session
}

// NewManager returns a manager with the given idle TTL; ttl <= 0 uses
// DefaultTTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for id, minting a fresh one when id is
// empty or unknown. The returned session's ID is what the cookie must
// carry.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()

	if s, ok := m.sessions[id]; ok {
		s.LastSeen = m.now()
		return s
	}
	s := &Session{ID: uuid.NewString(), LastSeen: m.now()}
	m.sessions[s.ID] = s
	return s
}

// Len returns the live session count.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) pruneLocked() {
	cutoff := m.now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.LastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
