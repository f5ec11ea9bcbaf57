// Package session keeps per-browser state between requests. Sessions
// live only in process memory; they disappear on restart, explicit
// reset, or TTL expiry.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL bounds how long an idle session survives.
const DefaultTTL = 30 * time.Minute

// Manager maps session-cookie ids to State. It is the only structure
// shared across sessions, so all map access is locked.
type Manager struct {
	mu         sync.RWMutex
	sessions   map[string]*State
	cookieName string
	ttl        time.Duration
}

// NewManager builds a manager issuing cookies under the given name.
// A non-positive ttl falls back to DefaultTTL.
func NewManager(cookieName string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions:   make(map[string]*State),
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// Ensure returns the live session for the request, creating a fresh one
// (and setting its cookie) when none exists or the old one expired.
func (m *Manager) Ensure(w http.ResponseWriter, r *http.Request) *State {
	if c, err := r.Cookie(m.cookieName); err == nil {
		if state := m.lookup(c.Value); state != nil {
			return state
		}
	}
	return m.create(w)
}

// lookup returns the state for an id, expiring it lazily when idle too
// long.
func (m *Manager) lookup(id string) *State {
	now := time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return nil
	}
	if now.Sub(state.lastSeen) > m.ttl {
		delete(m.sessions, id)
		return nil
	}
	state.lastSeen = now
	return state
}

func (m *Manager) create(w http.ResponseWriter) *State {
	id := uuid.NewString()
	state := NewState()

	m.mu.Lock()
	m.sessions[id] = state
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}

// Destroy drops the request's session entirely and expires its cookie.
// The next request starts from empty state.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(m.cookieName)
	if err != nil {
		return
	}

	m.mu.Lock()
	delete(m.sessions, c.Value)
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
