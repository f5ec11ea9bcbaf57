package session

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/zhouzirui/kontak/internal/model/contact"
)

// FormState is a one-shot snapshot of a failed submission: field errors
// plus the normalized values the user typed, held for exactly one
// redisplay.
type FormState struct {
	Errors map[string]string
	Old    contact.Fields
	// EditID carries the target contact id for a failed update.
	EditID string
}

// State is everything one browser session owns: its contact list, its
// anti-forgery token, the session start time, and any pending form
// redisplay. Nothing here is shared across sessions.
type State struct {
	Contacts  *contact.Store
	StartedAt time.Time
	CSRFToken string

	pendingAdd  *FormState
	pendingEdit *FormState

	lastSeen time.Time
}

// NewState initializes a fresh session with an empty contact list and a
// newly minted anti-forgery token.
func NewState() *State {
	now := time.Now().UTC()
	return &State{
		Contacts:  contact.NewStore(),
		StartedAt: now,
		CSRFToken: newCSRFToken(),
		lastSeen:  now,
	}
}

// newCSRFToken returns 16 random bytes hex-encoded.
func newCSRFToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is unusable anyway.
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// VerifyCSRF compares the submitted token against the session's in
// constant time.
func (s *State) VerifyCSRF(token string) bool {
	if token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.CSRFToken), []byte(token)) == 1
}

// StashAddForm records a failed add submission for one redisplay.
func (s *State) StashAddForm(errors map[string]string, old contact.Fields) {
	s.pendingAdd = &FormState{Errors: errors, Old: old}
}

// TakeAddForm returns and clears the pending add-form state, if any.
func (s *State) TakeAddForm() *FormState {
	fs := s.pendingAdd
	s.pendingAdd = nil
	return fs
}

// StashEditForm records a failed update submission for one redisplay on
// the edit view of the given contact.
func (s *State) StashEditForm(errors map[string]string, old contact.Fields, id string) {
	s.pendingEdit = &FormState{Errors: errors, Old: old, EditID: id}
}

// TakeEditForm returns and clears the pending edit-form state, if any.
func (s *State) TakeEditForm() *FormState {
	fs := s.pendingEdit
	s.pendingEdit = nil
	return fs
}

// Elapsed reports how long the session has been running at the given
// instant.
func (s *State) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}
