package contact

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps an ordered contact list in memory. Insertion order is
// display order. A Store belongs to exactly one session.
type Store struct {
	mu    sync.RWMutex
	items []Contact
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a new contact built from pre-validated fields and returns
// it with its assigned id and creation time.
func (s *Store) Add(fields Fields) Contact {
	c := Contact{
		ID:        uuid.NewString(),
		Name:      fields.Name,
		Email:     fields.Email,
		Phone:     fields.Phone,
		Category:  fields.Category,
		Address:   fields.Address,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.items = append(s.items, c)
	s.mu.Unlock()

	return c
}

// Update overwrites the fields of the first contact with the given id,
// keeping its id and creation time. It reports whether a contact was
// found; a miss leaves the store untouched.
func (s *Store) Update(id string, fields Fields) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Name = fields.Name
			s.items[i].Email = fields.Email
			s.items[i].Phone = fields.Phone
			s.items[i].Category = fields.Category
			s.items[i].Address = fields.Address
			return true
		}
	}
	return false
}

// Delete removes every contact with the given id, preserving the order
// of the rest. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, c := range s.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.items = kept
}

// List returns the contacts matching the filter, in insertion order.
// The result is a fresh slice; the store is not mutated.
func (s *Store) List(filter Filter) []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]Contact, 0, len(s.items))
	for _, c := range s.items {
		if filter.Category != "" && string(c.Category) != filter.Category {
			continue
		}
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matchesSearch expects the needle already lowercased.
func matchesSearch(c Contact, needle string) bool {
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle) ||
		strings.Contains(strings.ToLower(c.Phone), needle)
}

// FindByID looks up a contact for edit prefill.
func (s *Store) FindByID(id string) (Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// Len reports the unfiltered contact count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
