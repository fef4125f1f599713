package repository

import (
	"sync"

	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/ai/project/service"
)

type entry struct {
	mu      sync.Mutex
	session *service.Session
}

// Repository keeps chat sessions in memory. Nothing survives a restart.
type Repository struct {
	store *prompts.Store

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewRepository(store *prompts.Store) *Repository {
	return &Repository{
		store:    store,
		sessions: make(map[string]*entry),
	}
}

// WithSession runs fn with exclusive access to the session for userID,
// creating it on first use. Actions on one session run one at a time;
// different sessions do not block each other.
func (r *Repository) WithSession(userID string, fn func(s *service.Session) error) error {
	e := r.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

func (r *Repository) entry(userID string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[userID]
	if !ok {
		e = &entry{session: service.NewSession(userID, r.store)}
		r.sessions[userID] = e
	}
	return e
}

// ClearUserHistory drops the session; the next access starts a fresh one.
func (r *Repository) ClearUserHistory(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}

// CountSessions returns how many sessions are held in memory.
func (r *Repository) CountSessions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
