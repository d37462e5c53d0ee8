package session

import (
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Store is an in-memory session registry. Games live only as long as the
// process; nothing is ever written to disk.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get retrieves a session by id. If id is not present, [ErrNotFound] is
// returned.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Set inserts a new session or replaces an existing one.
func (s *Store) Set(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
}

// Delete removes id from the store without checking if it existed.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Keys lists the ids of every stored session.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		keys = append(keys, id)
	}
	return keys
}

// Sweep drops sessions that finished more than olderThan ago and reports
// how many were dropped. Unfinished sessions are never touched.
func (s *Store) Sweep(olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)
	dropped := 0
	for id, session := range s.sessions {
		session.Lock()
		expired := session.Finished() && session.EndedAt.Before(cutoff)
		session.Unlock()
		if expired {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}
