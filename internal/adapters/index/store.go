// Package index implements the shared catalog index: an append-only arena of
// fetched projects addressed by stable integer keys.
package index

import (
	"sync"

	"go.trai.ch/crate/internal/core/domain"
)

// Store implements ports.ProjectIndex with a read/write-locked growable
// slice. Insert takes the exclusive lock only for the append; reads take the
// shared lock. Callers must not hold a read lock across a catalog call that
// could itself insert — the resolver copies out what it needs first.
type Store struct {
	mu       sync.RWMutex
	projects []*domain.Project
	byID     map[domain.ProjectID]domain.ProjectKey
}

// NewStore creates an empty index.
func NewStore() *Store {
	return &Store{
		byID: make(map[domain.ProjectID]domain.ProjectKey),
	}
}

// Insert appends a project and returns its key. A project id that is already
// indexed returns the existing key; the index never holds the same project
// twice, so traversals never double-count it.
func (s *Store) Insert(p *domain.Project) domain.ProjectKey {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.byID[p.ID]; ok {
		return key
	}

	key := domain.ProjectKey(len(s.projects))
	s.projects = append(s.projects, p)
	s.byID[p.ID] = key
	return key
}

// Get returns the project stored under key.
func (s *Store) Get(key domain.ProjectKey) (*domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if key < 0 || int(key) >= len(s.projects) {
		return nil, false
	}
	return s.projects[key], true
}

// Lookup returns the key issued for a project id, if any.
func (s *Store) Lookup(id domain.ProjectID) (domain.ProjectKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.byID[id]
	return key, ok
}

// Len reports how many projects the index holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.projects)
}
