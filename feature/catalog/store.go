package catalog

import (
	"sort"
	"sync"

	"catalog-sync/core/inventory"
)

// Store is the in-memory tracked entity set, keyed by entity id. It hands out
// copies, so no caller ever holds a pointer into the store's own state; the
// reconciliation paths mutate pass-owned copies and write them back via Put.
type Store struct {
	mu       sync.RWMutex
	entities map[string]inventory.LocalEntity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entities: make(map[string]inventory.LocalEntity)}
}

// Get returns a copy of the entity with the given id.
func (s *Store) Get(id string) (inventory.LocalEntity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entities[id]
	return e, ok
}

// GetAll returns copies of all tracked entities, sorted by id for
// deterministic output.
func (s *Store) GetAll() []inventory.LocalEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]inventory.LocalEntity, 0, len(s.entities))
	for _, e := range s.entities {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Snapshot returns the current entity set as a map of pass-owned copies,
// the shape the reconciliation engine takes as its "existing" input.
func (s *Store) Snapshot() map[string]*inventory.LocalEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(map[string]*inventory.LocalEntity, len(s.entities))
	for id, e := range s.entities {
		c := e
		snap[id] = &c
	}
	return snap
}

// Put stores the entity under its id, replacing any previous record.
func (s *Store) Put(e *inventory.LocalEntity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[e.ID] = *e
}

// Delete removes the entity with the given id. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities, id)
}

// Len returns the number of tracked entities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}
