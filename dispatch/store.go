package dispatch

import (
	"sort"
	"sync"

	"github.com/lars-frogner/impact-wire/schema"
)

// EntityID identifies one created entity. IDs are assigned sequentially from
// 1; zero is never a valid ID.
type EntityID uint64

// Store holds created entities and their decoded components. Safe for
// concurrent use.
type Store struct {
	mu       sync.RWMutex
	nextID   EntityID
	entities map[EntityID]map[schema.TypeID]any
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{
		nextID:   1,
		entities: make(map[EntityID]map[schema.TypeID]any),
	}
}

func (s *Store) create(components map[schema.TypeID]any) EntityID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.entities[id] = components
	return id
}

// Get returns the component of the given type on the given entity.
func (s *Store) Get(id EntityID, typeID schema.TypeID) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	components, ok := s.entities[id]
	if !ok {
		return nil, false
	}
	v, ok := components[typeID]
	return v, ok
}

// Set replaces the component of the given type on an existing entity. It
// reports false when the entity does not exist; Set never creates entities.
func (s *Store) Set(id EntityID, typeID schema.TypeID, v any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	components, ok := s.entities[id]
	if !ok {
		return false
	}
	components[typeID] = v
	return true
}

// Has reports whether the entity carries a component of the given type.
// Marker components have no payload, so presence is their entire meaning.
func (s *Store) Has(id EntityID, typeID schema.TypeID) bool {
	_, ok := s.Get(id, typeID)
	return ok
}

// ComponentTypes returns the type IDs of the entity's components, sorted.
func (s *Store) ComponentTypes(id EntityID) []schema.TypeID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	components, ok := s.entities[id]
	if !ok {
		return nil
	}
	out := make([]schema.TypeID, 0, len(components))
	for t := range components {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of entities in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Remove deletes the entity and its components.
func (s *Store) Remove(id EntityID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entities[id]; !ok {
		return false
	}
	delete(s.entities, id)
	return true
}
