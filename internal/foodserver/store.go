package foodserver

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"foodadmin/internal/food"
)

// ErrNotFound is returned for ids the store does not hold.
var ErrNotFound = errors.New("food not found")

// Store is an in-memory, insertion-ordered food collection.
// Ids are assigned sequentially and never reused.
type Store struct {
	mu     sync.RWMutex
	foods  []food.Food
	nextID int
}

// NewStore creates a store holding seed in order. Duplicate ids are rejected.
func NewStore(seed []food.Food) (*Store, error) {
	s := &Store{foods: make([]food.Food, 0, len(seed)), nextID: 1}
	seen := make(map[int]bool, len(seed))
	for _, f := range seed {
		if seen[f.ID] {
			return nil, fmt.Errorf("seed: duplicate id %d", f.ID)
		}
		seen[f.ID] = true
		s.foods = append(s.foods, f)
		if f.ID >= s.nextID {
			s.nextID = f.ID + 1
		}
	}
	return s, nil
}

// List returns a copy of every food in insertion order.
func (s *Store) List() []food.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.foods)
}

// Get returns the food with the given id.
func (s *Store) Get(id int) (food.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return food.Food{}, ErrNotFound
	}
	return s.foods[i], nil
}

// Create appends d under a fresh id and returns the stored record.
func (s *Store) Create(d food.Draft) food.Food {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := d.WithID(s.nextID)
	s.nextID++
	s.foods = append(s.foods, f)
	return f
}

// Update replaces the record at id with f. The stored id is always id.
func (s *Store) Update(id int, f food.Food) (food.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return food.Food{}, ErrNotFound
	}
	f.ID = id
	s.foods[i] = f
	return f, nil
}

// Delete removes the record at id.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.foods = slices.Delete(s.foods, i, i+1)
	return nil
}

// Len returns the number of stored foods.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.foods)
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.foods, func(f food.Food) bool { return f.ID == id })
}
