package extractor

import (
	"fmt"
	"sync"
)

// Registry is the process-wide store the site packages register into.
var Registry = NewStore()

// Store keeps site extractors in priority order, plus the fallback that runs
// when none of them match.
type Store struct {
	mu       sync.RWMutex
	list     []Extractor
	hash     map[string]Extractor
	fallback Extractor
}

func NewStore() *Store {
	return &Store{
		hash: map[string]Extractor{},
	}
}

// Add appends e to the priority list. Names must be unique.
func (s *Store) Add(e Extractor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.hash[e.Name()]; ok {
		return fmt.Errorf("extractor %q already registered", e.Name())
	}

	s.hash[e.Name()] = e
	s.list = append(s.list, e)

	return nil
}

// MustAdd is Add for init-time registration.
func (s *Store) MustAdd(e Extractor) {
	if err := s.Add(e); err != nil {
		panic(err)
	}
}

func (s *Store) SetFallback(e Extractor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = e
}

func (s *Store) Fallback() Extractor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// List returns the site extractors in priority order.
func (s *Store) List() []Extractor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Extractor, len(s.list))
	copy(list, s.list)

	return list
}

func (s *Store) Get(name string) (Extractor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.hash[name]
	return e, ok
}
