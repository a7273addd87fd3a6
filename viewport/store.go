package viewport

import (
	"errors"
	"fmt"
	"sync"
)

var ErrPoisoned = errors.New("viewport store poisoned by a panicking update")

// Store holds the process wide ComplexRect shared by the input and render paths.
type Store struct {
	mu       sync.Mutex
	rect     ComplexRect
	poisoned bool
}

func NewStore(initial ComplexRect) *Store {
	return &Store{rect: initial}
}

// Get returns a copy of the current rectangle.
func (s *Store) Get() ComplexRect {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeHealthy()

	return s.rect
}

// Update applies f to a working copy of the rectangle while holding the lock
// and commits the copy once f returns.
//
// If f panics nothing is committed, the store is poisoned and the panic is re-raised
// wrapping ErrPoisoned. Every later Get or Update panics with ErrPoisoned.
func (s *Store) Update(f func(*ComplexRect)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeHealthy()

	defer func() {
		if v := recover(); v != nil {
			s.poisoned = true
			panic(fmt.Errorf("%w: %v", ErrPoisoned, v))
		}
	}()

	next := s.rect
	f(&next)
	s.rect = next
}

func (s *Store) mustBeHealthy() {
	if s.poisoned {
		panic(ErrPoisoned)
	}
}
