// Package session holds the single in-process pipeline session. Nothing here
// is persisted; the state lives for the lifetime of the process.
package session

import (
	"sync"

	"farhan/portfolio-generator/internal/pipeline"
)

// Store guards the current session snapshot. Handlers read a copy, run a
// stage, then publish the replacement; the lock only covers the swap. Two
// overlapping stage runs resolve last-writer-wins, which is acceptable for a
// single-user tool.
type Store struct {
	mu      sync.RWMutex
	current pipeline.State
}

func NewStore() *Store {
	return &Store{current: pipeline.NewState()}
}

func (s *Store) Current() pipeline.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Replace(st pipeline.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = st
}
