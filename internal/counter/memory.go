package counter

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps counters for the lifetime of the process.
type MemoryStore struct {
	mu   sync.Mutex
	next map[Track]int
}

// NewMemoryStore returns a store with every track at 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{next: make(map[Track]int)}
}

func (s *MemoryStore) Peek(ctx context.Context, track Track) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Normalize(s.next[track]), nil
}

func (s *MemoryStore) Reserve(ctx context.Context, track Track, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("reserve %d values: count must be positive", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	first := Normalize(s.next[track])
	s.next[track] = Advance(first, n)
	return first, nil
}

func (s *MemoryStore) Set(ctx context.Context, track Track, next int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next[track] = Normalize(next)
	return nil
}
