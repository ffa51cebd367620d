package counter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const lockRetryDelay = 50 * time.Millisecond

// FileStore keeps counters in a YAML file. A sibling ".lock" file serializes
// concurrent dtalab processes; mu serializes goroutines sharing one store,
// which the file lock alone does not.
type FileStore struct {
	mu   sync.Mutex
	path string
	lock *flock.Flock
}

// NewFileStore returns a store backed by path. The file is created on the
// first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, lock: flock.New(path + ".lock")}
}

// Path returns the state file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Peek(ctx context.Context, track Track) (int, error) {
	var v int
	err := s.withLock(ctx, func(state map[Track]int) (bool, error) {
		v = Normalize(state[track])
		return false, nil
	})
	return v, err
}

func (s *FileStore) Reserve(ctx context.Context, track Track, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("reserve %d values: count must be positive", n)
	}
	var first int
	err := s.withLock(ctx, func(state map[Track]int) (bool, error) {
		first = Normalize(state[track])
		state[track] = Advance(first, n)
		return true, nil
	})
	return first, err
}

func (s *FileStore) Set(ctx context.Context, track Track, next int) error {
	return s.withLock(ctx, func(state map[Track]int) (bool, error) {
		state[track] = Normalize(next)
		return true, nil
	})
}

// withLock loads the state under an exclusive lock, calls fn, and writes the
// state back if fn reports a change.
func (s *FileStore) withLock(ctx context.Context, fn func(map[Track]int) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock state file: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock state file: %s is held by another process", s.path)
	}
	defer s.lock.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}
	changed, err := fn(state)
	if err != nil || !changed {
		return err
	}
	return s.save(state)
}

func (s *FileStore) load() (map[Track]int, error) {
	state := make(map[Track]int)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	return state, nil
}

func (s *FileStore) save(state map[Track]int) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
