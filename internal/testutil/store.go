package testutil

import (
	"errors"
	"sync"
	"testing"

	"profilekit/internal/store"
)

// NewTestStore creates an empty in-memory store that is closed when the
// test completes.
func NewTestStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	t.Cleanup(func() { s.Close() })
	return s
}

// ErrStoreUnavailable is returned by a FailingStore.
var ErrStoreUnavailable = errors.New("store unavailable")

// FailingStore wraps a MemoryStore and can be told to fail reads or writes.
// It counts successful writes per key.
type FailingStore struct {
	*store.MemoryStore

	mu        sync.Mutex
	FailGet   bool
	FailSet   bool
	setCounts map[string]int
}

func NewFailingStore() *FailingStore {
	return &FailingStore{MemoryStore: store.NewMemoryStore(), setCounts: make(map[string]int)}
}

func (s *FailingStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	fail := s.FailGet
	s.mu.Unlock()
	if fail {
		return "", false, ErrStoreUnavailable
	}
	return s.MemoryStore.Get(key)
}

func (s *FailingStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSet {
		return ErrStoreUnavailable
	}
	s.setCounts[key]++
	return s.MemoryStore.Set(key, value)
}

// Writes returns how many times key was written successfully.
func (s *FailingStore) Writes(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCounts[key]
}
