// store/memory_store.go
package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process store used by tests and throwaway sessions.
type MemoryStore struct {
	mu  sync.RWMutex
	rec Record
	set bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set || !s.rec.Complete() {
		return Record{}, false, nil
	}
	return s.rec, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	s.set = true
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = Record{}
	s.set = false
	return nil
}
