package store

import (
	"context"
	"sync"

	"filings-gateway/internal/filing"
)

// MemoryStore keeps draft filing data in a mutex-guarded map.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string][]filing.Entry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		drafts: make(map[string][]filing.Entry),
	}
}

func (s *MemoryStore) Replace(_ context.Context, businessID string, entries []filing.Entry) error {
	out := make([]filing.Entry, len(entries))
	copy(out, entries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[businessID] = out
	return nil
}

func (s *MemoryStore) Load(_ context.Context, businessID string) ([]filing.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.drafts[businessID]
	out := make([]filing.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context, businessID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, businessID)
	return nil
}
