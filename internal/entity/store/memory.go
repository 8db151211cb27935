package store

import (
	"context"
	"sync"

	"filings-gateway/internal/entity"
	"filings-gateway/pkg/platform/sentinel"
)

// MemoryStore keeps business snapshots in a mutex-guarded map.
type MemoryStore struct {
	mu         sync.RWMutex
	businesses map[string]entity.Business
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		businesses: make(map[string]entity.Business),
	}
}

func (s *MemoryStore) Save(_ context.Context, business *entity.Business) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses[business.Identifier] = cloneBusiness(business)
	return nil
}

func (s *MemoryStore) FindByIdentifier(_ context.Context, identifier string) (*entity.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.businesses[identifier]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := cloneBusiness(&b)
	return &out, nil
}

func (s *MemoryStore) Delete(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.businesses, identifier)
	return nil
}

// cloneBusiness copies the snapshot including its pending filings slice so
// callers can't mutate stored state.
func cloneBusiness(b *entity.Business) entity.Business {
	out := *b
	if b.PendingFilings != nil {
		out.PendingFilings = make([]entity.PendingFiling, len(b.PendingFilings))
		copy(out.PendingFilings, b.PendingFilings)
	}
	return out
}
