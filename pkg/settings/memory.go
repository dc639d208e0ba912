package settings

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps selections in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	fonts map[int64][]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{fonts: make(map[int64][]string)}
}

// EnabledFonts returns a copy of the selection of contextID.
func (s *MemoryStore) EnabledFonts(_ context.Context, contextID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ids, ok := s.fonts[contextID]; ok {
		return slices.Clone(ids), nil
	}
	return []string{}, nil
}

// SaveEnabledFonts replaces the selection of contextID.
func (s *MemoryStore) SaveEnabledFonts(_ context.Context, contextID int64, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fonts[contextID] = slices.Clone(ids)
	return nil
}
