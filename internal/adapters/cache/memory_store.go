package cache

import (
	"context"
	"sync"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
)

// MemoryStore keeps rate slots in process memory. Slots do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]domain.CachedRate
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[string]domain.CachedRate{}}
}

var _ portsrepo.RateSlotStore = (*MemoryStore)(nil)

// GetCachedRate returns the slot content or apperrors.ErrNotFound.
func (s *MemoryStore) GetCachedRate(_ context.Context, key string) (*domain.CachedRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rate, ok := s.slots[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &rate, nil
}

// SetCachedRate overwrites the slot.
func (s *MemoryStore) SetCachedRate(_ context.Context, key string, rate domain.CachedRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = rate
	return nil
}
