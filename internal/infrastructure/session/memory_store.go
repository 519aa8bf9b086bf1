package session

import (
	"context"
	"sync"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
)

// memoryRevocationStore keeps revoked token IDs in process memory.
// Entries are dropped once their token would have expired anyway.
type memoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore creates a RevocationStore local to this process
func NewMemoryRevocationStore() accounts.RevocationStore {
	return &memoryRevocationStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	s.revoked[tokenID] = until
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

// prune must be called with mu held.
func (s *memoryRevocationStore) prune() {
	now := s.now()
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
		}
	}
}
