package session

import (
	"context"
	"sync"
	"time"

	"github.com/velaug24it-bit/serviceswebiste/utils"
)

// MemoryStore keeps revoked token hashes in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{revoked: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for hash, expiry := range m.revoked {
		if now.After(expiry) {
			delete(m.revoked, hash)
		}
	}
	m.revoked[utils.HashToken(token)] = now.Add(ttl)
	return nil
}

func (m *MemoryStore) IsRevoked(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.revoked[utils.HashToken(token)]
	if !ok {
		return false, nil
	}
	return m.now().Before(expiry), nil
}
