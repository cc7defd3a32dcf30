package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indicates the session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Store is the contract for keeping live sessions. Implementations hold
// sessions for a bounded TTL only; there is no durable persistence.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore is a thread-safe in-memory Store suitable for development and
// single-node deployments. Expired entries are dropped lazily on access and
// swept opportunistically on writes.
type MemoryStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[uuid.UUID]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		items: make(map[uuid.UUID]memoryEntry),
	}
}

func (m *MemoryStore) Put(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for id, e := range m.items {
		if now.After(e.expiresAt) {
			delete(m.items, id)
		}
	}
	m.items[s.ID] = memoryEntry{session: *s, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	e, ok := m.items[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.items, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	s := e.session
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

// Len reports the number of live entries, expired or not. Test helper.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
