package flow

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("flow session not found")

// Store persists in-progress sessions between wizard steps.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// ===============================
// In-memory store
// ===============================

// MemoryStore is the single-instance fallback when Redis is unreachable.
// Expired sessions are dropped lazily on read and swept on write.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.UpdatedAt = time.Now()
	copied := *s
	m.sessions[s.ID] = &copied

	for id, sess := range m.sessions {
		if m.expired(sess) {
			delete(m.sessions, id)
		}
	}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || m.expired(sess) {
		return nil, ErrSessionNotFound
	}

	copied := *sess
	return &copied, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) expired(s *Session) bool {
	return m.ttl > 0 && time.Since(s.UpdatedAt) > m.ttl
}
