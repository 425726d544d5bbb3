package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory session store. Sessions do not survive a
// restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*storedSession
	now      func() time.Time
	closed   bool
	done     chan struct{}
}

type storedSession struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStoreOption configures MemoryStore behavior.
type MemoryStoreOption func(*memoryStoreConfig)

type memoryStoreConfig struct {
	cleanupInterval time.Duration
	now             func() time.Time
}

// WithCleanupInterval sets how often expired sessions are dropped.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryStoreOption {
	return func(c *memoryStoreConfig) {
		c.cleanupInterval = d
	}
}

// WithStoreClock replaces time.Now for expiry checks.
func WithStoreClock(now func() time.Time) MemoryStoreOption {
	return func(c *memoryStoreConfig) {
		c.now = now
	}
}

// NewMemoryStore creates an in-memory store and starts its cleanup loop.
// Close stops the loop.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	cfg := &memoryStoreConfig{
		cleanupInterval: time.Minute,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	store := &MemoryStore{
		sessions: make(map[string]*storedSession),
		now:      cfg.now,
		done:     make(chan struct{}),
	}
	go store.cleanupLoop(cfg.cleanupInterval)
	return store
}

// Save stores a copy of data.
func (m *MemoryStore) Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed{}
	}
	m.sessions[id] = &storedSession{
		data:      append([]byte(nil), data...),
		expiresAt: expiresAt,
	}
	return nil
}

// Load returns a copy of the stored data.
func (m *MemoryStore) Load(ctx context.Context, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed{}
	}
	s, ok := m.sessions[id]
	if !ok || m.now().After(s.expiresAt) {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

// Delete removes a session.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed{}
	}
	delete(m.sessions, id)
	return nil
}

// Touch updates the expiration time for a session.
func (m *MemoryStore) Touch(ctx context.Context, id string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed{}
	}
	if s, ok := m.sessions[id]; ok {
		s.expiresAt = expiresAt
	}
	return nil
}

// Close stops the cleanup loop and drops every session.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	m.sessions = nil
	return nil
}

// Count returns the number of stored sessions, expired ones included until
// the next cleanup.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryStore) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	now := m.now()
	for id, s := range m.sessions {
		if now.After(s.expiresAt) {
			delete(m.sessions, id)
		}
	}
}
