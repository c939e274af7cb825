package session

import (
	"sync"

	"wordtrainer/internal/domain"
)

// Key identifies one conversation
type Key struct {
	UserID int64
	ChatID int64
}

// Store keeps per-conversation dialog state between updates. The handler
// never assumes in-process memory, so a persistent implementation can be
// swapped in without touching it.
type Store interface {
	Get(k Key) *domain.Session
	Set(k Key, s *domain.Session)
	Clear(k Key)
}

// MemoryStore is an in-memory Store. Each conversation owns its session
// exclusively; the mutex only guards the map across conversations.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[Key]*domain.Session
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[Key]*domain.Session),
	}
}

// Get returns the conversation's session, or a fresh idle one if none exists
func (m *MemoryStore) Get(k Key) *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.sessions[k]; ok {
		return s
	}
	return &domain.Session{State: domain.StateIdle}
}

// Set replaces the conversation's session
func (m *MemoryStore) Set(k Key, s *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[k] = s
}

// Clear drops the conversation's session
func (m *MemoryStore) Clear(k Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, k)
}
