package session

import (
	"context"
	"sync"
	"time"

	"github.com/kurochkinivan/results_portal/internal/domain"
)

type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.TempSession
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.TempSession),
		now:      now,
	}
}

func (m *MemoryStore) Set(_ context.Context, s *domain.TempSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.TempID] = s

	return nil
}

func (m *MemoryStore) Get(_ context.Context, tempID string) (*domain.TempSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[tempID]
	if !ok || s.Expired(m.now()) {
		return nil, domain.ErrSessionNotFound
	}

	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, tempID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, tempID)

	return nil
}

func (m *MemoryStore) Take(_ context.Context, tempID string) (*domain.TempSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[tempID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	delete(m.sessions, tempID)
	if s.Expired(m.now()) {
		return nil, domain.ErrSessionNotFound
	}

	return s, nil
}

func (m *MemoryStore) Sweep(_ context.Context, now time.Time) ([]*domain.TempSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []*domain.TempSession
	for id, s := range m.sessions {
		if s.Expired(now) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}

	return expired, nil
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}
