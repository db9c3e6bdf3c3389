package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"content-workflow/internal/domain"
	"content-workflow/internal/repository"
)

// memStore is an in-memory ContentRepository and SessionRepository with the same locking semantics.
type memStore struct {
	mu       sync.Mutex
	items    map[string]domain.ContentItem
	sessions map[string]domain.GenerationSession
}

var (
	_ repository.ContentRepository = (*memStore)(nil)
	_ repository.SessionRepository = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		items:    make(map[string]domain.ContentItem),
		sessions: make(map[string]domain.GenerationSession),
	}
}

func (m *memStore) put(item domain.ContentItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item.Clone()
}

func (m *memStore) item(id string) domain.ContentItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id].Clone()
}

func (m *memStore) session(id string) domain.GenerationSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

func (m *memStore) sessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *memStore) Create(_ context.Context, item *domain.ContentItem) error {
	m.put(*item)
	return nil
}

func (m *memStore) Get(_ context.Context, id string) (*domain.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	out := item.Clone()
	return &out, nil
}

func (m *memStore) Mutate(_ context.Context, id string, fn repository.MutateFunc) (*domain.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	next, err := fn(item.Clone())
	if err != nil {
		return nil, err
	}
	m.items[id] = next.Clone()
	return &next, nil
}

func (m *memStore) ClaimForGeneration(_ context.Context, limit int, fn repository.MutateFunc) ([]domain.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	candidates := make([]domain.ContentItem, 0)
	for _, item := range m.items {
		if item.Status == domain.StatusNotStarted {
			candidates = append(candidates, item)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].CreatedAt.Equal(candidates[j].CreatedAt) {
			return candidates[i].ID < candidates[j].ID
		}
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	claimed := make([]domain.ContentItem, 0, len(candidates))
	for _, item := range candidates {
		next, err := fn(item.Clone())
		if err != nil {
			return nil, err
		}
		claimed = append(claimed, next)
	}
	for _, item := range claimed {
		m.items[item.ID] = item.Clone()
	}
	return claimed, nil
}

func (m *memStore) CountByStatus(_ context.Context, status domain.Status) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, item := range m.items {
		if item.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memStore) ListDueForPublish(_ context.Context, before time.Time, limit int) ([]domain.ContentItem, error) {
	return nil, nil
}

func (m *memStore) ListStaleQueued(_ context.Context, updatedBefore time.Time, limit int) ([]domain.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ContentItem
	for _, item := range m.items {
		if item.Status == domain.StatusQueued && item.UpdatedAt.Before(updatedBefore) {
			out = append(out, item.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) RecordPublishFailure(_ context.Context, id, message string) (int, error) {
	return 0, nil
}

func (m *memStore) EnsurePublishKey(_ context.Context, id, key string) (string, error) {
	return key, nil
}

func (m *memStore) CreateSession(_ context.Context, session *domain.GenerationSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.sessions {
		if existing.Status.IsActive() {
			return domain.ErrSessionInProgress
		}
	}
	m.sessions[session.ID] = *session
	return nil
}

func (m *memStore) GetSession(_ context.Context, id string) (*domain.GenerationSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (m *memStore) HasActiveSession(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, session := range m.sessions {
		if session.Status.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) MarkProcessing(_ context.Context, id string, startedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session := m.sessions[id]
	session.Status = domain.SessionStatusProcessing
	session.StartedAt = &startedAt
	m.sessions[id] = session
	return nil
}

func (m *memStore) IncrementProcessed(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session := m.sessions[id]
	session.ProcessedItems++
	m.sessions[id] = session
	return nil
}

func (m *memStore) AppendError(_ context.Context, id, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session := m.sessions[id]
	if session.ErrorMessage == nil || *session.ErrorMessage == "" {
		session.ErrorMessage = &message
	} else {
		joined := strings.Join([]string{*session.ErrorMessage, message}, "; ")
		session.ErrorMessage = &joined
	}
	m.sessions[id] = session
	return nil
}

func (m *memStore) FinishSession(_ context.Context, id string, status domain.SessionStatus, errorMessage *string, completedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session := m.sessions[id]
	session.Status = status
	if errorMessage != nil {
		session.ErrorMessage = errorMessage
	}
	session.CompletedAt = &completedAt
	m.sessions[id] = session
	return nil
}

func (m *memStore) FailStaleSessions(_ context.Context, updatedBefore time.Time, message string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	failed := 0
	now := time.Now().UTC()
	for id, session := range m.sessions {
		if !session.Status.IsActive() || !session.UpdatedAt.Before(updatedBefore) {
			continue
		}
		msg := message
		session.Status = domain.SessionStatusFailed
		session.ErrorMessage = &msg
		session.CompletedAt = &now
		session.UpdatedAt = now
		m.sessions[id] = session
		failed++
	}
	return failed, nil
}
