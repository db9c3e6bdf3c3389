package repository

import (
	"context"
	"time"

	"content-workflow/internal/domain"
)

// MutateFunc computes the next state of an item from its current, locked state.
type MutateFunc func(item domain.ContentItem) (domain.ContentItem, error)

// ContentRepository defines methods for content item data access.
// Every mutation is a single-row atomic read-modify-write.
type ContentRepository interface {
	Create(ctx context.Context, item *domain.ContentItem) error
	Get(ctx context.Context, id string) (*domain.ContentItem, error)
	// Mutate locks the row, applies fn and persists the result. Returns nil, nil if the item does not exist.
	Mutate(ctx context.Context, id string, fn MutateFunc) (*domain.ContentItem, error)
	// ClaimForGeneration locks up to limit not_started items oldest first and applies fn to each in one transaction.
	ClaimForGeneration(ctx context.Context, limit int, fn MutateFunc) ([]domain.ContentItem, error)
	CountByStatus(ctx context.Context, status domain.Status) (int, error)
	ListDueForPublish(ctx context.Context, before time.Time, limit int) ([]domain.ContentItem, error)
	ListStaleQueued(ctx context.Context, updatedBefore time.Time, limit int) ([]domain.ContentItem, error)
	// RecordPublishFailure increments the publish attempt counter and returns its new value.
	RecordPublishFailure(ctx context.Context, id, message string) (int, error)
	// EnsurePublishKey stores key unless the item already has one, and returns the stored key.
	EnsurePublishKey(ctx context.Context, id, key string) (string, error)
}

// SessionRepository defines methods for generation session data access.
type SessionRepository interface {
	// CreateSession returns domain.ErrSessionInProgress if another session is pending or processing.
	CreateSession(ctx context.Context, session *domain.GenerationSession) error
	GetSession(ctx context.Context, id string) (*domain.GenerationSession, error)
	HasActiveSession(ctx context.Context) (bool, error)
	MarkProcessing(ctx context.Context, id string, startedAt time.Time) error
	IncrementProcessed(ctx context.Context, id string) error
	AppendError(ctx context.Context, id, message string) error
	FinishSession(ctx context.Context, id string, status domain.SessionStatus, errorMessage *string, completedAt time.Time) error
	// FailStaleSessions fails pending/processing sessions not updated since updatedBefore.
	FailStaleSessions(ctx context.Context, updatedBefore time.Time, message string) (int, error)
}

// CredentialRepository defines methods for platform credential data access.
type CredentialRepository interface {
	GetCredential(ctx context.Context, provider string) (*domain.Credential, error)
	SaveCredential(ctx context.Context, cred *domain.Credential) error
}
