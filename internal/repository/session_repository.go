package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-workflow/internal/domain"
)

const (
	// activeSessionIndex is the partial unique index allowing one pending/processing session.
	activeSessionIndex = "generation_sessions_single_active"

	uniqueViolation = "23505"
)

// PostgresSessionRepository implements SessionRepository using PostgreSQL.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository.
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// CreateSession creates a new generation session.
func (r *PostgresSessionRepository) CreateSession(ctx context.Context, session *domain.GenerationSession) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO generation_sessions (id, status, total_items, processed_items, error_message,
			started_at, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, session.ID, session.Status, session.TotalItems, session.ProcessedItems, session.ErrorMessage,
		session.StartedAt, session.CompletedAt, session.CreatedAt, session.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == activeSessionIndex {
			return domain.ErrSessionInProgress
		}
		return fmt.Errorf("insert generation session: %w", err)
	}

	return nil
}

// GetSession retrieves a generation session by ID.
func (r *PostgresSessionRepository) GetSession(ctx context.Context, id string) (*domain.GenerationSession, error) {
	var session domain.GenerationSession
	var status string

	err := r.pool.QueryRow(ctx, `
		SELECT id, status, total_items, processed_items, error_message,
			started_at, completed_at, created_at, updated_at
		FROM generation_sessions
		WHERE id = $1
	`, id).Scan(&session.ID, &status, &session.TotalItems, &session.ProcessedItems, &session.ErrorMessage,
		&session.StartedAt, &session.CompletedAt, &session.CreatedAt, &session.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get generation session: %w", err)
	}

	session.Status = domain.SessionStatus(status)
	return &session, nil
}

// HasActiveSession reports whether any session is pending or processing.
func (r *PostgresSessionRepository) HasActiveSession(ctx context.Context) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM generation_sessions WHERE status IN ($1, $2))
	`, domain.SessionStatusPending, domain.SessionStatusProcessing).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active session: %w", err)
	}
	return exists, nil
}

// MarkProcessing moves a pending session to processing.
func (r *PostgresSessionRepository) MarkProcessing(ctx context.Context, id string, startedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE generation_sessions
		SET status = $2, started_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4
	`, id, domain.SessionStatusProcessing, startedAt, domain.SessionStatusPending)
	if err != nil {
		return fmt.Errorf("mark session processing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark session processing: session %s is not pending", id)
	}
	return nil
}

// IncrementProcessed bumps processed_items by one.
func (r *PostgresSessionRepository) IncrementProcessed(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE generation_sessions
		SET processed_items = processed_items + 1, updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("increment processed items: %w", err)
	}
	return nil
}

// AppendError appends a per-item error to the session's error message.
func (r *PostgresSessionRepository) AppendError(ctx context.Context, id, message string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE generation_sessions
		SET error_message = CASE
				WHEN error_message IS NULL OR error_message = '' THEN $2
				ELSE error_message || '; ' || $2
			END,
			updated_at = NOW()
		WHERE id = $1
	`, id, message)
	if err != nil {
		return fmt.Errorf("append session error: %w", err)
	}
	return nil
}

// FinishSession sets a terminal status. A nil errorMessage keeps the accumulated item errors.
func (r *PostgresSessionRepository) FinishSession(ctx context.Context, id string, status domain.SessionStatus, errorMessage *string, completedAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE generation_sessions
		SET status = $2, error_message = COALESCE($3, error_message), completed_at = $4, updated_at = $4
		WHERE id = $1
	`, id, status, errorMessage, completedAt)
	if err != nil {
		return fmt.Errorf("finish generation session: %w", err)
	}
	return nil
}

// FailStaleSessions fails active sessions whose walk stopped updating them, freeing the single session slot.
func (r *PostgresSessionRepository) FailStaleSessions(ctx context.Context, updatedBefore time.Time, message string) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE generation_sessions
		SET status = $3,
			error_message = CASE
				WHEN error_message IS NULL OR error_message = '' THEN $4
				ELSE error_message || '; ' || $4
			END,
			completed_at = NOW(),
			updated_at = NOW()
		WHERE status IN ($1, $2) AND updated_at < $5
	`, domain.SessionStatusPending, domain.SessionStatusProcessing, domain.SessionStatusFailed, message, updatedBefore)
	if err != nil {
		return 0, fmt.Errorf("fail stale sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
