package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"content-workflow/internal/domain"
	"content-workflow/internal/logger"
	"content-workflow/internal/metrics"
	"content-workflow/internal/repository"
)

const (
	defaultReaperStaleAfter = 2 * time.Hour
	defaultReaperBatchSize  = 100

	staleSessionMessage = "abandoned: no progress before the staleness threshold"
)

// errNoLongerStale aborts a requeue whose item changed since it was listed.
var errNoLongerStale = errors.New("item no longer stale")

// ReaperService returns abandoned queued items to not_started.
type ReaperService struct {
	contentRepo repository.ContentRepository
	sessionRepo repository.SessionRepository

	staleAfter time.Duration
	batchSize  int
	now        func() time.Time
}

// NewReaperService creates a new ReaperService.
func NewReaperService(
	contentRepo repository.ContentRepository,
	sessionRepo repository.SessionRepository,
	staleAfter time.Duration,
	batchSize int,
) *ReaperService {
	if staleAfter <= 0 {
		staleAfter = defaultReaperStaleAfter
	}
	if batchSize <= 0 {
		batchSize = defaultReaperBatchSize
	}
	return &ReaperService{
		contentRepo: contentRepo,
		sessionRepo: sessionRepo,
		staleAfter:  staleAfter,
		batchSize:   batchSize,
		now:         time.Now,
	}
}

// RunOnce fails sessions that stopped making progress, then requeues queued
// items not updated within the staleness threshold. Items are left alone while
// a session is still active, since its walk owns every queued item.
// It returns the number of items reset.
func (s *ReaperService) RunOnce(ctx context.Context) (int, error) {
	cutoff := s.now().UTC().Add(-s.staleAfter)

	failed, err := s.sessionRepo.FailStaleSessions(ctx, cutoff, staleSessionMessage)
	if err != nil {
		return 0, fmt.Errorf("fail stale sessions: %w", err)
	}
	if failed > 0 {
		logger.WarnContext(ctx, "Stale generation sessions failed", "count", failed)
	}

	active, err := s.sessionRepo.HasActiveSession(ctx)
	if err != nil {
		return 0, fmt.Errorf("check active session: %w", err)
	}
	if active {
		logger.InfoContext(ctx, "Generation session in progress, queued items left to its walk")
		return 0, nil
	}

	items, err := s.contentRepo.ListStaleQueued(ctx, cutoff, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list stale queued items: %w", err)
	}

	reset := 0
	for i := range items {
		id := items[i].ID
		updated, err := s.contentRepo.Mutate(ctx, id, func(current domain.ContentItem) (domain.ContentItem, error) {
			if current.Status != domain.StatusQueued || !current.UpdatedAt.Before(cutoff) {
				return current, errNoLongerStale
			}
			return domain.Transition(current, domain.EventRequeue, domain.TransitionPayload{}, s.now().UTC())
		})
		if errors.Is(err, errNoLongerStale) || (err == nil && updated == nil) {
			continue
		}
		if err != nil {
			logger.WithItemID(id).ErrorContext(ctx, "Failed to requeue stale item", "error", err)
			continue
		}

		reset++
		metrics.ReaperRequeuedTotal.Inc()
		logger.WithItemID(id).WarnContext(ctx, "Stale queued item reset to not_started",
			"queued_since", items[i].UpdatedAt,
		)
	}

	return reset, nil
}
