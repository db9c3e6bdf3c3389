package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"content-workflow/internal/domain"
	"content-workflow/internal/logger"
	"content-workflow/internal/metrics"
	"content-workflow/internal/repository"
)

// ContentService handles content item creation and human-driven transitions.
type ContentService struct {
	contentRepo repository.ContentRepository
	now         func() time.Time
}

// NewContentService creates a new ContentService.
func NewContentService(contentRepo repository.ContentRepository) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		now:         time.Now,
	}
}

// Create stores a new item in not_started.
func (s *ContentService) Create(ctx context.Context, source domain.SourceFields) (*domain.ContentItem, error) {
	now := s.now().UTC()
	item := &domain.ContentItem{
		ID:        uuid.New().String(),
		Source:    source,
		Status:    domain.StatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.contentRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create content item: %w", err)
	}

	logger.WithItemID(item.ID).InfoContext(ctx, "Content item created")
	return item, nil
}

// Get retrieves an item by ID. Returns domain.ErrItemNotFound if it does not exist.
func (s *ContentService) Get(ctx context.Context, id string) (*domain.ContentItem, error) {
	item, err := s.contentRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// Transition applies a review event to the item under its row lock.
// Events owned by the generation walk, the publisher or the reaper are refused.
func (s *ContentService) Transition(ctx context.Context, id string, event domain.Event, payload domain.TransitionPayload) (*domain.ContentItem, error) {
	if !domain.IsReviewEvent(event) {
		err := fmt.Errorf("%w: %s is not a review event", domain.ErrInvalidTransition, event)
		metrics.ObserveTransition(string(event), err)
		return nil, err
	}
	item, err := s.contentRepo.Mutate(ctx, id, func(current domain.ContentItem) (domain.ContentItem, error) {
		return domain.Transition(current, event, payload, s.now().UTC())
	})
	metrics.ObserveTransition(string(event), err)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	logger.WithItemID(id).InfoContext(ctx, "Content item transitioned",
		"event", event,
		"status", item.Status,
	)
	return item, nil
}

// EditVariant replaces the text of one variant on a drafted or rejected item.
func (s *ContentService) EditVariant(ctx context.Context, id string, index int, text string) (*domain.ContentItem, error) {
	item, err := s.contentRepo.Mutate(ctx, id, func(current domain.ContentItem) (domain.ContentItem, error) {
		return domain.EditVariant(current, index, text, s.now().UTC())
	})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}
