package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"content-workflow/internal/domain"
	"content-workflow/internal/logger"
	"content-workflow/internal/metrics"
	"content-workflow/internal/repository"
)

const (
	defaultPublishBatchSize      = 10
	defaultPublishAlertThreshold = 3
)

// PublishConfig holds the tunables of a publisher run.
type PublishConfig struct {
	// Lookahead publishes items scheduled up to this far in the future.
	Lookahead time.Duration
	// BatchSize caps the number of items handled per run.
	BatchSize int
	// AlertThreshold is the failed attempt count from which every failure raises an alert.
	AlertThreshold int
}

// PublishResult summarizes one publisher run.
type PublishResult struct {
	Due       int
	Published int
	Failed    int
}

// PublishService turns due approved items into live posts.
type PublishService struct {
	contentRepo repository.ContentRepository
	client      PublisherClient
	fetcher     MediaFetcher
	tracer      trace.Tracer

	cfg PublishConfig
	now func() time.Time
}

// NewPublishService creates a new PublishService.
func NewPublishService(
	contentRepo repository.ContentRepository,
	client PublisherClient,
	fetcher MediaFetcher,
	cfg PublishConfig,
) *PublishService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultPublishBatchSize
	}
	if cfg.AlertThreshold <= 0 {
		cfg.AlertThreshold = defaultPublishAlertThreshold
	}

	return &PublishService{
		contentRepo: contentRepo,
		client:      client,
		fetcher:     fetcher,
		tracer:      otel.Tracer("publish-service"),
		cfg:         cfg,
		now:         time.Now,
	}
}

// publishRun carries state shared by the items of one run.
type publishRun struct {
	accountID string
}

// RunOnce publishes the due items one after another. A failing item never stops its siblings.
// The returned error is only set when the due items could not be listed or ctx ended the run early.
func (s *PublishService) RunOnce(ctx context.Context) (PublishResult, error) {
	var result PublishResult

	before := s.now().UTC().Add(s.cfg.Lookahead)
	items, err := s.contentRepo.ListDueForPublish(ctx, before, s.cfg.BatchSize)
	if err != nil {
		return result, fmt.Errorf("list due items: %w", err)
	}
	result.Due = len(items)
	if len(items) == 0 {
		return result, nil
	}

	run := &publishRun{}
	for i := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.publishItem(ctx, run, items[i]); err != nil {
			result.Failed++
			s.recordFailure(ctx, items[i].ID, err)
			continue
		}
		result.Published++
	}

	logger.InfoContext(ctx, "Publisher run finished",
		"due", result.Due,
		"published", result.Published,
		"failed", result.Failed,
	)
	return result, nil
}

func (s *PublishService) publishItem(ctx context.Context, run *publishRun, item domain.ContentItem) (err error) {
	ctx, span := s.tracer.Start(ctx, "publish.item",
		trace.WithAttributes(
			attribute.String("item_id", item.ID),
			attribute.Int("images", len(item.FinalImageURLs)),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "publish failed")
		}
		span.End()
	}()

	if item.FinalText == "" {
		return fmt.Errorf("%w: final_text", domain.ErrMissingRequiredField)
	}

	key, err := s.contentRepo.EnsurePublishKey(ctx, item.ID, uuid.New().String())
	if err != nil {
		return fmt.Errorf("assign publish key: %w", err)
	}

	accountID, err := s.identity(ctx, run)
	if err != nil {
		return err
	}

	handles := make([]string, 0, len(item.FinalImageURLs))
	for i, url := range item.FinalImageURLs {
		handle, err := s.uploadImage(ctx, accountID, url)
		if err != nil {
			return fmt.Errorf("image %d: %w", i, err)
		}
		handles = append(handles, handle)
	}

	var postID string
	err = s.withAuthRetry(ctx, "create post", func() error {
		var err error
		postID, err = s.client.CreatePost(ctx, accountID, item.FinalText, handles, key)
		return err
	})
	if err != nil {
		return err
	}
	postURL := s.client.PostURL(postID)

	updated, err := s.contentRepo.Mutate(ctx, item.ID, func(current domain.ContentItem) (domain.ContentItem, error) {
		return domain.Transition(current, domain.EventPublish, domain.TransitionPayload{ExternalPostURL: postURL}, s.now().UTC())
	})
	metrics.ObserveTransition(string(domain.EventPublish), err)
	if err != nil {
		// The post is live; the publish key lets the platform de-duplicate the next attempt.
		logger.WithItemID(item.ID).ErrorContext(ctx, "Post created but item could not be marked posted",
			"post_url", postURL,
			"error", err,
		)
		return fmt.Errorf("mark posted: %w", err)
	}
	if updated == nil {
		return domain.ErrItemNotFound
	}

	metrics.PublishItemsTotal.WithLabelValues("published").Inc()
	logger.WithItemID(item.ID).InfoContext(ctx, "Item published", "post_url", postURL)
	return nil
}

// identity resolves the account once per run.
func (s *PublishService) identity(ctx context.Context, run *publishRun) (string, error) {
	if run.accountID != "" {
		return run.accountID, nil
	}
	err := s.withAuthRetry(ctx, "identity", func() error {
		var err error
		run.accountID, err = s.client.Identity(ctx)
		return err
	})
	if err != nil {
		run.accountID = ""
		return "", err
	}
	return run.accountID, nil
}

func (s *PublishService) uploadImage(ctx context.Context, accountID, url string) (string, error) {
	var slot *domain.MediaSlot
	err := s.withAuthRetry(ctx, "register media", func() error {
		var err error
		slot, err = s.client.RegisterMedia(ctx, accountID)
		return err
	})
	if err != nil {
		return "", err
	}

	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch media: %w", err)
	}

	err = s.withAuthRetry(ctx, "upload media", func() error {
		return s.client.UploadMedia(ctx, *slot, data)
	})
	if err != nil {
		return "", err
	}
	return slot.Handle, nil
}

// withAuthRetry runs step; on domain.ErrAuthExpired it refreshes the credential once and retries
// the same step once. A second auth failure is returned as is.
func (s *PublishService) withAuthRetry(ctx context.Context, step string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAuthExpired) {
		return fmt.Errorf("%s: %w", step, err)
	}

	logger.WarnContext(ctx, "Platform credential expired, refreshing", "step", step)
	if refreshErr := s.client.RefreshCredential(ctx); refreshErr != nil {
		metrics.PublishAuthRefreshTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("%s: refresh credential: %w", step, refreshErr)
	}
	metrics.PublishAuthRefreshTotal.WithLabelValues("refreshed").Inc()

	if err := fn(); err != nil {
		return fmt.Errorf("%s after refresh: %w", step, err)
	}
	return nil
}

// recordFailure leaves the item approved and bumps its attempt counter.
func (s *PublishService) recordFailure(ctx context.Context, itemID string, cause error) {
	metrics.PublishItemsTotal.WithLabelValues("failed").Inc()
	itemLog := logger.WithItemID(itemID)

	bctx, cancel := bookkeepingContext(ctx)
	defer cancel()

	attempts, err := s.contentRepo.RecordPublishFailure(bctx, itemID, cause.Error())
	if err != nil {
		itemLog.ErrorContext(ctx, "Failed to record publish failure", "error", err, "cause", cause)
		return
	}

	if attempts >= s.cfg.AlertThreshold {
		metrics.PublishAlertsTotal.Inc()
		itemLog.ErrorContext(ctx, "Publish keeps failing for item",
			"attempts", attempts,
			"threshold", s.cfg.AlertThreshold,
			"error", cause,
		)
		return
	}
	itemLog.WarnContext(ctx, "Publish failed, item stays approved",
		"attempts", attempts,
		"error", cause,
	)
}
