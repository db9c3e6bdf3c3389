package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"content-workflow/internal/domain"
	"content-workflow/internal/lock"
	"content-workflow/internal/logger"
	"content-workflow/internal/metrics"
	"content-workflow/internal/repository"
	"content-workflow/internal/validator"
)

const (
	// admissionLockKey guards the check-claim-create sequence that admits a session.
	admissionLockKey = "generation-admission"

	// QueueSendTimeout is the timeout for handing a session to the worker
	QueueSendTimeout = 5 * time.Second

	// bookkeepingTimeout bounds session/item writes made after the walk context is gone
	bookkeepingTimeout = 10 * time.Second

	interruptedMessage = "interrupted"

	jobGeneration = "generation"
)

// ErrServiceClosed is returned when work is submitted after Close.
var ErrServiceClosed = errors.New("generation service is shutting down")

// GenerationConfig holds the tunables of the session walk.
type GenerationConfig struct {
	// ItemDelay is the pause between two items of one session.
	ItemDelay time.Duration
	// ItemTimeout bounds drafting a single item.
	ItemTimeout time.Duration
	// LockTTL bounds how long the admission lock may be held.
	LockTTL time.Duration
}

// GenerationService admits generation sessions and drafts their items in the background.
type GenerationService struct {
	contentRepo repository.ContentRepository
	sessionRepo repository.SessionRepository
	generator   DraftGenerator
	renderer    ImageRenderer
	assets      AssetStore
	locker      lock.Locker
	validator   *validator.Validator
	tracer      trace.Tracer

	cfg GenerationConfig
	now func() time.Time

	admitMu sync.Mutex

	sessionQueue chan sessionTask
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	closed       bool
	mu           sync.RWMutex
}

type sessionTask struct {
	session *domain.GenerationSession
	itemIDs []string
}

// NewGenerationService creates a GenerationService and starts its single worker.
// A nil generator, renderer or asset store makes every session fail before drafting.
func NewGenerationService(
	contentRepo repository.ContentRepository,
	sessionRepo repository.SessionRepository,
	generator DraftGenerator,
	renderer ImageRenderer,
	assets AssetStore,
	locker lock.Locker,
	v *validator.Validator,
	cfg GenerationConfig,
) *GenerationService {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &GenerationService{
		contentRepo:  contentRepo,
		sessionRepo:  sessionRepo,
		generator:    generator,
		renderer:     renderer,
		assets:       assets,
		locker:       locker,
		validator:    v,
		tracer:       otel.Tracer("generation-service"),
		cfg:          cfg,
		now:          time.Now,
		sessionQueue: make(chan sessionTask, 1),
		ctx:          ctx,
		cancel:       cancel,
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *GenerationService) worker() {
	defer s.wg.Done()

	for {
		select {
		case task := <-s.sessionQueue:
			s.runSession(s.ctx, task)
		case <-s.ctx.Done():
			return
		}
	}
}

// Close cancels the running walk and waits for the worker to exit.
// Sessions that never started are failed and their items requeued.
func (s *GenerationService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()

	for {
		select {
		case task := <-s.sessionQueue:
			s.abandon(context.Background(), task.session, task.itemIDs, interruptedMessage)
		default:
			return
		}
	}
}

// Enqueue moves up to maxCount not_started items to queued, oldest first.
// It returns 0 while any item is queued, any session is active or another
// caller holds the admission lock.
func (s *GenerationService) Enqueue(ctx context.Context, maxCount int) (int, error) {
	var queued []domain.ContentItem
	err := s.admit(ctx, func() error {
		var err error
		queued, err = s.enqueue(ctx, maxCount)
		return err
	})
	if errors.Is(err, domain.ErrSessionInProgress) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return len(queued), nil
}

// StartSession queues up to maxCount items and hands them to the worker as a new session.
// When nothing was queued no session is created and the result has an empty session ID.
func (s *GenerationService) StartSession(ctx context.Context, maxCount int) (*domain.StartResult, error) {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return nil, ErrServiceClosed
	}

	var task sessionTask
	err := s.admit(ctx, func() error {
		queued, err := s.enqueue(ctx, maxCount)
		if err != nil {
			return err
		}
		if len(queued) == 0 {
			return nil
		}

		ids := make([]string, len(queued))
		for i := range queued {
			ids[i] = queued[i].ID
		}

		now := s.now().UTC()
		session := &domain.GenerationSession{
			ID:         uuid.New().String(),
			Status:     domain.SessionStatusPending,
			TotalItems: len(ids),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
			s.requeueAll(ctx, ids)
			return fmt.Errorf("create generation session: %w", err)
		}

		task = sessionTask{session: session, itemIDs: ids}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if task.session == nil {
		return &domain.StartResult{}, nil
	}

	sessionLog := logger.WithSessionID(task.session.ID)

	// Close takes the write lock before draining, so a task sent under the
	// read lock is either walked by the worker or abandoned by the drain.
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		s.abandon(ctx, task.session, task.itemIDs, interruptedMessage)
		return nil, ErrServiceClosed
	}
	sent := false
	select {
	case s.sessionQueue <- task:
		sent = true
	case <-time.After(QueueSendTimeout):
	}
	s.mu.RUnlock()

	if !sent {
		sessionLog.ErrorContext(ctx, "Generation worker busy, session abandoned")
		s.abandon(ctx, task.session, task.itemIDs, "generation worker busy")
		return nil, domain.ErrSessionInProgress
	}
	sessionLog.InfoContext(ctx, "Generation session queued", "total_items", len(task.itemIDs))

	return &domain.StartResult{
		SessionID:   task.session.ID,
		QueuedCount: len(task.itemIDs),
	}, nil
}

// SessionStatus returns the session's progress, or nil if it does not exist.
func (s *GenerationService) SessionStatus(ctx context.Context, id string) (*domain.SessionProgress, error) {
	session, err := s.sessionRepo.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get generation session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	remaining, err := s.contentRepo.CountByStatus(ctx, domain.StatusQueued)
	if err != nil {
		return nil, fmt.Errorf("count queued items: %w", err)
	}

	progress := domain.NewSessionProgress(*session, remaining)
	return &progress, nil
}

// admit runs fn while holding both the in-process and the shared admission lock.
func (s *GenerationService) admit(ctx context.Context, fn func() error) error {
	s.admitMu.Lock()
	defer s.admitMu.Unlock()

	lease, err := s.locker.TryLock(ctx, admissionLockKey, s.cfg.LockTTL)
	if errors.Is(err, lock.ErrLockNotAcquired) {
		return domain.ErrSessionInProgress
	}
	if err != nil {
		return fmt.Errorf("acquire admission lock: %w", err)
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			logger.WarnContext(ctx, "Failed to release admission lock", "error", err)
		}
	}()

	return fn()
}

// enqueue must be called under the admission lock.
func (s *GenerationService) enqueue(ctx context.Context, maxCount int) ([]domain.ContentItem, error) {
	if maxCount < 1 {
		return nil, nil
	}

	queuedCount, err := s.contentRepo.CountByStatus(ctx, domain.StatusQueued)
	if err != nil {
		return nil, fmt.Errorf("count queued items: %w", err)
	}
	if queuedCount > 0 {
		return nil, nil
	}

	active, err := s.sessionRepo.HasActiveSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("check active session: %w", err)
	}
	if active {
		return nil, nil
	}

	now := s.now().UTC()
	items, err := s.contentRepo.ClaimForGeneration(ctx, maxCount, func(item domain.ContentItem) (domain.ContentItem, error) {
		return domain.Transition(item, domain.EventEnqueue, domain.TransitionPayload{}, now)
	})
	if err != nil {
		return nil, fmt.Errorf("claim items for generation: %w", err)
	}

	if len(items) > 0 {
		logger.InfoContext(ctx, "Items queued for generation", "count", len(items))
	}
	return items, nil
}

func (s *GenerationService) runSession(ctx context.Context, task sessionTask) {
	session := task.session
	sessionLog := logger.WithSessionID(session.ID)
	timer := metrics.NewTimer()

	metrics.StartJob(jobGeneration)
	defer metrics.EndJob(jobGeneration)

	ctx, span := s.tracer.Start(ctx, "generation.session",
		trace.WithAttributes(
			attribute.String("session_id", session.ID),
			attribute.Int("total_items", len(task.itemIDs)),
		))
	defer span.End()

	if s.generator == nil || s.renderer == nil || s.assets == nil {
		span.SetStatus(codes.Error, "collaborator missing")
		s.abandon(ctx, session, task.itemIDs, "draft generator, image renderer and asset store must all be configured")
		metrics.ObserveSessionCompletion(string(domain.SessionStatusFailed), timer.Seconds())
		return
	}

	if err := s.sessionRepo.MarkProcessing(ctx, session.ID, s.now().UTC()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mark processing")
		s.abandon(ctx, session, task.itemIDs, err.Error())
		metrics.ObserveSessionCompletion(string(domain.SessionStatusFailed), timer.Seconds())
		return
	}

	sessionLog.InfoContext(ctx, "Generation session started", "total_items", len(task.itemIDs))

	failed := 0
	for i, itemID := range task.itemIDs {
		if ctx.Err() != nil {
			s.abandon(ctx, session, task.itemIDs[i:], interruptedMessage)
			metrics.ObserveSessionCompletion(string(domain.SessionStatusFailed), timer.Seconds())
			return
		}

		if err := s.processItem(ctx, session.ID, itemID); err != nil {
			failed++
		}

		if i == len(task.itemIDs)-1 {
			break
		}
		if err := sleepContext(ctx, s.cfg.ItemDelay); err != nil {
			s.abandon(ctx, session, task.itemIDs[i+1:], interruptedMessage)
			metrics.ObserveSessionCompletion(string(domain.SessionStatusFailed), timer.Seconds())
			return
		}
	}

	bctx, cancel := bookkeepingContext(ctx)
	defer cancel()
	if err := s.sessionRepo.FinishSession(bctx, session.ID, domain.SessionStatusCompleted, nil, s.now().UTC()); err != nil {
		sessionLog.ErrorContext(ctx, "Failed to complete generation session", "error", err)
	}

	metrics.ObserveSessionCompletion(string(domain.SessionStatusCompleted), timer.Seconds())
	sessionLog.InfoContext(ctx, "Generation session completed",
		"total_items", len(task.itemIDs),
		"failed_items", failed,
		"elapsed_seconds", timer.Seconds(),
	)
}

// processItem drafts one item. A failure requeues the item and is appended to the session's error message.
// processedItems is incremented either way.
func (s *GenerationService) processItem(ctx context.Context, sessionID, itemID string) error {
	itemLog := logger.WithItemID(itemID).With("session_id", sessionID)
	timer := metrics.NewTimer()

	ctx, span := s.tracer.Start(ctx, "generation.item",
		trace.WithAttributes(attribute.String("item_id", itemID)))
	defer span.End()

	itemCtx, cancel := context.WithTimeout(ctx, s.itemTimeout())
	err := s.draftItem(itemCtx, itemID)
	cancel()

	bctx, bcancel := bookkeepingContext(ctx)
	defer bcancel()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "draft failed")
		itemLog.WarnContext(ctx, "Item generation failed", "error", err)

		s.requeue(bctx, itemID)
		if appendErr := s.sessionRepo.AppendError(bctx, sessionID, fmt.Sprintf("item %s: %v", itemID, err)); appendErr != nil {
			itemLog.ErrorContext(ctx, "Failed to record item error on session", "error", appendErr)
		}
	} else {
		itemLog.InfoContext(ctx, "Item drafted")
	}

	if incErr := s.sessionRepo.IncrementProcessed(bctx, sessionID); incErr != nil {
		itemLog.ErrorContext(ctx, "Failed to increment session progress", "error", incErr)
	}

	metrics.ObserveGeneratedItem(err == nil, timer.Seconds())
	return err
}

func (s *GenerationService) draftItem(ctx context.Context, itemID string) error {
	item, err := s.contentRepo.Get(ctx, itemID)
	if err != nil {
		return fmt.Errorf("load item: %w", err)
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	if item.Status != domain.StatusQueued {
		return fmt.Errorf("%w: item is %s, not queued", domain.ErrInvalidTransition, item.Status)
	}

	draft, err := s.generator.Generate(ctx, item.Source)
	if err != nil {
		return fmt.Errorf("generate draft: %w", err)
	}
	if err := s.validator.ValidateDraft(draft); err != nil {
		return err
	}

	urls := make([]string, 0, len(draft.ImageDescriptions))
	for i, description := range draft.ImageDescriptions {
		data, err := s.renderer.Render(ctx, description)
		if err != nil {
			return fmt.Errorf("render image %d: %w", i, err)
		}
		url, err := s.assets.Store(ctx, data, fmt.Sprintf("%s-%d.png", itemID, i))
		if err != nil {
			return fmt.Errorf("store image %d: %w", i, err)
		}
		urls = append(urls, url)
	}

	payload := domain.TransitionPayload{
		Variants:        draft.Variants,
		ImageCandidates: urls,
	}
	updated, err := s.contentRepo.Mutate(ctx, itemID, func(current domain.ContentItem) (domain.ContentItem, error) {
		return domain.Transition(current, domain.EventDraft, payload, s.now().UTC())
	})
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	if updated == nil {
		return domain.ErrItemNotFound
	}
	return nil
}

// abandon requeues the given items and fails the session, appending message to its errors.
func (s *GenerationService) abandon(ctx context.Context, session *domain.GenerationSession, itemIDs []string, message string) {
	bctx, cancel := bookkeepingContext(ctx)
	defer cancel()

	s.requeueAll(bctx, itemIDs)
	if err := s.sessionRepo.AppendError(bctx, session.ID, message); err != nil {
		logger.WithSessionID(session.ID).ErrorContext(ctx, "Failed to record session failure reason", "error", err)
	}
	if err := s.sessionRepo.FinishSession(bctx, session.ID, domain.SessionStatusFailed, nil, s.now().UTC()); err != nil {
		logger.WithSessionID(session.ID).ErrorContext(ctx, "Failed to mark generation session failed", "error", err)
	}
	logger.WithSessionID(session.ID).WarnContext(ctx, "Generation session failed",
		"reason", message,
		"requeued_items", len(itemIDs),
	)
}

func (s *GenerationService) requeueAll(ctx context.Context, itemIDs []string) {
	for _, id := range itemIDs {
		s.requeue(ctx, id)
	}
}

// requeue returns a queued item to not_started. Items that already left queued are left alone.
func (s *GenerationService) requeue(ctx context.Context, itemID string) {
	_, err := s.contentRepo.Mutate(ctx, itemID, func(current domain.ContentItem) (domain.ContentItem, error) {
		return domain.Transition(current, domain.EventRequeue, domain.TransitionPayload{}, s.now().UTC())
	})
	if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
		logger.WithItemID(itemID).ErrorContext(ctx, "Failed to requeue item", "error", err)
	}
}

func (s *GenerationService) itemTimeout() time.Duration {
	if s.cfg.ItemTimeout <= 0 {
		return 5 * time.Minute
	}
	return s.cfg.ItemTimeout
}

// bookkeepingContext detaches from cancellation so progress survives shutdown.
func bookkeepingContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), bookkeepingTimeout)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
