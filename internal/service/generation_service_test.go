package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"content-workflow/internal/domain"
	"content-workflow/internal/lock"
	"content-workflow/internal/mocks"
	"content-workflow/internal/service"
	"content-workflow/internal/validator"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func seedItems(store *memStore, instructions ...string) []string {
	ids := make([]string, len(instructions))
	for i, instruction := range instructions {
		created := baseTime.Add(time.Duration(i) * time.Minute)
		item := domain.ContentItem{
			ID:        uuid.New().String(),
			Source:    domain.SourceFields{Instruction: instruction, ContentType: "post"},
			Status:    domain.StatusNotStarted,
			CreatedAt: created,
			UpdatedAt: created,
		}
		store.put(item)
		ids[i] = item.ID
	}
	return ids
}

type generationDeps struct {
	store     *memStore
	generator *mocks.MockDraftGenerator
	renderer  *mocks.MockImageRenderer
	assets    *mocks.MockAssetStore
}

func newGenerationService(t *testing.T) (*service.GenerationService, generationDeps) {
	t.Helper()
	deps := generationDeps{
		store:     newMemStore(),
		generator: mocks.NewMockDraftGenerator(t),
		renderer:  mocks.NewMockImageRenderer(t),
		assets:    mocks.NewMockAssetStore(t),
	}
	svc := service.NewGenerationService(
		deps.store,
		deps.store,
		deps.generator,
		deps.renderer,
		deps.assets,
		lock.NewLocalLocker(),
		validator.NewValidator(),
		service.GenerationConfig{ItemTimeout: 5 * time.Second},
	)
	t.Cleanup(svc.Close)
	return svc, deps
}

// expectImages makes the renderer and asset store succeed for any description.
func expectImages(deps generationDeps) {
	deps.renderer.EXPECT().
		Render(mock.Anything, mock.Anything).
		Return([]byte("png"), nil).
		Maybe()
	deps.assets.EXPECT().
		Store(mock.Anything, []byte("png"), mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ []byte, name string) (string, error) {
			return "https://cdn.example.com/" + name, nil
		}).
		Maybe()
}

func waitForSession(t *testing.T, svc *service.GenerationService, id string) *domain.SessionProgress {
	t.Helper()
	var progress *domain.SessionProgress
	require.Eventually(t, func() bool {
		current, err := svc.SessionStatus(context.Background(), id)
		if err != nil || current == nil {
			return false
		}
		progress = current
		return !current.Session.Status.IsActive()
	}, 5*time.Second, 10*time.Millisecond)
	return progress
}

func TestGenerationService_StartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("queues the oldest items and drafts them", func(t *testing.T) {
		svc, deps := newGenerationService(t)
		ids := seedItems(deps.store, "first", "second", "third")

		deps.generator.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(&domain.Draft{
				Variants:          []string{"variant a", "variant b"},
				ImageDescriptions: []string{"a sunrise"},
			}, nil).
			Times(2)
		expectImages(deps)

		result, err := svc.StartSession(ctx, 2)
		require.NoError(t, err)
		require.NotEmpty(t, result.SessionID)
		assert.Equal(t, 2, result.QueuedCount)
		assert.Equal(t, domain.StatusNotStarted, deps.store.item(ids[2]).Status)

		progress := waitForSession(t, svc, result.SessionID)
		assert.Equal(t, domain.SessionStatusCompleted, progress.Session.Status)
		assert.Equal(t, 2, progress.Session.TotalItems)
		assert.Equal(t, 2, progress.Session.ProcessedItems)
		assert.Equal(t, 0, progress.QueueRemaining)
		assert.Equal(t, 100, progress.ProgressPercent)
		assert.Nil(t, progress.Session.ErrorMessage)

		for _, id := range ids[:2] {
			item := deps.store.item(id)
			assert.Equal(t, domain.StatusDrafted, item.Status)
			assert.Equal(t, []string{"variant a", "variant b"}, item.Variants)
			assert.Equal(t, []string{"https://cdn.example.com/" + id + "-0.png"}, item.ImageCandidates)
		}
		assert.Equal(t, domain.StatusNotStarted, deps.store.item(ids[2]).Status)
	})

	t.Run("failing item is requeued while siblings are drafted", func(t *testing.T) {
		svc, deps := newGenerationService(t)
		ids := seedItems(deps.store, "one", "two", "three")

		deps.generator.EXPECT().
			Generate(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, source domain.SourceFields) (*domain.Draft, error) {
				if source.Instruction == "two" {
					return nil, errors.New("model overloaded")
				}
				return &domain.Draft{Variants: []string{"text for " + source.Instruction}}, nil
			}).
			Times(3)

		result, err := svc.StartSession(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, result.QueuedCount)

		progress := waitForSession(t, svc, result.SessionID)
		assert.Equal(t, domain.SessionStatusCompleted, progress.Session.Status)
		assert.Equal(t, 3, progress.Session.ProcessedItems)
		require.NotNil(t, progress.Session.ErrorMessage)
		assert.Equal(t, fmt.Sprintf("item %s: generate draft: model overloaded", ids[1]), *progress.Session.ErrorMessage)

		assert.Equal(t, domain.StatusDrafted, deps.store.item(ids[0]).Status)
		assert.Equal(t, domain.StatusNotStarted, deps.store.item(ids[1]).Status)
		assert.Equal(t, domain.StatusDrafted, deps.store.item(ids[2]).Status)
	})

	t.Run("oversized draft is rejected and item requeued", func(t *testing.T) {
		svc, deps := newGenerationService(t)
		ids := seedItems(deps.store, "only")

		deps.generator.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(&domain.Draft{Variants: []string{"a", "b", "c", "d"}}, nil).
			Once()

		result, err := svc.StartSession(ctx, 1)
		require.NoError(t, err)

		progress := waitForSession(t, svc, result.SessionID)
		assert.Equal(t, domain.SessionStatusCompleted, progress.Session.Status)
		require.NotNil(t, progress.Session.ErrorMessage)
		assert.Contains(t, *progress.Session.ErrorMessage, "invalid draft")
		assert.Equal(t, domain.StatusNotStarted, deps.store.item(ids[0]).Status)
	})

	t.Run("asset failure requeues item", func(t *testing.T) {
		svc, deps := newGenerationService(t)
		ids := seedItems(deps.store, "only")

		deps.generator.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(&domain.Draft{Variants: []string{"a"}, ImageDescriptions: []string{"cat"}}, nil).
			Once()
		deps.renderer.EXPECT().Render(mock.Anything, "cat").Return([]byte("png"), nil).Once()
		deps.assets.EXPECT().Store(mock.Anything, []byte("png"), ids[0]+"-0.png").Return("", errors.New("bucket missing")).Once()

		result, err := svc.StartSession(ctx, 1)
		require.NoError(t, err)

		progress := waitForSession(t, svc, result.SessionID)
		assert.Equal(t, 1, progress.Session.ProcessedItems)
		require.NotNil(t, progress.Session.ErrorMessage)
		assert.Contains(t, *progress.Session.ErrorMessage, "store image 0: bucket missing")
		assert.Equal(t, domain.StatusNotStarted, deps.store.item(ids[0]).Status)
	})

	t.Run("nothing to queue creates no session", func(t *testing.T) {
		svc, deps := newGenerationService(t)

		result, err := svc.StartSession(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, result.SessionID)
		assert.Equal(t, 0, result.QueuedCount)
		assert.Equal(t, 0, deps.store.sessionCount())
	})

	t.Run("second session is not admitted while one is active", func(t *testing.T) {
		svc, deps := newGenerationService(t)
		seedItems(deps.store, "a", "b", "c")

		release := make(chan struct{})
		deps.generator.EXPECT().
			Generate(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ domain.SourceFields) (*domain.Draft, error) {
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
				return &domain.Draft{Variants: []string{"ok"}}, nil
			}).
			Maybe()

		first, err := svc.StartSession(ctx, 1)
		require.NoError(t, err)
		require.NotEmpty(t, first.SessionID)

		second, err := svc.StartSession(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, second.SessionID)
		assert.Equal(t, 0, second.QueuedCount)

		queued, err := svc.Enqueue(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, queued)

		close(release)
		progress := waitForSession(t, svc, first.SessionID)
		assert.Equal(t, domain.SessionStatusCompleted, progress.Session.Status)
		assert.Equal(t, 1, deps.store.sessionCount())
	})

	t.Run("missing collaborator fails the session before drafting", func(t *testing.T) {
		store := newMemStore()
		ids := seedItems(store, "a", "b")
		svc := service.NewGenerationService(store, store, nil, nil, nil, lock.NewLocalLocker(), validator.NewValidator(), service.GenerationConfig{})
		defer svc.Close()

		result, err := svc.StartSession(ctx, 2)
		require.NoError(t, err)

		progress := waitForSession(t, svc, result.SessionID)
		assert.Equal(t, domain.SessionStatusFailed, progress.Session.Status)
		assert.Equal(t, 0, progress.Session.ProcessedItems)
		require.NotNil(t, progress.Session.ErrorMessage)
		assert.Contains(t, *progress.Session.ErrorMessage, "must all be configured")
		for _, id := range ids {
			assert.Equal(t, domain.StatusNotStarted, store.item(id).Status)
		}
	})

	t.Run("close interrupts the walk and requeues remaining items", func(t *testing.T) {
		svc, deps := newGenerationService(t)
		ids := seedItems(deps.store, "a", "b")

		started := make(chan struct{})
		deps.generator.EXPECT().
			Generate(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ domain.SourceFields) (*domain.Draft, error) {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			}).
			Once()

		result, err := svc.StartSession(ctx, 2)
		require.NoError(t, err)

		<-started
		svc.Close()

		session := deps.store.session(result.SessionID)
		assert.Equal(t, domain.SessionStatusFailed, session.Status)
		assert.Equal(t, 1, session.ProcessedItems)
		require.NotNil(t, session.ErrorMessage)
		assert.Contains(t, *session.ErrorMessage, "interrupted")
		for _, id := range ids {
			assert.Equal(t, domain.StatusNotStarted, deps.store.item(id).Status)
		}

		_, err = svc.StartSession(ctx, 1)
		require.ErrorIs(t, err, service.ErrServiceClosed)
	})
}

func TestGenerationService_CloseRacingStartSession(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		store := newMemStore()
		ids := seedItems(store, "a")
		svc := service.NewGenerationService(store, store, nil, nil, nil, lock.NewLocalLocker(), validator.NewValidator(), service.GenerationConfig{})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.StartSession(ctx, 1)
		}()
		go func() {
			defer wg.Done()
			svc.Close()
		}()
		wg.Wait()
		svc.Close()

		active, err := store.HasActiveSession(ctx)
		require.NoError(t, err)
		assert.False(t, active, "iteration %d left a session active", i)
		assert.Equal(t, domain.StatusNotStarted, store.item(ids[0]).Status, "iteration %d left the item queued", i)
	}
}

func TestGenerationService_Enqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("queues up to max count oldest first", func(t *testing.T) {
		svc, deps := newGenerationService(t)
		ids := seedItems(deps.store, "a", "b", "c")

		queued, err := svc.Enqueue(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, queued)
		assert.Equal(t, domain.StatusQueued, deps.store.item(ids[0]).Status)
		assert.Equal(t, domain.StatusQueued, deps.store.item(ids[1]).Status)
		assert.Equal(t, domain.StatusNotStarted, deps.store.item(ids[2]).Status)
	})

	t.Run("returns zero while items are queued", func(t *testing.T) {
		svc, deps := newGenerationService(t)
		seedItems(deps.store, "a", "b", "c")

		_, err := svc.Enqueue(ctx, 1)
		require.NoError(t, err)

		queued, err := svc.Enqueue(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, queued)
	})

	t.Run("non-positive max count queues nothing", func(t *testing.T) {
		svc, deps := newGenerationService(t)
		seedItems(deps.store, "a")

		queued, err := svc.Enqueue(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, queued)
	})

	t.Run("admission lock held elsewhere", func(t *testing.T) {
		store := newMemStore()
		seedItems(store, "a")
		locker := lock.NewLocalLocker()
		lease, err := locker.TryLock(ctx, "generation-admission", time.Minute)
		require.NoError(t, err)
		defer lease.Release(ctx)

		svc := service.NewGenerationService(store, store, nil, nil, nil, locker, validator.NewValidator(), service.GenerationConfig{})
		defer svc.Close()

		queued, err := svc.Enqueue(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, queued)

		_, err = svc.StartSession(ctx, 1)
		require.ErrorIs(t, err, domain.ErrSessionInProgress)
		assert.Equal(t, 0, store.sessionCount())
	})
}

func TestGenerationService_SessionStatus(t *testing.T) {
	svc, _ := newGenerationService(t)

	progress, err := svc.SessionStatus(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, progress)
}
