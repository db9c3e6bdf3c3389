package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-workflow/internal/domain"
	"content-workflow/internal/repository"
)

func newItem(createdAt time.Time) *domain.ContentItem {
	return &domain.ContentItem{
		ID: uuid.New().String(),
		Source: domain.SourceFields{
			Instruction: "Announce the spring release",
			ContentType: "announcement",
			Template:    "hook / body / call to action",
			Purpose:     "awareness",
			StyleSample: "Short and upbeat.",
			Keywords:    []string{"release", "spring"},
		},
		Status:    domain.StatusNotStarted,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func enqueueFn(now time.Time) repository.MutateFunc {
	return func(item domain.ContentItem) (domain.ContentItem, error) {
		return domain.Transition(item, domain.EventEnqueue, domain.TransitionPayload{}, now)
	}
}

func TestPostgresContentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresContentRepository(testDB.Pool)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("create and get item", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		item := newItem(base)
		require.NoError(t, repo.Create(ctx, item))

		retrieved, err := repo.Get(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)

		assert.Equal(t, item.ID, retrieved.ID)
		assert.Equal(t, item.Source, retrieved.Source)
		assert.Equal(t, domain.StatusNotStarted, retrieved.Status)
		assert.Empty(t, retrieved.Variants)
		assert.Nil(t, retrieved.ScheduledAt)
		assert.Nil(t, retrieved.PublishedAt)
		assert.Nil(t, retrieved.ExternalPostURL)
	})

	t.Run("get non-existent item returns nil", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		retrieved, err := repo.Get(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("claim takes oldest items first", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		oldest := newItem(base.Add(-3 * time.Hour))
		middle := newItem(base.Add(-2 * time.Hour))
		newest := newItem(base.Add(-1 * time.Hour))
		for _, it := range []*domain.ContentItem{newest, oldest, middle} {
			require.NoError(t, repo.Create(ctx, it))
		}

		claimed, err := repo.ClaimForGeneration(ctx, 2, enqueueFn(base))
		require.NoError(t, err)
		require.Len(t, claimed, 2)
		assert.Equal(t, oldest.ID, claimed[0].ID)
		assert.Equal(t, middle.ID, claimed[1].ID)

		queued, err := repo.CountByStatus(ctx, domain.StatusQueued)
		require.NoError(t, err)
		assert.Equal(t, 2, queued)

		remaining, err := repo.Get(ctx, newest.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusNotStarted, remaining.Status)
	})

	t.Run("concurrent claims never share an item", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		for i := 0; i < 10; i++ {
			require.NoError(t, repo.Create(ctx, newItem(base.Add(time.Duration(i)*time.Minute))))
		}

		var mu sync.Mutex
		seen := make(map[string]int)
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				claimed, err := repo.ClaimForGeneration(ctx, 5, enqueueFn(base))
				assert.NoError(t, err)
				mu.Lock()
				defer mu.Unlock()
				for _, it := range claimed {
					seen[it.ID]++
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, 10)
		for id, n := range seen {
			assert.Equal(t, 1, n, "item %s claimed more than once", id)
		}
	})

	t.Run("mutate applies transition", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		item := newItem(base)
		item.Status = domain.StatusQueued
		require.NoError(t, repo.Create(ctx, item))

		updated, err := repo.Mutate(ctx, item.ID, func(current domain.ContentItem) (domain.ContentItem, error) {
			return domain.Transition(current, domain.EventDraft, domain.TransitionPayload{
				Variants:        []string{"one", "two"},
				ImageCandidates: []string{"https://cdn.example.com/1.png"},
			}, base.Add(time.Minute))
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, domain.StatusDrafted, updated.Status)

		retrieved, err := repo.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDrafted, retrieved.Status)
		assert.Equal(t, []string{"one", "two"}, retrieved.Variants)
		assert.Equal(t, []string{"https://cdn.example.com/1.png"}, retrieved.ImageCandidates)
		assert.True(t, base.Add(time.Minute).Equal(retrieved.UpdatedAt))
	})

	t.Run("mutate persists approval selection", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		item := newItem(base)
		item.Status = domain.StatusQueued
		require.NoError(t, repo.Create(ctx, item))
		_, err := repo.Mutate(ctx, item.ID, func(current domain.ContentItem) (domain.ContentItem, error) {
			return domain.Transition(current, domain.EventDraft, domain.TransitionPayload{
				Variants:        []string{"one", "two"},
				ImageCandidates: []string{"https://cdn.example.com/1.png", "https://cdn.example.com/2.png"},
			}, base)
		})
		require.NoError(t, err)

		at := base.Add(time.Hour)
		idx := 1
		_, err = repo.Mutate(ctx, item.ID, func(current domain.ContentItem) (domain.ContentItem, error) {
			return domain.Transition(current, domain.EventApprove, domain.TransitionPayload{
				ScheduledAt:          &at,
				SelectedVariantIndex: &idx,
				SelectedImageIndices: []int{1},
			}, base)
		})
		require.NoError(t, err)

		retrieved, err := repo.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, retrieved.Status)
		assert.Equal(t, "two", retrieved.FinalText)
		assert.Equal(t, []string{"https://cdn.example.com/2.png"}, retrieved.FinalImageURLs)
		require.NotNil(t, retrieved.SelectedVariantIndex)
		assert.Equal(t, 1, *retrieved.SelectedVariantIndex)
		assert.Equal(t, []int{1}, retrieved.SelectedImageIndices)
		require.NotNil(t, retrieved.ScheduledAt)
		assert.True(t, at.Equal(*retrieved.ScheduledAt))
	})

	t.Run("mutate error leaves row unchanged", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		item := newItem(base)
		require.NoError(t, repo.Create(ctx, item))

		_, err := repo.Mutate(ctx, item.ID, func(current domain.ContentItem) (domain.ContentItem, error) {
			return domain.Transition(current, domain.EventApprove, domain.TransitionPayload{}, base)
		})
		require.ErrorIs(t, err, domain.ErrInvalidTransition)

		retrieved, err := repo.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusNotStarted, retrieved.Status)
	})

	t.Run("mutate non-existent item returns nil", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		called := false
		updated, err := repo.Mutate(ctx, uuid.New().String(), func(current domain.ContentItem) (domain.ContentItem, error) {
			called = true
			return current, nil
		})
		require.NoError(t, err)
		assert.Nil(t, updated)
		assert.False(t, called)
	})

	t.Run("list due for publish", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		due := insertApproved(t, repo, base, base.Add(-10*time.Minute))
		dueEarlier := insertApproved(t, repo, base, base.Add(-20*time.Minute))
		insertApproved(t, repo, base, base.Add(time.Hour))

		items, err := repo.ListDueForPublish(ctx, base, 10)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, dueEarlier, items[0].ID)
		assert.Equal(t, due, items[1].ID)

		limited, err := repo.ListDueForPublish(ctx, base.Add(2*time.Hour), 1)
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, dueEarlier, limited[0].ID)
	})

	t.Run("list stale queued items", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		stale := newItem(base.Add(-5 * time.Hour))
		stale.Status = domain.StatusQueued
		stale.UpdatedAt = base.Add(-3 * time.Hour)
		fresh := newItem(base.Add(-5 * time.Hour))
		fresh.Status = domain.StatusQueued
		fresh.UpdatedAt = base.Add(-time.Hour)
		require.NoError(t, repo.Create(ctx, stale))
		require.NoError(t, repo.Create(ctx, fresh))

		items, err := repo.ListStaleQueued(ctx, base.Add(-2*time.Hour), 10)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, stale.ID, items[0].ID)
	})

	t.Run("record publish failure keeps status", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		id := insertApproved(t, repo, base, base)

		attempts, err := repo.RecordPublishFailure(ctx, id, "boom")
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
		attempts, err = repo.RecordPublishFailure(ctx, id, "boom again")
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)

		retrieved, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, retrieved.Status)
		assert.Equal(t, 2, retrieved.PublishAttempts)
		require.NotNil(t, retrieved.LastPublishError)
		assert.Equal(t, "boom again", *retrieved.LastPublishError)
		require.NotNil(t, retrieved.ScheduledAt)
		assert.True(t, base.Equal(*retrieved.ScheduledAt))
	})

	t.Run("publish key is set once", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		id := insertApproved(t, repo, base, base)
		first := uuid.New().String()

		stored, err := repo.EnsurePublishKey(ctx, id, first)
		require.NoError(t, err)
		assert.Equal(t, first, stored)

		stored, err = repo.EnsurePublishKey(ctx, id, uuid.New().String())
		require.NoError(t, err)
		assert.Equal(t, first, stored)
	})

	t.Run("status column rejects legacy values", func(t *testing.T) {
		testDB.TruncateTables(t, "content_items")

		_, err := testDB.Pool.Exec(ctx, `INSERT INTO content_items (id, status) VALUES ($1, 'Queue')`, uuid.New().String())
		require.Error(t, err)
	})
}

// insertApproved creates an approved item scheduled at the given time and returns its ID.
func insertApproved(t *testing.T, repo *repository.PostgresContentRepository, now, scheduledAt time.Time) string {
	t.Helper()
	ctx := context.Background()

	item := newItem(now)
	item.Status = domain.StatusDrafted
	require.NoError(t, repo.Create(ctx, item))

	_, err := repo.Mutate(ctx, item.ID, func(current domain.ContentItem) (domain.ContentItem, error) {
		current.Variants = []string{"ready to post"}
		current.ImageCandidates = []string{"https://cdn.example.com/ready.png"}
		idx := 0
		return domain.Transition(current, domain.EventApprove, domain.TransitionPayload{
			ScheduledAt:          &scheduledAt,
			SelectedVariantIndex: &idx,
			SelectedImageIndices: []int{0},
		}, now)
	})
	require.NoError(t, err)
	return item.ID
}
