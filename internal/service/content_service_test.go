package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"content-workflow/internal/domain"
	"content-workflow/internal/mocks"
	"content-workflow/internal/service"
)

func TestContentService_Create(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)
	svc := service.NewContentService(repo)

	repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(item *domain.ContentItem) bool {
			return item.ID != "" && item.Status == domain.StatusNotStarted && item.Source.Instruction == "launch post"
		})).
		Return(nil)

	item, err := svc.Create(context.Background(), domain.SourceFields{Instruction: "launch post"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotStarted, item.Status)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestContentService_Get(t *testing.T) {
	t.Run("missing item", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		svc := service.NewContentService(repo)
		repo.EXPECT().Get(mock.Anything, "nope").Return(nil, nil)

		_, err := svc.Get(context.Background(), "nope")
		require.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		svc := service.NewContentService(repo)
		repo.EXPECT().Get(mock.Anything, "x").Return(nil, errors.New("pool closed"))

		_, err := svc.Get(context.Background(), "x")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestContentService_Transition(t *testing.T) {
	ctx := context.Background()

	drafted := domain.ContentItem{
		ID:              "item-1",
		Status:          domain.StatusDrafted,
		Variants:        []string{"first", "second"},
		ImageCandidates: []string{"https://cdn.example.com/1.png"},
	}

	t.Run("approve materializes the selection", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		svc := service.NewContentService(repo)
		repo.EXPECT().Mutate(mock.Anything, "item-1", mock.Anything).RunAndReturn(applyMutation(drafted))

		variant := 1
		scheduled := baseTime.Add(24 * time.Hour)
		item, err := svc.Transition(ctx, "item-1", domain.EventApprove, domain.TransitionPayload{
			ScheduledAt:          &scheduled,
			SelectedVariantIndex: &variant,
			SelectedImageIndices: []int{0},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, item.Status)
		assert.Equal(t, "second", item.FinalText)
		assert.Equal(t, []string{"https://cdn.example.com/1.png"}, item.FinalImageURLs)
	})

	t.Run("approve without schedule is rejected", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		svc := service.NewContentService(repo)
		repo.EXPECT().Mutate(mock.Anything, "item-1", mock.Anything).RunAndReturn(applyMutation(drafted))

		variant := 0
		_, err := svc.Transition(ctx, "item-1", domain.EventApprove, domain.TransitionPayload{
			SelectedVariantIndex: &variant,
			SelectedImageIndices: []int{0},
		})
		require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	})

	t.Run("event not accepted in current status", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		svc := service.NewContentService(repo)
		repo.EXPECT().Mutate(mock.Anything, "item-1", mock.Anything).RunAndReturn(applyMutation(drafted))

		_, err := svc.Transition(ctx, "item-1", domain.EventRestore, domain.TransitionPayload{})
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	for _, event := range []domain.Event{domain.EventPublish, domain.EventEnqueue, domain.EventRequeue, domain.EventDraft} {
		t.Run(string(event)+" never reaches the store", func(t *testing.T) {
			repo := mocks.NewMockContentRepository(t)
			svc := service.NewContentService(repo)

			_, err := svc.Transition(ctx, "item-1", event, domain.TransitionPayload{ExternalPostURL: "https://x"})
			require.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.Contains(t, err.Error(), "not a review event")
		})
	}

	t.Run("missing item", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		svc := service.NewContentService(repo)
		repo.EXPECT().Mutate(mock.Anything, "gone", mock.Anything).Return(nil, nil)

		_, err := svc.Transition(ctx, "gone", domain.EventReject, domain.TransitionPayload{})
		require.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestContentService_EditVariant(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)
	svc := service.NewContentService(repo)

	rejected := domain.ContentItem{ID: "item-1", Status: domain.StatusRejected, Variants: []string{"old"}}
	repo.EXPECT().Mutate(mock.Anything, "item-1", mock.Anything).RunAndReturn(applyMutation(rejected))

	item, err := svc.EditVariant(context.Background(), "item-1", 0, "new text")
	require.NoError(t, err)
	assert.Equal(t, []string{"new text"}, item.Variants)
	assert.Equal(t, domain.StatusRejected, item.Status)
}
