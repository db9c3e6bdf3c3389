package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-workflow/internal/domain"
)

var allEvents = []domain.Event{
	domain.EventEnqueue,
	domain.EventDraft,
	domain.EventRequeue,
	domain.EventApprove,
	domain.EventReject,
	domain.EventRestore,
	domain.EventPublish,
}

func intPtr(i int) *int { return &i }

func draftedItem() domain.ContentItem {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.ContentItem{
		ID:              "item-1",
		Status:          domain.StatusDrafted,
		Variants:        []string{"first", "second", "third"},
		ImageCandidates: []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"},
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

// validPayload returns a payload that satisfies every event's requirements.
func validPayload() domain.TransitionPayload {
	at := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return domain.TransitionPayload{
		Variants:             []string{"v1", "v2"},
		ImageCandidates:      []string{"https://cdn.example.com/x.png"},
		ScheduledAt:          &at,
		SelectedVariantIndex: intPtr(0),
		SelectedImageIndices: []int{0},
		ExternalPostURL:      "https://social.example.com/p/1",
	}
}

func TestTransition_Completeness(t *testing.T) {
	accepted := map[domain.Status]map[domain.Event]domain.Status{
		domain.StatusNotStarted: {domain.EventEnqueue: domain.StatusQueued},
		domain.StatusQueued: {
			domain.EventDraft:   domain.StatusDrafted,
			domain.EventRequeue: domain.StatusNotStarted,
		},
		domain.StatusDrafted: {
			domain.EventApprove: domain.StatusApproved,
			domain.EventReject:  domain.StatusRejected,
		},
		domain.StatusApproved: {domain.EventPublish: domain.StatusPosted},
		domain.StatusRejected: {domain.EventRestore: domain.StatusDrafted},
		domain.StatusPosted:   {},
	}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, status := range domain.ValidStatuses {
		for _, event := range allEvents {
			t.Run(string(status)+"/"+string(event), func(t *testing.T) {
				item := draftedItem()
				item.Status = status
				if status == domain.StatusApproved {
					item.FinalText = "first"
					item.FinalImageURLs = []string{"https://cdn.example.com/a.png"}
				}
				before := item.Clone()

				got, err := domain.Transition(item, event, validPayload(), now)

				want, ok := accepted[status][event]
				if !ok {
					require.ErrorIs(t, err, domain.ErrInvalidTransition)
					assert.Equal(t, before, got)
					assert.Equal(t, before, item, "input must not be modified")
					return
				}
				require.NoError(t, err)
				assert.Equal(t, want, got.Status)
				assert.Equal(t, now, got.UpdatedAt)
				assert.Equal(t, before, item, "input must not be modified")
			})
		}
	}
}

func TestTransition_AcceptedEventsMatchesTable(t *testing.T) {
	assert.Equal(t, []domain.Event{domain.EventEnqueue}, domain.AcceptedEvents(domain.StatusNotStarted))
	assert.Equal(t, []domain.Event{domain.EventDraft, domain.EventRequeue}, domain.AcceptedEvents(domain.StatusQueued))
	assert.Equal(t, []domain.Event{domain.EventApprove, domain.EventReject}, domain.AcceptedEvents(domain.StatusDrafted))
	assert.Equal(t, []domain.Event{domain.EventPublish}, domain.AcceptedEvents(domain.StatusApproved))
	assert.Equal(t, []domain.Event{domain.EventRestore}, domain.AcceptedEvents(domain.StatusRejected))
	assert.Empty(t, domain.AcceptedEvents(domain.StatusPosted))
}

func TestTransition_ApprovePreconditions(t *testing.T) {
	now := time.Now()
	at := now.Add(time.Hour)

	tests := []struct {
		name    string
		item    func() domain.ContentItem
		payload domain.TransitionPayload
		wantErr error
		field   string
	}{
		{
			name:    "missing scheduled_at",
			item:    draftedItem,
			payload: domain.TransitionPayload{SelectedVariantIndex: intPtr(0), SelectedImageIndices: []int{0}},
			wantErr: domain.ErrMissingRequiredField,
			field:   "scheduled_at",
		},
		{
			name:    "missing selected variant",
			item:    draftedItem,
			payload: domain.TransitionPayload{ScheduledAt: &at, SelectedImageIndices: []int{0}},
			wantErr: domain.ErrMissingRequiredField,
			field:   "selected_variant_index",
		},
		{
			name:    "missing selected images",
			item:    draftedItem,
			payload: domain.TransitionPayload{ScheduledAt: &at, SelectedVariantIndex: intPtr(1)},
			wantErr: domain.ErrMissingRequiredField,
			field:   "selected_image_indices",
		},
		{
			name:    "variant index out of range",
			item:    draftedItem,
			payload: domain.TransitionPayload{ScheduledAt: &at, SelectedVariantIndex: intPtr(3), SelectedImageIndices: []int{0}},
			wantErr: domain.ErrInvalidVariantIndex,
		},
		{
			name:    "image index out of range",
			item:    draftedItem,
			payload: domain.TransitionPayload{ScheduledAt: &at, SelectedVariantIndex: intPtr(0), SelectedImageIndices: []int{5}},
			wantErr: domain.ErrInvalidVariantIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item()
			got, err := domain.Transition(item, domain.EventApprove, tt.payload, now)

			require.ErrorIs(t, err, tt.wantErr)
			if tt.field != "" {
				assert.Contains(t, err.Error(), tt.field)
			}
			assert.Equal(t, domain.StatusDrafted, got.Status)
			assert.Nil(t, got.ScheduledAt)
			assert.Empty(t, got.FinalText)
		})
	}
}

func TestTransition_ApproveMaterializesSelection(t *testing.T) {
	now := time.Now()
	item := draftedItem()
	at := now.Add(2 * time.Hour)

	got, err := domain.Transition(item, domain.EventApprove, domain.TransitionPayload{
		ScheduledAt:          &at,
		SelectedVariantIndex: intPtr(1),
		SelectedImageIndices: []int{1, 0, 1},
	}, now)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
	assert.Equal(t, "second", got.FinalText)
	assert.Equal(t, []string{"https://cdn.example.com/b.png", "https://cdn.example.com/a.png"}, got.FinalImageURLs)
	require.NotNil(t, got.ScheduledAt)
	assert.True(t, at.Equal(*got.ScheduledAt))
	assert.Nil(t, got.PublishedAt)
	assert.Nil(t, got.ExternalPostURL)
}

func TestTransition_ApproveUsesExistingSchedule(t *testing.T) {
	now := time.Now()
	item := draftedItem()
	at := now.Add(time.Hour)
	item.ScheduledAt = &at

	got, err := domain.Transition(item, domain.EventApprove, domain.TransitionPayload{
		SelectedVariantIndex: intPtr(0),
		SelectedImageIndices: []int{0},
	}, now)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestTransition_PublishSetsFields(t *testing.T) {
	now := time.Now()
	item := draftedItem()
	item.Status = domain.StatusApproved
	item.FinalText = "first"
	item.FinalImageURLs = []string{"https://cdn.example.com/a.png"}
	msg := "previous failure"
	item.LastPublishError = &msg

	assert.Nil(t, item.PublishedAt)
	assert.Nil(t, item.ExternalPostURL)

	_, err := domain.Transition(item, domain.EventPublish, domain.TransitionPayload{}, now)
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)

	got, err := domain.Transition(item, domain.EventPublish, domain.TransitionPayload{
		ExternalPostURL: "https://social.example.com/p/42",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPosted, got.Status)
	require.NotNil(t, got.PublishedAt)
	assert.Equal(t, now, *got.PublishedAt)
	require.NotNil(t, got.ExternalPostURL)
	assert.Equal(t, "https://social.example.com/p/42", *got.ExternalPostURL)
	assert.Nil(t, got.LastPublishError)
}

func TestTransition_DraftValidation(t *testing.T) {
	now := time.Now()
	item := domain.ContentItem{ID: "q", Status: domain.StatusQueued}

	_, err := domain.Transition(item, domain.EventDraft, domain.TransitionPayload{}, now)
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)

	_, err = domain.Transition(item, domain.EventDraft, domain.TransitionPayload{
		Variants: []string{"a", "b", "c", "d"},
	}, now)
	require.ErrorIs(t, err, domain.ErrInvalidDraft)

	_, err = domain.Transition(item, domain.EventDraft, domain.TransitionPayload{
		Variants: []string{"a", "  "},
	}, now)
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)

	got, err := domain.Transition(item, domain.EventDraft, domain.TransitionPayload{
		Variants:        []string{"a"},
		ImageCandidates: nil,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDrafted, got.Status)
	assert.Equal(t, []string{"a"}, got.Variants)
}

func TestEditVariant(t *testing.T) {
	now := time.Now()

	t.Run("edits drafted item", func(t *testing.T) {
		item := draftedItem()
		got, err := domain.EditVariant(item, 2, "edited", now)
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Variants[2])
		assert.Equal(t, "third", item.Variants[2], "input must not be modified")
	})

	t.Run("edits rejected item", func(t *testing.T) {
		item := draftedItem()
		item.Status = domain.StatusRejected
		_, err := domain.EditVariant(item, 0, "edited", now)
		require.NoError(t, err)
	})

	t.Run("rejects approved item", func(t *testing.T) {
		item := draftedItem()
		item.Status = domain.StatusApproved
		_, err := domain.EditVariant(item, 0, "edited", now)
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		_, err := domain.EditVariant(draftedItem(), 3, "edited", now)
		require.ErrorIs(t, err, domain.ErrInvalidVariantIndex)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := domain.EditVariant(draftedItem(), 0, " ", now)
		require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	})
}

func TestReviewEvents(t *testing.T) {
	assert.Empty(t, domain.ReviewEvents(domain.StatusNotStarted))
	assert.Empty(t, domain.ReviewEvents(domain.StatusQueued))
	assert.Equal(t, []domain.Event{domain.EventApprove, domain.EventReject}, domain.ReviewEvents(domain.StatusDrafted))
	assert.Empty(t, domain.ReviewEvents(domain.StatusApproved))
	assert.Equal(t, []domain.Event{domain.EventRestore}, domain.ReviewEvents(domain.StatusRejected))

	for _, e := range []domain.Event{domain.EventEnqueue, domain.EventDraft, domain.EventRequeue, domain.EventPublish} {
		assert.False(t, domain.IsReviewEvent(e), e)
	}
}

func TestParseEvent(t *testing.T) {
	e, err := domain.ParseEvent(" Approve ")
	require.NoError(t, err)
	assert.Equal(t, domain.EventApprove, e)

	_, err = domain.ParseEvent("archive")
	require.Error(t, err)
}
