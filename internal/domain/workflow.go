package domain

import (
	"fmt"
	"strings"
	"time"
)

// Event is an input to the content state machine.
type Event string

const (
	EventEnqueue Event = "enqueue"
	EventDraft   Event = "draft"
	EventRequeue Event = "requeue"
	EventApprove Event = "approve"
	EventReject  Event = "reject"
	EventRestore Event = "restore"
	EventPublish Event = "publish"
)

// transitions lists, per event, the status it is accepted in and the status it leads to.
var transitions = map[Event]struct {
	from Status
	to   Status
}{
	EventEnqueue: {StatusNotStarted, StatusQueued},
	EventDraft:   {StatusQueued, StatusDrafted},
	EventRequeue: {StatusQueued, StatusNotStarted},
	EventApprove: {StatusDrafted, StatusApproved},
	EventReject:  {StatusDrafted, StatusRejected},
	EventRestore: {StatusRejected, StatusDrafted},
	EventPublish: {StatusApproved, StatusPosted},
}

// ParseEvent converts a string into a known Event.
func ParseEvent(raw string) (Event, error) {
	e := Event(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := transitions[e]; !ok {
		return "", fmt.Errorf("unknown event %q", raw)
	}
	return e, nil
}

// AcceptedEvents returns the events accepted in the given status.
func AcceptedEvents(s Status) []Event {
	var events []Event
	for _, e := range []Event{EventEnqueue, EventDraft, EventRequeue, EventApprove, EventReject, EventRestore, EventPublish} {
		if transitions[e].from == s {
			events = append(events, e)
		}
	}
	return events
}

// reviewEvents may be fired by a reviewer. The others belong to the generation
// walk, the publisher and the reaper.
var reviewEvents = map[Event]bool{
	EventApprove: true,
	EventReject:  true,
	EventRestore: true,
}

// IsReviewEvent reports whether e may be fired through the review API.
func IsReviewEvent(e Event) bool {
	return reviewEvents[e]
}

// ReviewEvents returns the review events accepted in the given status.
func ReviewEvents(s Status) []Event {
	var events []Event
	for _, e := range AcceptedEvents(s) {
		if reviewEvents[e] {
			events = append(events, e)
		}
	}
	return events
}

// CanTransition reports whether the event is accepted in the given status.
func CanTransition(s Status, e Event) bool {
	t, ok := transitions[e]
	return ok && t.from == s
}

// TransitionPayload carries the data some events require.
type TransitionPayload struct {
	// draft
	Variants        []string
	ImageCandidates []string

	// approve
	ScheduledAt          *time.Time
	SelectedVariantIndex *int
	SelectedImageIndices []int

	// publish
	ExternalPostURL string
}

// Transition applies an event to an item and returns the resulting item.
// The input is never modified; on error the input is returned unchanged.
func Transition(item ContentItem, event Event, payload TransitionPayload, now time.Time) (ContentItem, error) {
	t, ok := transitions[event]
	if !ok {
		return item, fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, event)
	}
	if item.Status != t.from {
		return item, fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, event, item.Status)
	}

	next := item.Clone()
	var err error

	switch event {
	case EventDraft:
		err = applyDraft(&next, payload)
	case EventApprove:
		err = applyApprove(&next, payload)
	case EventPublish:
		err = applyPublish(&next, payload, now)
	}
	if err != nil {
		return item, err
	}

	next.Status = t.to
	next.UpdatedAt = now
	return next, nil
}

func applyDraft(item *ContentItem, payload TransitionPayload) error {
	if len(payload.Variants) == 0 {
		return missingField("variants")
	}
	if len(payload.Variants) > MaxVariants {
		return fmt.Errorf("%w: got %d variants, at most %d allowed", ErrInvalidDraft, len(payload.Variants), MaxVariants)
	}
	for i, v := range payload.Variants {
		if strings.TrimSpace(v) == "" {
			return missingField(fmt.Sprintf("variants[%d]", i))
		}
	}
	if len(payload.ImageCandidates) > MaxImageCandidates {
		return fmt.Errorf("%w: got %d image candidates, at most %d allowed", ErrInvalidDraft, len(payload.ImageCandidates), MaxImageCandidates)
	}

	item.Variants = cloneStrings(payload.Variants)
	item.ImageCandidates = cloneStrings(payload.ImageCandidates)
	item.SelectedVariantIndex = nil
	item.SelectedImageIndices = nil
	item.FinalText = ""
	item.FinalImageURLs = nil
	return nil
}

func applyApprove(item *ContentItem, payload TransitionPayload) error {
	if payload.ScheduledAt != nil {
		item.ScheduledAt = cloneTime(payload.ScheduledAt)
	}
	if item.ScheduledAt == nil {
		return missingField("scheduled_at")
	}

	if payload.SelectedVariantIndex == nil {
		return missingField("selected_variant_index")
	}
	idx := *payload.SelectedVariantIndex
	if idx < 0 || idx >= len(item.Variants) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidVariantIndex, idx, len(item.Variants))
	}
	text := strings.TrimSpace(item.Variants[idx])
	if text == "" {
		return missingField("final_text")
	}

	if len(payload.SelectedImageIndices) == 0 {
		return missingField("selected_image_indices")
	}
	urls := make([]string, 0, len(payload.SelectedImageIndices))
	seen := make(map[int]bool, len(payload.SelectedImageIndices))
	for _, i := range payload.SelectedImageIndices {
		if i < 0 || i >= len(item.ImageCandidates) {
			return fmt.Errorf("%w: image index %d not in [0,%d)", ErrInvalidVariantIndex, i, len(item.ImageCandidates))
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		urls = append(urls, item.ImageCandidates[i])
	}

	item.SelectedVariantIndex = &idx
	item.SelectedImageIndices = append([]int(nil), payload.SelectedImageIndices...)
	item.FinalText = text
	item.FinalImageURLs = urls
	return nil
}

func applyPublish(item *ContentItem, payload TransitionPayload, now time.Time) error {
	if strings.TrimSpace(payload.ExternalPostURL) == "" {
		return missingField("external_post_url")
	}
	url := payload.ExternalPostURL
	published := now
	item.ExternalPostURL = &url
	item.PublishedAt = &published
	item.LastPublishError = nil
	return nil
}

// EditVariant replaces one generated variant with human-edited text.
// Editing is only allowed while the item is under review.
func EditVariant(item ContentItem, index int, text string, now time.Time) (ContentItem, error) {
	if item.Status != StatusDrafted && item.Status != StatusRejected {
		return item, fmt.Errorf("%w: cannot edit variants in %s", ErrInvalidTransition, item.Status)
	}
	if index < 0 || index >= len(item.Variants) {
		return item, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidVariantIndex, index, len(item.Variants))
	}
	if strings.TrimSpace(text) == "" {
		return item, missingField(fmt.Sprintf("variants[%d]", index))
	}

	next := item.Clone()
	next.Variants[index] = text
	next.UpdatedAt = now
	return next, nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
}
