package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the workflow status of a content item.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusQueued     Status = "queued"
	StatusDrafted    Status = "drafted"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusPosted     Status = "posted"
)

// ValidStatuses contains all valid content statuses.
var ValidStatuses = []Status{
	StatusNotStarted,
	StatusQueued,
	StatusDrafted,
	StatusApproved,
	StatusRejected,
	StatusPosted,
}

// legacyStatuses maps values written by the previous status vocabulary.
var legacyStatuses = map[string]Status{
	"":            StatusNotStarted,
	"not started": StatusNotStarted,
	"notstarted":  StatusNotStarted,
	"queue":       StatusQueued,
	"generated":   StatusDrafted,
	"draft":       StatusDrafted,
}

const (
	// MaxVariants is the maximum number of generated text candidates per item.
	MaxVariants = 3
	// MaxImageCandidates is the maximum number of rendered images per item.
	MaxImageCandidates = 3
)

// IsValid checks if a status is one of the canonical statuses.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ParseStatus converts a stored status into a canonical Status, accepting legacy names.
func ParseStatus(raw string) (Status, error) {
	if s := Status(raw); s.IsValid() {
		return s, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if s := Status(normalized); s.IsValid() {
		return s, nil
	}
	if s, ok := legacyStatuses[normalized]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown content status %q", raw)
}

// SourceFields is the author input a draft is generated from.
type SourceFields struct {
	Instruction string   `json:"instruction"`
	ContentType string   `json:"content_type"`
	Template    string   `json:"template"`
	Purpose     string   `json:"purpose"`
	StyleSample string   `json:"style_sample"`
	Keywords    []string `json:"keywords,omitempty"`
}

// ContentItem is one unit of social content tracked through drafting, review and publication.
type ContentItem struct {
	ID     string       `json:"id"`
	Source SourceFields `json:"source"`
	Status Status       `json:"status"`

	Variants        []string `json:"variants,omitempty"`
	ImageCandidates []string `json:"image_candidates,omitempty"`

	SelectedVariantIndex *int  `json:"selected_variant_index,omitempty"`
	SelectedImageIndices []int `json:"selected_image_indices,omitempty"`

	FinalText      string   `json:"final_text,omitempty"`
	FinalImageURLs []string `json:"final_image_urls,omitempty"`

	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	ExternalPostURL *string    `json:"external_post_url,omitempty"`

	PublishKey       *string `json:"-"`
	PublishAttempts  int     `json:"publish_attempts"`
	LastPublishError *string `json:"last_publish_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the item so transitions never share slices with their input.
func (c ContentItem) Clone() ContentItem {
	out := c
	out.Source.Keywords = cloneStrings(c.Source.Keywords)
	out.Variants = cloneStrings(c.Variants)
	out.ImageCandidates = cloneStrings(c.ImageCandidates)
	out.FinalImageURLs = cloneStrings(c.FinalImageURLs)
	if c.SelectedImageIndices != nil {
		out.SelectedImageIndices = append([]int(nil), c.SelectedImageIndices...)
	}
	if c.SelectedVariantIndex != nil {
		v := *c.SelectedVariantIndex
		out.SelectedVariantIndex = &v
	}
	out.ScheduledAt = cloneTime(c.ScheduledAt)
	out.PublishedAt = cloneTime(c.PublishedAt)
	out.ExternalPostURL = cloneString(c.ExternalPostURL)
	out.PublishKey = cloneString(c.PublishKey)
	out.LastPublishError = cloneString(c.LastPublishError)
	return out
}

// Draft is the output of the draft generator for one item.
type Draft struct {
	Variants          []string `json:"variants"`
	ImageDescriptions []string `json:"image_descriptions"`
}

// MediaSlot is an upload target registered with the publishing platform.
type MediaSlot struct {
	UploadURL string `json:"upload_url"`
	Handle    string `json:"handle"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
