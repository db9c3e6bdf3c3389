package service

import (
	"context"

	"content-workflow/internal/domain"
)

// DraftGenerator turns an item's source fields into draft variants and image descriptions.
type DraftGenerator interface {
	Generate(ctx context.Context, source domain.SourceFields) (*domain.Draft, error)
}

// ImageRenderer renders one image description to image bytes.
type ImageRenderer interface {
	Render(ctx context.Context, description string) ([]byte, error)
}

// AssetStore persists rendered images and returns their public URL.
type AssetStore interface {
	Store(ctx context.Context, data []byte, name string) (string, error)
}

// MediaFetcher downloads the bytes behind a final image URL.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// PublisherClient is the publishing platform's multi-step post protocol.
// Any step may fail with domain.ErrAuthExpired.
type PublisherClient interface {
	// Identity returns the account the posts are created for.
	Identity(ctx context.Context) (string, error)
	// RegisterMedia reserves an upload slot for one image.
	RegisterMedia(ctx context.Context, accountID string) (*domain.MediaSlot, error)
	// UploadMedia sends image bytes to a registered slot.
	UploadMedia(ctx context.Context, slot domain.MediaSlot, data []byte) error
	// CreatePost publishes text with uploaded media and returns the platform post ID.
	CreatePost(ctx context.Context, accountID, text string, mediaHandles []string, idempotencyKey string) (string, error)
	// RefreshCredential exchanges the refresh token for a new access token.
	RefreshCredential(ctx context.Context) error
	// PostURL builds the public URL of a post.
	PostURL(postID string) string
}

// ContentServiceInterface defines the interface for content item operations.
// Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	// Create stores a new not_started item.
	Create(ctx context.Context, source domain.SourceFields) (*domain.ContentItem, error)
	// Get retrieves an item by ID.
	Get(ctx context.Context, id string) (*domain.ContentItem, error)
	// Transition applies a workflow event atomically.
	Transition(ctx context.Context, id string, event domain.Event, payload domain.TransitionPayload) (*domain.ContentItem, error)
	// EditVariant replaces one draft variant's text.
	EditVariant(ctx context.Context, id string, index int, text string) (*domain.ContentItem, error)
}

// GenerationServiceInterface defines the interface for generation session operations.
// Used for dependency injection and mocking in tests.
type GenerationServiceInterface interface {
	// Enqueue moves up to maxCount not_started items to queued.
	Enqueue(ctx context.Context, maxCount int) (int, error)
	// StartSession queues items and starts drafting them in the background.
	StartSession(ctx context.Context, maxCount int) (*domain.StartResult, error)
	// SessionStatus returns a progress snapshot, or nil if the session does not exist.
	SessionStatus(ctx context.Context, id string) (*domain.SessionProgress, error)
	// Close stops the background worker.
	Close()
}
