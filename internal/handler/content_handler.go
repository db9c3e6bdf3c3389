package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"content-workflow/internal/domain"
	"content-workflow/internal/logger"
	"content-workflow/internal/middleware"
	"content-workflow/internal/service"
	"content-workflow/internal/validator"
)

// ContentHandler handles content item HTTP requests.
type ContentHandler struct {
	contentService service.ContentServiceInterface
	validator      *validator.Validator
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentServiceInterface, v *validator.Validator) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		validator:      v,
	}
}

// ItemResponse represents a content item in the API response.
type ItemResponse struct {
	ID                   string              `json:"id"`
	Status               string              `json:"status"`
	Source               domain.SourceFields `json:"source"`
	Variants             []string            `json:"variants"`
	ImageCandidates      []string            `json:"image_candidates"`
	SelectedVariantIndex *int                `json:"selected_variant_index,omitempty"`
	SelectedImageIndices []int               `json:"selected_image_indices,omitempty"`
	FinalText            string              `json:"final_text,omitempty"`
	FinalImageURLs       []string            `json:"final_image_urls,omitempty"`
	ScheduledAt          *string             `json:"scheduled_at,omitempty"`
	PublishedAt          *string             `json:"published_at,omitempty"`
	ExternalPostURL      *string             `json:"external_post_url,omitempty"`
	PublishAttempts      int                 `json:"publish_attempts"`
	LastPublishError     *string             `json:"last_publish_error,omitempty"`
	AcceptedEvents       []domain.Event      `json:"accepted_events"`
	CreatedAt            string              `json:"created_at"`
	UpdatedAt            string              `json:"updated_at"`
}

func toItemResponse(item *domain.ContentItem) ItemResponse {
	variants := item.Variants
	if variants == nil {
		variants = []string{}
	}
	images := item.ImageCandidates
	if images == nil {
		images = []string{}
	}
	return ItemResponse{
		ID:                   item.ID,
		Status:               string(item.Status),
		Source:               item.Source,
		Variants:             variants,
		ImageCandidates:      images,
		SelectedVariantIndex: item.SelectedVariantIndex,
		SelectedImageIndices: item.SelectedImageIndices,
		FinalText:            item.FinalText,
		FinalImageURLs:       item.FinalImageURLs,
		ScheduledAt:          formatTime(item.ScheduledAt),
		PublishedAt:          formatTime(item.PublishedAt),
		ExternalPostURL:      item.ExternalPostURL,
		PublishAttempts:      item.PublishAttempts,
		LastPublishError:     item.LastPublishError,
		AcceptedEvents:       domain.ReviewEvents(item.Status),
		CreatedAt:            item.CreatedAt.Format(TimeFormat),
		UpdatedAt:            item.UpdatedAt.Format(TimeFormat),
	}
}

// CreateItem handles POST /api/v1/items
func (h *ContentHandler) CreateItem(c *gin.Context) {
	var req domain.SourceFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validator.ValidateSource(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validator.FieldErrors(err)})
		return
	}

	item, err := h.contentService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, "create item", err)
		return
	}
	c.JSON(http.StatusCreated, toItemResponse(item))
}

// GetItem handles GET /api/v1/items/:id
func (h *ContentHandler) GetItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	item, err := h.contentService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "get item", err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

// TransitionRequest is the body of POST /api/v1/items/:id/transitions.
type TransitionRequest struct {
	Event                string     `json:"event"`
	ScheduledAt          *time.Time `json:"scheduled_at"`
	SelectedVariantIndex *int       `json:"selected_variant_index"`
	SelectedImageIndices []int      `json:"selected_image_indices"`
}

// TransitionItem handles POST /api/v1/items/:id/transitions
func (h *ContentHandler) TransitionItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validator.ValidateTransitionRequest(&validator.TransitionRequest{
		Event:                req.Event,
		SelectedVariantIndex: req.SelectedVariantIndex,
		SelectedImageIndices: req.SelectedImageIndices,
	}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validator.FieldErrors(err)})
		return
	}
	event, err := domain.ParseEvent(req.Event)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.contentService.Transition(c.Request.Context(), id, event, domain.TransitionPayload{
		ScheduledAt:          req.ScheduledAt,
		SelectedVariantIndex: req.SelectedVariantIndex,
		SelectedImageIndices: req.SelectedImageIndices,
	})
	if err != nil {
		writeError(c, "transition item", err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

// EditVariantRequest is the body of PUT /api/v1/items/:id/variants/:index.
type EditVariantRequest struct {
	Text string `json:"text"`
}

// EditVariant handles PUT /api/v1/items/:id/variants/:index
func (h *ContentHandler) EditVariant(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	var req EditVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validator.ValidateVariantText(req.Text); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validator.FieldErrors(err)})
		return
	}

	item, err := h.contentService.EditVariant(c.Request.Context(), id, index, req.Text)
	if err != nil {
		writeError(c, "edit variant", err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

func itemID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !isUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return "", false
	}
	return id, true
}

// writeError maps workflow errors to status codes. Anything unrecognised is logged and hidden.
func writeError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrItemNotFound.Error()})
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrSessionInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMissingRequiredField),
		errors.Is(err, domain.ErrInvalidVariantIndex),
		errors.Is(err, domain.ErrInvalidDraft):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).ErrorContext(c.Request.Context(), "Request failed",
			"action", action,
			"error", err,
		)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action})
	}
}
