package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-workflow/internal/domain"
	"content-workflow/internal/service"
	"content-workflow/internal/validator"
)

// GenerationHandler handles generation session HTTP requests.
type GenerationHandler struct {
	generationService service.GenerationServiceInterface
	validator         *validator.Validator
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService service.GenerationServiceInterface, v *validator.Validator) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		validator:         v,
	}
}

// MaxCountRequest is the body of the enqueue and session endpoints.
type MaxCountRequest struct {
	MaxCount int `json:"max_count"`
}

// EnqueueResponse reports how many items were queued.
type EnqueueResponse struct {
	QueuedCount int `json:"queued_count"`
}

// SessionResponse represents a generation session with its progress.
type SessionResponse struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	Total           int     `json:"total"`
	Processed       int     `json:"processed"`
	QueueRemaining  int     `json:"queue_remaining"`
	ProgressPercent int     `json:"progress_percent"`
	ErrorMessage    *string `json:"error_message,omitempty"`
	StartedAt       *string `json:"started_at,omitempty"`
	CompletedAt     *string `json:"completed_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func toSessionResponse(p *domain.SessionProgress) SessionResponse {
	return SessionResponse{
		ID:              p.Session.ID,
		Status:          string(p.Session.Status),
		Total:           p.Session.TotalItems,
		Processed:       p.Session.ProcessedItems,
		QueueRemaining:  p.QueueRemaining,
		ProgressPercent: p.ProgressPercent,
		ErrorMessage:    p.Session.ErrorMessage,
		StartedAt:       formatTime(p.Session.StartedAt),
		CompletedAt:     formatTime(p.Session.CompletedAt),
		CreatedAt:       p.Session.CreatedAt.Format(TimeFormat),
	}
}

// Enqueue handles POST /api/v1/generation/enqueue
func (h *GenerationHandler) Enqueue(c *gin.Context) {
	maxCount, ok := h.bindMaxCount(c)
	if !ok {
		return
	}
	queued, err := h.generationService.Enqueue(c.Request.Context(), maxCount)
	if err != nil {
		writeError(c, "enqueue items", err)
		return
	}
	c.JSON(http.StatusOK, EnqueueResponse{QueuedCount: queued})
}

// StartSession handles POST /api/v1/generation/sessions
// A started session answers 202; when nothing was queued no session exists and the answer is 200.
func (h *GenerationHandler) StartSession(c *gin.Context) {
	maxCount, ok := h.bindMaxCount(c)
	if !ok {
		return
	}
	result, err := h.generationService.StartSession(c.Request.Context(), maxCount)
	if err != nil {
		writeError(c, "start generation session", err)
		return
	}
	if result.SessionID == "" {
		c.JSON(http.StatusOK, result)
		return
	}
	c.Header("Location", "/api/v1/generation/sessions/"+result.SessionID)
	c.JSON(http.StatusAccepted, result)
}

// GetSession handles GET /api/v1/generation/sessions/:id
func (h *GenerationHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	if !isUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}
	progress, err := h.generationService.SessionStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, "get generation session", err)
		return
	}
	if progress == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "generation session not found"})
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(progress))
}

func (h *GenerationHandler) bindMaxCount(c *gin.Context) (int, bool) {
	var req MaxCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return 0, false
	}
	if err := h.validator.ValidateMaxCount(req.MaxCount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validator.FieldErrors(err)})
		return 0, false
	}
	return req.MaxCount, true
}
