package domain

import "time"

// SessionStatus represents the status of a generation session.
type SessionStatus string

const (
	SessionStatusPending    SessionStatus = "pending"
	SessionStatusProcessing SessionStatus = "processing"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusFailed     SessionStatus = "failed"
)

// IsActive reports whether the session still holds the single generation slot.
func (s SessionStatus) IsActive() bool {
	return s == SessionStatusPending || s == SessionStatusProcessing
}

// GenerationSession is the bookkeeping record for one batch run of the orchestrator.
type GenerationSession struct {
	ID             string        `json:"id"`
	Status         SessionStatus `json:"status"`
	TotalItems     int           `json:"total_items"`
	ProcessedItems int           `json:"processed_items"`
	ErrorMessage   *string       `json:"error_message,omitempty"`
	StartedAt      *time.Time    `json:"started_at,omitempty"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// SessionProgress is a session snapshot plus the number of items still queued.
type SessionProgress struct {
	Session         GenerationSession `json:"session"`
	QueueRemaining  int               `json:"queue_remaining"`
	ProgressPercent int               `json:"progress_percent"`
}

// NewSessionProgress computes the polling view of a session.
func NewSessionProgress(session GenerationSession, queueRemaining int) SessionProgress {
	percent := 0
	if session.TotalItems > 0 {
		percent = session.ProcessedItems * 100 / session.TotalItems
		if percent > 100 {
			percent = 100
		}
	}
	return SessionProgress{
		Session:         session,
		QueueRemaining:  queueRemaining,
		ProgressPercent: percent,
	}
}

// StartResult is returned when a generation session is requested.
type StartResult struct {
	SessionID   string `json:"session_id,omitempty"`
	QueuedCount int    `json:"queued_count"`
}

// Credential holds the OAuth tokens for the publishing platform.
type Credential struct {
	Provider     string     `json:"provider"`
	AccessToken  string     `json:"-"`
	RefreshToken string     `json:"-"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
