package handler

import (
	"time"

	"github.com/google/uuid"
)

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(TimeFormat)
	return &s
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
