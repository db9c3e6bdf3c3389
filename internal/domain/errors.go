package domain

import "errors"

var (
	// ErrInvalidTransition is returned when an event is not accepted in the item's current status.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrMissingRequiredField is returned when a transition precondition field is absent.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidVariantIndex is returned when a variant index is out of range.
	ErrInvalidVariantIndex = errors.New("invalid variant index")
	// ErrInvalidDraft is returned when generated output exceeds the candidate limits.
	ErrInvalidDraft = errors.New("invalid draft")

	// ErrItemNotFound is returned by services when a content item does not exist.
	ErrItemNotFound = errors.New("content item not found")

	// ErrSessionInProgress is returned when another generation session is pending or processing.
	ErrSessionInProgress = errors.New("generation session already in progress")

	// ErrAuthExpired signals that the platform rejected the access credential.
	ErrAuthExpired = errors.New("authorization expired")
	// ErrRefreshFailed signals that the stored refresh token could not be exchanged.
	ErrRefreshFailed = errors.New("credential refresh failed")
)
