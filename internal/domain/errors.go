package domain

import "errors"

var (
	// ErrSubscriptionFailed is returned when subscription to events fails
	ErrSubscriptionFailed = errors.New("subscription failed")

	// ErrGarmentNotFound is returned when a garment is not found
	ErrGarmentNotFound = errors.New("garment not found")

	// ErrUnknownGuild is returned when an event references a guild that is
	// not configured
	ErrUnknownGuild = errors.New("unknown guild")

	// ErrInvalidEvent is returned when an event fails structural validation
	ErrInvalidEvent = errors.New("invalid event")
)
