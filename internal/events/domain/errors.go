package domain

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingFeedback   = errors.New("rejection requires feedback")
	ErrAlreadyRegistered = errors.New("student already registered for event")
	ErrCapacityFull      = errors.New("event capacity is full")
	ErrNotOpenForEntry   = errors.New("event is not open for registration")
	ErrInvalidEvent      = errors.New("invalid event payload")
	ErrUnknownVenue      = errors.New("unknown venue")
	ErrVenueTooSmall     = errors.New("venue capacity below expected participants")
)
