package models

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDraft        = errors.New("draft is empty")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrStaleAttempt      = errors.New("attempt is not in flight")
)

// ValidationError is returned when a send is requested for a blank draft
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error in field '" + e.Field + "': " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrEmptyDraft
}

// TransmissionError wraps any failure that happens while Sending
type TransmissionError struct {
	Stage      string // encode, request, response
	StatusCode int
	Err        error
}

func (e *TransmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transmission failed during %s (status %d): %v", e.Stage, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transmission failed during %s: %v", e.Stage, e.Err)
}

func (e *TransmissionError) Unwrap() error {
	return e.Err
}
