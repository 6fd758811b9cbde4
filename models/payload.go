package models

import (
	"strings"
	"time"
)

// PayloadMetadata carries the fixed source/format tags of a dispatch
type PayloadMetadata struct {
	Source string `json:"source" yaml:"source"`
	Format string `json:"format" yaml:"format"`
}

// OutboundPayload is the immutable body of a single transmission attempt.
// Build it with NewOutboundPayload; it is never mutated afterwards.
type OutboundPayload struct {
	Timestamp string          `json:"timestamp" yaml:"timestamp"`
	Content   string          `json:"content" yaml:"content"`
	Metadata  PayloadMetadata `json:"metadata" yaml:"metadata"`
}

// TimestampLayout is ISO-8601 in UTC with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NewOutboundPayload snapshots the draft at time now
func NewOutboundPayload(draft string, now time.Time, meta PayloadMetadata) OutboundPayload {
	return OutboundPayload{
		Timestamp: now.UTC().Format(TimestampLayout),
		Content:   strings.TrimSpace(draft),
		Metadata:  meta,
	}
}

// IsBlank reports whether text is empty once whitespace is trimmed
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
