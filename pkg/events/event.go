package events

import "time"

// Event type codes published by the content backend.
const (
	TypeArticlePublished   = "ARTICLE_PUBLISHED"
	TypeArticleUnpublished = "ARTICLE_UNPUBLISHED"
	TypeArticleDeleted     = "ARTICLE_DELETED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ARTICLE_PUBLISHED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used across the service.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
