package shared

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Every successful roster mutation and every filter
// change publishes exactly one event; the bus delivers them in publish order.
const (
	EventPersonAdded   EventType = "roster.person_added"
	EventPersonEdited  EventType = "roster.person_edited"
	EventPersonRemoved EventType = "roster.person_removed"
	EventRosterCleared EventType = "roster.cleared"
	EventRosterReset   EventType = "roster.reset"
	EventFilterChanged EventType = "view.filter_changed"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	// For person-level events this is the student ID; roster-level events
	// use the fixed aggregate ID "roster".
	AggregateID() string

	// Payload returns the event data as a map for logging.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality. Embed it in concrete events.
type BaseEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// NewBaseEvent creates a BaseEvent with a fresh event ID and timestamp.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		Timestamp:   time.Now(),
		AggregateId: aggregateID,
	}
}

// EventType returns the type of the event.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID returns the aggregate that produced the event.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// EventHandler processes a single domain event.
type EventHandler func(Event) error

// EventBus distributes domain events to subscribed handlers. Implementations
// must deliver events to each handler in the exact order they were published.
type EventBus interface {
	// Publish sends an event to all subscribed handlers.
	Publish(event Event) error

	// Subscribe registers a handler for a specific event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error

	// Close shuts down the bus; subsequent publishes fail.
	Close() error
}
