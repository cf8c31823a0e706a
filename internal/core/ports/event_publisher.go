package ports

import (
	"context"
)

// TopicDriverEvents is the topic carrying all driver-side domain events.
const TopicDriverEvents = "driver-events"

// Domain event types published on TopicDriverEvents.
const (
	EventDriverCreated         = "DRIVER_CREATED"
	EventDriverLocationUpdated = "DRIVER_LOCATION_UPDATED"
	EventTripStarted           = "TRIP_STARTED"
	EventTripCompleted         = "TRIP_COMPLETED"
)

// Event is a domain event envelope: a type tag plus a JSON-serializable
// payload.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// EventPublisher delivers domain events to interested subsystems,
// fire-and-forget. Delivery is at-least-once best effort; the core
// assumes no ordering guarantees.
//
// A publish failure must never fail the operation that raised the event:
// callers log it and move on.
type EventPublisher interface {
	// Publish delivers one event on the topic.
	Publish(ctx context.Context, topic string, event Event) error

	// Close releases the underlying connection.
	Close() error
}
