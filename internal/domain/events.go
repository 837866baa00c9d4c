package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record of a fact that occurred to an aggregate.
// Events are captured synchronously while business rules run and delivered
// to subscribers only after the originating transaction commits.
type Event interface {
	// EventID uniquely identifies this event instance.
	EventID() uuid.UUID

	// EventName returns a stable, machine-readable event name.
	EventName() string

	// OccurredAt is the time the event was raised.
	OccurredAt() time.Time
}

// eventMeta carries the fields every event shares.
type eventMeta struct {
	id         uuid.UUID
	occurredAt time.Time
}

func newEventMeta() eventMeta {
	return eventMeta{id: uuid.New(), occurredAt: time.Now().UTC()}
}

func (m eventMeta) EventID() uuid.UUID    { return m.id }
func (m eventMeta) OccurredAt() time.Time { return m.occurredAt }

// Recorder accumulates domain events raised during a unit of work. It is
// embedded by value in aggregate roots; a single flat recorder suffices
// since no aggregate hierarchy exists here.
//
// Recorder is not safe for concurrent use. An aggregate instance is owned
// by one request at a time, matching the single-request-scoped processing
// model.
type Recorder struct {
	events []Event
}

// Raise appends an event to the recorder.
func (r *Recorder) Raise(event Event) {
	r.events = append(r.events, event)
}

// DomainEvents returns a copy of the accumulated events, in the order they
// were raised, without clearing them.
func (r *Recorder) DomainEvents() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// ClearDomainEvents empties the recorder. Called by the orchestrating
// handler once the events have been published.
func (r *Recorder) ClearDomainEvents() {
	r.events = nil
}

// UserCreatedEvent records that a user was registered.
type UserCreatedEvent struct {
	eventMeta
	UserID   uuid.UUID
	FullName string
	Email    string
}

// EventName implements Event.
func (UserCreatedEvent) EventName() string { return "user.created" }

// UserUpdatedEvent records that a user's profile was changed.
type UserUpdatedEvent struct {
	eventMeta
	UserID   uuid.UUID
	FullName string
	Email    string
}

// EventName implements Event.
func (UserUpdatedEvent) EventName() string { return "user.updated" }

// UserDeletedEvent records that a user was removed. It carries no email:
// the address may already be reusable by the time subscribers run.
type UserDeletedEvent struct {
	eventMeta
	UserID   uuid.UUID
	FullName string
}

// EventName implements Event.
func (UserDeletedEvent) EventName() string { return "user.deleted" }
