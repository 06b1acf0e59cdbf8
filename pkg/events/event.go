package events

import "time"

const (
	// TypeContentUpdated fires after every successful whole-document replace.
	TypeContentUpdated = "CONTENT_UPDATED"
	// TypeContactMessage fires when a contact-form submission is accepted.
	TypeContactMessage = "CONTACT_MESSAGE"
)

// Event is the contract for all system events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

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

// ContentUpdated builds the event emitted after a replace.
func ContentUpdated(updatedAt time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeContentUpdated,
		Data: map[string]interface{}{
			"updated_at": updatedAt,
		},
		OccurredAt: time.Now(),
	}
}
