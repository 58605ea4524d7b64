package queue

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

const StreamName = "doclocks:lock-events"
const ConsumerGroup = "lock-event-consumers"

// EventMessage is the flat stream encoding of a lock event.
type EventMessage struct {
	Kind       entity.EventKind
	LockKind   entity.LockKind
	LockID     string
	OwnerID    string
	Target     entity.Target
	// Section is empty for a whole-document lock.
	Section    string
	LockType   string
	ExpiresAt  *time.Time
	OccurredAt time.Time
}

// NewEventMessage flattens a lock event.
func NewEventMessage(event entity.LockEvent) EventMessage {
	msg := EventMessage{
		Kind:       event.Kind,
		LockKind:   event.LockKind,
		LockID:     event.LockID(),
		OwnerID:    event.OwnerID(),
		Target:     event.Target(),
		OccurredAt: event.OccurredAt,
	}
	if event.Exclusive != nil {
		if event.Exclusive.Section != nil {
			msg.Section = *event.Exclusive.Section
		}
		msg.ExpiresAt = event.Exclusive.ExpiresAt
	}
	if event.Advisory != nil {
		msg.LockType = string(event.Advisory.LockType)
		expires := event.Advisory.ExpiresAt
		msg.ExpiresAt = &expires
	}
	return msg
}

func (m EventMessage) values() map[string]interface{} {
	values := map[string]interface{}{
		"kind":        string(m.Kind),
		"lock_kind":   string(m.LockKind),
		"lock_id":     m.LockID,
		"owner_id":    m.OwnerID,
		"target_type": string(m.Target.Type),
		"target_id":   m.Target.ID,
		"section":     m.Section,
		"lock_type":   m.LockType,
		"occurred_at": m.OccurredAt.UTC().Format(time.RFC3339Nano),
		"expires_at":  "",
	}
	if m.ExpiresAt != nil {
		values["expires_at"] = m.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	return values
}

// Fields describes the message for logrus, using the same keys as events.Fields.
func (m EventMessage) Fields() logrus.Fields {
	fields := logrus.Fields{
		"event":       string(m.Kind),
		"lock_kind":   string(m.LockKind),
		"lock_id":     m.LockID,
		"owner_id":    m.OwnerID,
		"target":      m.Target.String(),
		"occurred_at": m.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if m.Section != "" {
		fields["section"] = m.Section
	}
	if m.LockType != "" {
		fields["lock_type"] = m.LockType
	}
	if m.ExpiresAt != nil {
		fields["expires_at"] = m.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	return fields
}

func parseEventMessage(values map[string]interface{}) (EventMessage, error) {
	field := func(name string) string {
		v, _ := values[name].(string)
		return v
	}

	msg := EventMessage{
		Kind:     entity.EventKind(field("kind")),
		LockKind: entity.LockKind(field("lock_kind")),
		LockID:   field("lock_id"),
		OwnerID:  field("owner_id"),
		Target:   entity.Target{Type: entity.TargetType(field("target_type")), ID: field("target_id")},
		Section:  field("section"),
		LockType: field("lock_type"),
	}
	if msg.LockID == "" || msg.Kind == "" {
		return EventMessage{}, fmt.Errorf("malformed lock event: missing kind or lock_id")
	}

	occurred, err := time.Parse(time.RFC3339Nano, field("occurred_at"))
	if err != nil {
		return EventMessage{}, fmt.Errorf("malformed occurred_at: %w", err)
	}
	msg.OccurredAt = occurred

	if raw := field("expires_at"); raw != "" {
		expires, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return EventMessage{}, fmt.Errorf("malformed expires_at: %w", err)
		}
		msg.ExpiresAt = &expires
	}
	return msg, nil
}
