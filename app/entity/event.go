package entity

import "time"

type EventKind string

const (
	EventAcquired EventKind = "acquired"
	EventReleased EventKind = "released"
	EventExpired  EventKind = "expired"
)

// LockEvent is emitted to notification sinks on every lock state transition.
// Exactly one of Exclusive and Advisory is set, matching LockKind.
type LockEvent struct {
	Kind       EventKind
	LockKind   LockKind
	Exclusive  *ExclusiveLock
	Advisory   *AdvisoryLock
	OccurredAt time.Time
}

// NewExclusiveEvent wraps an exclusive lock transition.
func NewExclusiveEvent(kind EventKind, lock *ExclusiveLock, at time.Time) LockEvent {
	return LockEvent{Kind: kind, LockKind: LockKindExclusive, Exclusive: lock, OccurredAt: at}
}

// NewAdvisoryEvent wraps an advisory lock transition.
func NewAdvisoryEvent(kind EventKind, lock *AdvisoryLock, at time.Time) LockEvent {
	return LockEvent{Kind: kind, LockKind: LockKindAdvisory, Advisory: lock, OccurredAt: at}
}

func (e LockEvent) LockID() string {
	switch {
	case e.Exclusive != nil:
		return e.Exclusive.ID
	case e.Advisory != nil:
		return e.Advisory.ID
	}
	return ""
}

func (e LockEvent) OwnerID() string {
	switch {
	case e.Exclusive != nil:
		return e.Exclusive.OwnerID
	case e.Advisory != nil:
		return e.Advisory.OwnerID
	}
	return ""
}

func (e LockEvent) Target() Target {
	switch {
	case e.Exclusive != nil:
		return e.Exclusive.Target
	case e.Advisory != nil:
		return e.Advisory.Target
	}
	return Target{}
}
