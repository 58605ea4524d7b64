package events

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

// Sink receives lock lifecycle events.
type Sink interface {
	OnLockEvent(ctx context.Context, event entity.LockEvent) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, event entity.LockEvent) error

// OnLockEvent calls f.
func (f SinkFunc) OnLockEvent(ctx context.Context, event entity.LockEvent) error {
	return f(ctx, event)
}

type noopSink struct{}

func (noopSink) OnLockEvent(context.Context, entity.LockEvent) error { return nil }

// Noop returns a sink that drops every event.
func Noop() Sink {
	return noopSink{}
}

// LogSink writes every event as a structured log line.
type LogSink struct {
	logger logrus.FieldLogger
}

// NewLogSink constructs a sink that logs events.
func NewLogSink(logger logrus.FieldLogger) *LogSink {
	return &LogSink{logger: logger}
}

// OnLockEvent logs the event.
func (s *LogSink) OnLockEvent(_ context.Context, event entity.LockEvent) error {
	s.logger.WithFields(Fields(event)).Info("lock event")
	return nil
}

type fanout []Sink

// Fanout delivers each event to all sinks and joins their errors.
func Fanout(sinks ...Sink) Sink {
	return fanout(sinks)
}

func (f fanout) OnLockEvent(ctx context.Context, event entity.LockEvent) error {
	var errs []error
	for _, sink := range f {
		if err := sink.OnLockEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Fields describes an event for logrus.
func Fields(event entity.LockEvent) logrus.Fields {
	fields := logrus.Fields{
		"event":     string(event.Kind),
		"lock_kind": string(event.LockKind),
		"lock_id":   event.LockID(),
		"owner_id":  event.OwnerID(),
		"target":    event.Target().String(),
	}
	if event.Exclusive != nil {
		fields["section"] = event.Exclusive.SectionKey()
	}
	if event.Advisory != nil {
		fields["lock_type"] = string(event.Advisory.LockType)
	}
	return fields
}
