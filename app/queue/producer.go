package queue

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

// defaultMaxLen bounds the stream; trimming is approximate.
const defaultMaxLen = 100000

type EventProducer struct {
	client redis.UniversalClient
	maxLen int64
}

// NewEventProducer constructs a Redis stream producer. It also serves as an events.Sink.
func NewEventProducer(client redis.UniversalClient) *EventProducer {
	return &EventProducer{client: client, maxLen: defaultMaxLen}
}

// Publish appends a lock event onto the stream.
func (p *EventProducer) Publish(ctx context.Context, msg EventMessage) error {
	_, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamName,
		MaxLen: p.maxLen,
		Approx: true,
		Values: msg.values(),
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd to %s: %w", StreamName, err)
	}
	return nil
}

// OnLockEvent publishes the event.
func (p *EventProducer) OnLockEvent(ctx context.Context, event entity.LockEvent) error {
	return p.Publish(ctx, NewEventMessage(event))
}
