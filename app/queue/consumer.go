package queue

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Handler processes one lock event. A returned error leaves the entry pending.
type Handler interface {
	HandleLockEvent(ctx context.Context, msg EventMessage) error
}

type HandlerFunc func(ctx context.Context, msg EventMessage) error

func (f HandlerFunc) HandleLockEvent(ctx context.Context, msg EventMessage) error {
	return f(ctx, msg)
}

type EventConsumer struct {
	client       redis.UniversalClient
	handler      Handler
	consumerName string
	logger       logrus.FieldLogger
}

// NewEventConsumer constructs a Redis stream consumer.
func NewEventConsumer(client redis.UniversalClient, handler Handler, consumerName string, logger logrus.FieldLogger) *EventConsumer {
	return &EventConsumer{
		client:       client,
		handler:      handler,
		consumerName: consumerName,
		logger:       logger.WithField("consumer", consumerName),
	}
}

// Run starts the consumer loop and blocks until context cancellation.
func (c *EventConsumer) Run(ctx context.Context) error {
	if err := c.ensureGroup(ctx); err != nil {
		return err
	}

	c.logger.WithField("stream", StreamName).Info("event consumer started")

	// Pending entries first, then new ones.
	startID := "0"
	for {
		if ctx.Err() != nil {
			c.logger.Info("event consumer shutting down")
			return nil
		}

		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    ConsumerGroup,
			Consumer: c.consumerName,
			Streams:  []string{StreamName, startID},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				startID = ">"
				continue
			}
			if ctx.Err() != nil {
				c.logger.Info("event consumer shutting down")
				return nil
			}
			c.logger.WithError(err).Warn("XReadGroup failed")
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			if len(stream.Messages) == 0 && startID == "0" {
				startID = ">"
				continue
			}
			for _, msg := range stream.Messages {
				c.processMessage(ctx, msg)
			}
		}
	}
}

// processMessage handles a single entry and acks it on success.
// Malformed entries are acked so they do not block the group.
func (c *EventConsumer) processMessage(ctx context.Context, msg redis.XMessage) {
	logger := c.logger.WithField("message_id", msg.ID)

	event, err := parseEventMessage(msg.Values)
	if err != nil {
		logger.WithError(err).Error("dropping malformed lock event")
		c.ack(ctx, msg.ID)
		return
	}

	handleCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := c.handler.HandleLockEvent(handleCtx, event); err != nil {
		logger.WithError(err).WithField("lock_id", event.LockID).Warn("lock event handler failed, entry stays pending")
		return
	}
	c.ack(ctx, msg.ID)
}

func (c *EventConsumer) ack(ctx context.Context, id string) {
	if err := c.client.XAck(ctx, StreamName, ConsumerGroup, id).Err(); err != nil {
		c.logger.WithError(err).WithField("message_id", id).Error("XAck failed")
	}
}

// ensureGroup creates the stream and consumer group if missing.
func (c *EventConsumer) ensureGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, StreamName, ConsumerGroup, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}
