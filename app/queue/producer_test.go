package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client
}

func testAdvisoryEvent() entity.LockEvent {
	lock := &entity.AdvisoryLock{
		ID:        "lock-1",
		Target:    entity.Target{Type: entity.TargetCoverLetter, ID: "cl-9"},
		OwnerID:   "alice",
		LockType:  entity.AdvisoryReview,
		ExpiresAt: testNow.Add(5 * time.Minute),
	}
	return entity.NewAdvisoryEvent(entity.EventExpired, lock, testNow)
}

func TestEventProducerPublish(t *testing.T) {
	t.Parallel()
	client := newRedis(t)

	producer := NewEventProducer(client)
	if err := producer.OnLockEvent(context.Background(), testAdvisoryEvent()); err != nil {
		t.Fatalf("OnLockEvent: %v", err)
	}

	entries, err := client.XRange(context.Background(), StreamName, "-", "+").Result()
	if err != nil {
		t.Fatalf("XRange: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 message, got %d", len(entries))
	}

	msg, err := parseEventMessage(entries[0].Values)
	if err != nil {
		t.Fatalf("parseEventMessage: %v", err)
	}
	if msg.Kind != entity.EventExpired || msg.LockKind != entity.LockKindAdvisory || msg.LockType != "review" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.Target.String() != "cover_letter:cl-9" || !msg.OccurredAt.Equal(testNow) {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.ExpiresAt == nil || !msg.ExpiresAt.Equal(testNow.Add(5*time.Minute)) {
		t.Fatalf("unexpected expires_at: %v", msg.ExpiresAt)
	}
}

func TestEventMessageWholeDocumentExclusive(t *testing.T) {
	t.Parallel()

	lock := &entity.ExclusiveLock{ID: "lock-2", Target: entity.Target{Type: entity.TargetResume, ID: "r-1"}, OwnerID: "bob"}
	msg := NewEventMessage(entity.NewExclusiveEvent(entity.EventReleased, lock, testNow))

	parsed, err := parseEventMessage(msg.values())
	if err != nil {
		t.Fatalf("parseEventMessage: %v", err)
	}
	if parsed.Section != "" || parsed.ExpiresAt != nil || parsed.LockType != "" {
		t.Fatalf("unexpected message: %+v", parsed)
	}
}

func TestEventMessageFields(t *testing.T) {
	fields := NewEventMessage(testAdvisoryEvent()).Fields()

	if fields["event"] != "expired" || fields["lock_type"] != "review" || fields["target"] != "cover_letter:cl-9" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if _, ok := fields["section"]; ok {
		t.Fatalf("advisory message should not carry a section: %v", fields)
	}
	if fields["expires_at"] != "2026-03-02T09:05:00Z" {
		t.Fatalf("unexpected expires_at: %v", fields["expires_at"])
	}
}
