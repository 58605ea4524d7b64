package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
	"github.com/vibast-solutions/ms-go-doclocks/app/events"
	"github.com/vibast-solutions/ms-go-doclocks/app/repository"
)

// LockStore is the transactional lock state the services operate on.
type LockStore interface {
	TryInsertExclusive(ctx context.Context, lock *entity.ExclusiveLock, policy conflict.Policy) (*repository.ExclusiveInsert, error)
	TryInsertAdvisory(ctx context.Context, lock *entity.AdvisoryLock, policy conflict.Policy) (*repository.AdvisoryInsert, error)

	GetExclusive(ctx context.Context, id string) (*entity.ExclusiveLock, error)
	FindExclusive(ctx context.Context, target entity.Target, section *string, now time.Time) (*entity.ExclusiveLock, error)
	ListExclusive(ctx context.Context, target entity.Target, now time.Time) ([]entity.ExclusiveLock, error)
	GetAdvisory(ctx context.Context, id string) (*entity.AdvisoryLock, error)
	ListAdvisory(ctx context.Context, target entity.Target, now time.Time) ([]entity.AdvisoryLock, error)
	Snapshot(ctx context.Context, target entity.Target, now time.Time) (conflict.Snapshot, error)

	ReleaseExclusive(ctx context.Context, id string, ownerID string, now time.Time) (*entity.ExclusiveLock, error)
	HeartbeatExclusive(ctx context.Context, id string, ownerID string, now time.Time) (*entity.ExclusiveLock, error)
	ReleaseAdvisory(ctx context.Context, id string, ownerID string, now time.Time) (*entity.AdvisoryLock, error)
	HeartbeatAdvisory(ctx context.Context, id string, ownerID string, now time.Time, extend bool) (*entity.AdvisoryLock, error)

	SweepExpired(ctx context.Context, now time.Time) ([]entity.LockEvent, error)
}

var (
	_ LockStore = (*repository.LockRepository)(nil)
	_ LockStore = (*repository.MemoryLockRepository)(nil)
)

// notifier delivers events without ever failing the calling operation.
type notifier struct {
	sink   events.Sink
	logger logrus.FieldLogger
}

func newNotifier(sink events.Sink, logger logrus.FieldLogger) notifier {
	if sink == nil {
		sink = events.Noop()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return notifier{sink: sink, logger: logger}
}

func (n notifier) notify(ctx context.Context, evs ...entity.LockEvent) {
	for _, ev := range evs {
		if err := n.sink.OnLockEvent(ctx, ev); err != nil {
			n.logger.WithError(err).WithFields(events.Fields(ev)).Warn("lock event delivery failed")
		}
	}
}

func validateOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return invalid("owner_id is required")
	}
	return nil
}

func validateTarget(target entity.Target) error {
	if !target.Type.Valid() {
		return invalid("unsupported target type %q", target.Type)
	}
	if strings.TrimSpace(target.ID) == "" {
		return invalid("target id is required")
	}
	return nil
}

func validateLockRef(lockID, ownerID string) error {
	if strings.TrimSpace(lockID) == "" {
		return invalid("lock id is required")
	}
	return validateOwner(ownerID)
}

// wholeSeconds keeps TTLs on the second granularity the store persists.
func wholeSeconds(ttl time.Duration) (time.Duration, error) {
	if ttl < 0 {
		return 0, invalid("ttl must not be negative")
	}
	rounded := ttl.Truncate(time.Second)
	if ttl > 0 && rounded == 0 {
		return 0, invalid("ttl must be at least one second")
	}
	return rounded, nil
}
