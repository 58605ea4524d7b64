package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/clock"
	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
	"github.com/vibast-solutions/ms-go-doclocks/app/events"
)

type ExclusiveOptions struct {
	// MaxTTL rejects longer leases. Zero allows any TTL, including none.
	MaxTTL time.Duration
}

type ExclusiveLockService struct {
	store  LockStore
	clock  clock.Clock
	opts   ExclusiveOptions
	logger logrus.FieldLogger
	notifier
}

// NewExclusiveLockService builds the exclusive lock manager.
func NewExclusiveLockService(store LockStore, sink events.Sink, clk clock.Clock, logger logrus.FieldLogger, opts ExclusiveOptions) *ExclusiveLockService {
	n := newNotifier(sink, logger)
	return &ExclusiveLockService{store: store, clock: clk, opts: opts, logger: n.logger, notifier: n}
}

// Acquire grants ownerID sole write ownership of (target, section). A nil section
// means the whole document; a zero ttl means the lock is held until released.
// Re-acquiring a lock the owner already holds restarts its lease with the
// requested ttl and returns the same lock.
func (s *ExclusiveLockService) Acquire(ctx context.Context, ownerID string, target entity.Target, section *string, ttl time.Duration) (*entity.ExclusiveLock, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	if section != nil && strings.TrimSpace(*section) == "" {
		return nil, invalid("section must not be blank")
	}
	ttl, err := wholeSeconds(ttl)
	if err != nil {
		return nil, err
	}
	if s.opts.MaxTTL > 0 && (ttl == 0 || ttl > s.opts.MaxTTL) {
		return nil, invalid("ttl must be between 1s and %s", s.opts.MaxTTL)
	}

	now := s.clock.Now()
	lock := &entity.ExclusiveLock{
		ID:         uuid.NewString(),
		Target:     target,
		Section:    section,
		OwnerID:    ownerID,
		TTL:        ttl,
		AcquiredAt: now,
	}
	if ttl > 0 {
		expires := now.Add(ttl)
		lock.ExpiresAt = &expires
	}

	res, err := s.store.TryInsertExclusive(ctx, lock, conflict.Policy{})
	if err != nil {
		return nil, translateStoreError("acquire exclusive lock", err)
	}
	s.notify(ctx, res.Reclaimed...)

	if res.Conflict != nil {
		return nil, newConflictError(res.Conflict)
	}
	if res.Reused {
		return res.Lock, nil
	}

	s.logger.WithFields(logrus.Fields{
		"lock_id":  res.Lock.ID,
		"owner_id": ownerID,
		"target":   target.String(),
		"section":  res.Lock.SectionKey(),
	}).Debug("exclusive lock acquired")
	s.notify(ctx, entity.NewExclusiveEvent(entity.EventAcquired, res.Lock, now))
	return res.Lock, nil
}

// Heartbeat slides the lease of a timed lock forward by its TTL.
func (s *ExclusiveLockService) Heartbeat(ctx context.Context, lockID string, ownerID string) (*entity.ExclusiveLock, error) {
	if err := validateLockRef(lockID, ownerID); err != nil {
		return nil, err
	}
	lock, err := s.store.HeartbeatExclusive(ctx, lockID, ownerID, s.clock.Now())
	if err != nil {
		return nil, translateStoreError("heartbeat exclusive lock", err)
	}
	return lock, nil
}

// Release frees a lock held by ownerID.
func (s *ExclusiveLockService) Release(ctx context.Context, lockID string, ownerID string) error {
	if err := validateLockRef(lockID, ownerID); err != nil {
		return err
	}
	now := s.clock.Now()
	lock, err := s.store.ReleaseExclusive(ctx, lockID, ownerID, now)
	if err != nil {
		return translateStoreError("release exclusive lock", err)
	}
	s.notify(ctx, entity.NewExclusiveEvent(entity.EventReleased, lock, now))
	return nil
}

// List returns the live exclusive locks of a document.
func (s *ExclusiveLockService) List(ctx context.Context, target entity.Target) ([]entity.ExclusiveLock, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	locks, err := s.store.ListExclusive(ctx, target, s.clock.Now())
	if err != nil {
		return nil, translateStoreError("list exclusive locks", err)
	}
	return locks, nil
}

// Find returns the live lock on exactly (target, section).
func (s *ExclusiveLockService) Find(ctx context.Context, target entity.Target, section *string) (*entity.ExclusiveLock, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	lock, err := s.store.FindExclusive(ctx, target, section, s.clock.Now())
	if err != nil {
		return nil, translateStoreError("find exclusive lock", err)
	}
	return lock, nil
}
