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

const defaultAdvisoryTTL = 5 * time.Minute

type AdvisoryOptions struct {
	// DefaultTTL applies when a request omits its TTL.
	DefaultTTL time.Duration
	MaxTTL     time.Duration
	// SlidingLease makes every heartbeat push expires_at forward by the original TTL.
	SlidingLease bool
	Policy       conflict.Policy
}

type AdvisoryLockService struct {
	store  LockStore
	clock  clock.Clock
	opts   AdvisoryOptions
	logger logrus.FieldLogger
	notifier
}

// NewAdvisoryLockService builds the advisory lock manager.
func NewAdvisoryLockService(store LockStore, sink events.Sink, clk clock.Clock, logger logrus.FieldLogger, opts AdvisoryOptions) *AdvisoryLockService {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = defaultAdvisoryTTL
	}
	n := newNotifier(sink, logger)
	return &AdvisoryLockService{store: store, clock: clk, opts: opts, logger: n.logger, notifier: n}
}

// Acquire registers a collaboration intent. Only edit locks with a writable scope
// can conflict; review, approval and export locks always coexist. Re-acquiring
// an identical claim restarts its lease with the requested ttl.
func (s *AdvisoryLockService) Acquire(ctx context.Context, ownerID string, target entity.Target, lockType entity.AdvisoryType, scope entity.Scope, ttl time.Duration, reason *string) (*entity.AdvisoryLock, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	if !lockType.Valid() {
		return nil, invalid("unsupported lock type %q", lockType)
	}
	scope = scope.Normalize()
	for _, field := range scope.Fields {
		if err := validateFieldPath(field); err != nil {
			return nil, err
		}
	}

	if ttl == 0 {
		ttl = s.opts.DefaultTTL
	}
	ttl, err := wholeSeconds(ttl)
	if err != nil {
		return nil, err
	}
	if s.opts.MaxTTL > 0 && ttl > s.opts.MaxTTL {
		return nil, invalid("ttl must not exceed %s", s.opts.MaxTTL)
	}
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}

	now := s.clock.Now()
	lock := &entity.AdvisoryLock{
		ID:         uuid.NewString(),
		Target:     target,
		OwnerID:    ownerID,
		LockType:   lockType,
		Scope:      scope,
		Reason:     reason,
		TTL:        ttl,
		AcquiredAt: now,
		ExpiresAt:  now.Add(ttl),
		Activity:   entity.Activity{LastActionAt: now},
	}

	res, err := s.store.TryInsertAdvisory(ctx, lock, s.opts.Policy)
	if err != nil {
		return nil, translateStoreError("acquire advisory lock", err)
	}
	s.notify(ctx, res.Reclaimed...)

	if res.Conflict != nil {
		return nil, newConflictError(res.Conflict)
	}
	if res.Reused {
		return res.Lock, nil
	}

	s.logger.WithFields(logrus.Fields{
		"lock_id":   res.Lock.ID,
		"owner_id":  ownerID,
		"target":    target.String(),
		"lock_type": string(lockType),
	}).Debug("advisory lock acquired")
	s.notify(ctx, entity.NewAdvisoryEvent(entity.EventAcquired, res.Lock, now))
	return res.Lock, nil
}

// Heartbeat records activity on the lock and, with a sliding lease, extends it.
func (s *AdvisoryLockService) Heartbeat(ctx context.Context, lockID string, ownerID string) (*entity.AdvisoryLock, error) {
	if err := validateLockRef(lockID, ownerID); err != nil {
		return nil, err
	}
	lock, err := s.store.HeartbeatAdvisory(ctx, lockID, ownerID, s.clock.Now(), s.opts.SlidingLease)
	if err != nil {
		return nil, translateStoreError("heartbeat advisory lock", err)
	}
	return lock, nil
}

// Release frees an advisory lock held by ownerID.
func (s *AdvisoryLockService) Release(ctx context.Context, lockID string, ownerID string) error {
	if err := validateLockRef(lockID, ownerID); err != nil {
		return err
	}
	now := s.clock.Now()
	lock, err := s.store.ReleaseAdvisory(ctx, lockID, ownerID, now)
	if err != nil {
		return translateStoreError("release advisory lock", err)
	}
	s.notify(ctx, entity.NewAdvisoryEvent(entity.EventReleased, lock, now))
	return nil
}

// ListActive returns the live advisory locks of a document.
func (s *AdvisoryLockService) ListActive(ctx context.Context, target entity.Target) ([]entity.AdvisoryLock, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	locks, err := s.store.ListAdvisory(ctx, target, s.clock.Now())
	if err != nil {
		return nil, translateStoreError("list advisory locks", err)
	}
	return locks, nil
}

// validateFieldPath accepts dotted paths such as "experience.0.title".
func validateFieldPath(path string) error {
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return invalid("malformed field path %q", path)
		}
	}
	return nil
}
