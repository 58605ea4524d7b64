package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

// DefaultMemoryRetention is how long the memory store keeps released and
// expired locks so that late heartbeats still resolve to expired or released.
const DefaultMemoryRetention = 10 * time.Minute

// MemoryLockRepository keeps lock state in process memory. It is only correct
// when a single service instance owns the state (LOCK_STORE=memory, tests).
type MemoryLockRepository struct {
	mu        sync.Mutex
	retention time.Duration
	exclusive map[string]*entity.ExclusiveLock
	advisory  map[string]*entity.AdvisoryLock
}

// NewMemoryLockRepository constructs an empty in-process lock store.
func NewMemoryLockRepository() *MemoryLockRepository {
	return NewMemoryLockRepositoryWithRetention(DefaultMemoryRetention)
}

// NewMemoryLockRepositoryWithRetention constructs a store that forgets released
// and expired locks once retention has passed since their release.
func NewMemoryLockRepositoryWithRetention(retention time.Duration) *MemoryLockRepository {
	if retention < 0 {
		retention = 0
	}
	return &MemoryLockRepository{
		retention: retention,
		exclusive: make(map[string]*entity.ExclusiveLock),
		advisory:  make(map[string]*entity.AdvisoryLock),
	}
}

// TryInsertExclusive acquires an exclusive lock under the store mutex.
func (r *MemoryLockRepository) TryInsertExclusive(_ context.Context, lock *entity.ExclusiveLock, policy conflict.Policy) (*ExclusiveInsert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := lock.AcquiredAt
	reclaimed := r.expireLocked(now, &lock.Target)
	decision := conflict.Resolve(r.snapshotLocked(lock.Target, now), conflict.Request{
		Mode:    conflict.ModeExclusive,
		OwnerID: lock.OwnerID,
		Section: lock.Section,
	}, now, policy)

	if decision.Reused() {
		held := r.exclusive[decision.Exclusive.ID]
		held.Renew(lock.TTL, now)
		*decision.Exclusive = *held
	}
	if !decision.Allowed() || decision.Reused() {
		return &ExclusiveInsert{Lock: decision.Exclusive, Reused: decision.Reused(), Conflict: decision.Conflict, Reclaimed: reclaimed}, nil
	}

	stored := *lock
	r.exclusive[lock.ID] = &stored
	out := stored
	return &ExclusiveInsert{Lock: &out, Reclaimed: reclaimed}, nil
}

// TryInsertAdvisory acquires an advisory lock under the store mutex.
func (r *MemoryLockRepository) TryInsertAdvisory(_ context.Context, lock *entity.AdvisoryLock, policy conflict.Policy) (*AdvisoryInsert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := lock.AcquiredAt
	reclaimed := r.expireLocked(now, &lock.Target)
	decision := conflict.Resolve(r.snapshotLocked(lock.Target, now), conflict.Request{
		Mode:     conflict.ModeAdvisory,
		OwnerID:  lock.OwnerID,
		LockType: lock.LockType,
		Scope:    lock.Scope,
	}, now, policy)

	if decision.Reused() {
		held := r.advisory[decision.Advisory.ID]
		held.Renew(lock.TTL, now)
		*decision.Advisory = *held
	}
	if !decision.Allowed() || decision.Reused() {
		return &AdvisoryInsert{Lock: decision.Advisory, Reused: decision.Reused(), Conflict: decision.Conflict, Reclaimed: reclaimed}, nil
	}

	stored := *lock
	r.advisory[lock.ID] = &stored
	out := stored
	return &AdvisoryInsert{Lock: &out, Reclaimed: reclaimed}, nil
}

// GetExclusive returns an exclusive lock by ID regardless of state.
func (r *MemoryLockRepository) GetExclusive(_ context.Context, id string) (*entity.ExclusiveLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.exclusive[id]
	if !ok {
		return nil, ErrLockNotFound
	}
	out := *lock
	return &out, nil
}

// FindExclusive returns the live exclusive lock on (target, section), if any.
func (r *MemoryLockRepository) FindExclusive(_ context.Context, target entity.Target, section *string, now time.Time) (*entity.ExclusiveLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, lock := range r.exclusive {
		if lock.Target == target && entity.SameSection(lock.Section, section) && lock.IsLive(now) {
			out := *lock
			return &out, nil
		}
	}
	return nil, ErrLockNotFound
}

// ListExclusive returns the live exclusive locks of a target.
func (r *MemoryLockRepository) ListExclusive(_ context.Context, target entity.Target, now time.Time) ([]entity.ExclusiveLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(target, now).Exclusive, nil
}

// GetAdvisory returns an advisory lock by ID regardless of state.
func (r *MemoryLockRepository) GetAdvisory(_ context.Context, id string) (*entity.AdvisoryLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.advisory[id]
	if !ok {
		return nil, ErrLockNotFound
	}
	out := *lock
	return &out, nil
}

// ListAdvisory returns the live advisory locks of a target.
func (r *MemoryLockRepository) ListAdvisory(_ context.Context, target entity.Target, now time.Time) ([]entity.AdvisoryLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(target, now).Advisory, nil
}

// Snapshot returns every live lock of a target.
func (r *MemoryLockRepository) Snapshot(_ context.Context, target entity.Target, now time.Time) (conflict.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(target, now), nil
}

// ReleaseExclusive marks an exclusive lock released if ownerID holds it.
func (r *MemoryLockRepository) ReleaseExclusive(_ context.Context, id string, ownerID string, now time.Time) (*entity.ExclusiveLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.exclusive[id]
	if !ok || lock.ReleasedAt != nil {
		return nil, ErrLockNotFound
	}
	if lock.OwnerID != ownerID {
		return nil, ErrLockNotOwner
	}
	markReleased(&lock.ReleasedAt, &lock.ReleasedBy, &lock.ReleaseReason, now, &ownerID, entity.ReleaseReasonReleased)
	out := *lock
	return &out, nil
}

// HeartbeatExclusive slides a timed exclusive lease forward by its TTL.
func (r *MemoryLockRepository) HeartbeatExclusive(_ context.Context, id string, ownerID string, now time.Time) (*entity.ExclusiveLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.exclusive[id]
	if !ok {
		return nil, ErrLockNotFound
	}
	if lock.ReleasedAt != nil || lock.OwnerID != ownerID || !lock.IsLive(now) {
		return nil, classifyStale(lock.OwnerID, ownerID, lock.ReleaseReason, lock.ReleasedAt, !lock.IsLive(now))
	}
	if lock.TTL > 0 {
		expires := now.Add(lock.TTL)
		lock.ExpiresAt = &expires
	}
	out := *lock
	return &out, nil
}

// ReleaseAdvisory marks an advisory lock released if ownerID holds it.
func (r *MemoryLockRepository) ReleaseAdvisory(_ context.Context, id string, ownerID string, now time.Time) (*entity.AdvisoryLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.advisory[id]
	if !ok || lock.ReleasedAt != nil {
		return nil, ErrLockNotFound
	}
	if lock.OwnerID != ownerID {
		return nil, ErrLockNotOwner
	}
	markReleased(&lock.ReleasedAt, &lock.ReleasedBy, &lock.ReleaseReason, now, &ownerID, entity.ReleaseReasonReleased)
	out := *lock
	return &out, nil
}

// HeartbeatAdvisory records activity and, when extend is set, slides the lease by its TTL.
func (r *MemoryLockRepository) HeartbeatAdvisory(_ context.Context, id string, ownerID string, now time.Time, extend bool) (*entity.AdvisoryLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.advisory[id]
	if !ok {
		return nil, ErrLockNotFound
	}
	if lock.ReleasedAt != nil || lock.OwnerID != ownerID || !lock.IsLive(now) {
		return nil, classifyStale(lock.OwnerID, ownerID, lock.ReleaseReason, lock.ReleasedAt, !lock.IsLive(now))
	}
	lock.Activity.LastActionAt = now
	lock.Activity.ActionCount++
	if extend {
		lock.ExpiresAt = now.Add(lock.TTL)
	}
	out := *lock
	return &out, nil
}

// SweepExpired releases every lapsed lease of both kinds.
func (r *MemoryLockRepository) SweepExpired(_ context.Context, now time.Time) ([]entity.LockEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.expireLocked(now, nil), nil
}

func (r *MemoryLockRepository) expireLocked(now time.Time, target *entity.Target) []entity.LockEvent {
	var events []entity.LockEvent
	for _, lock := range sortedExclusive(r.exclusive) {
		if target != nil && lock.Target != *target {
			continue
		}
		if lock.ReleasedAt != nil || lock.ExpiresAt == nil || lock.ExpiresAt.After(now) {
			continue
		}
		markReleased(&lock.ReleasedAt, &lock.ReleasedBy, &lock.ReleaseReason, now, nil, entity.ReleaseReasonExpired)
		out := *lock
		events = append(events, entity.NewExclusiveEvent(entity.EventExpired, &out, now))
	}
	for _, lock := range sortedAdvisory(r.advisory) {
		if target != nil && lock.Target != *target {
			continue
		}
		if lock.ReleasedAt != nil || lock.ExpiresAt.After(now) {
			continue
		}
		markReleased(&lock.ReleasedAt, &lock.ReleasedBy, &lock.ReleaseReason, now, nil, entity.ReleaseReasonExpired)
		out := *lock
		events = append(events, entity.NewAdvisoryEvent(entity.EventExpired, &out, now))
	}
	r.pruneLocked(now, target)
	return events
}

// pruneLocked drops locks released at or before now minus the retention.
func (r *MemoryLockRepository) pruneLocked(now time.Time, target *entity.Target) {
	cutoff := now.Add(-r.retention)
	for id, lock := range r.exclusive {
		if target != nil && lock.Target != *target {
			continue
		}
		if lock.ReleasedAt != nil && !lock.ReleasedAt.After(cutoff) {
			delete(r.exclusive, id)
		}
	}
	for id, lock := range r.advisory {
		if target != nil && lock.Target != *target {
			continue
		}
		if lock.ReleasedAt != nil && !lock.ReleasedAt.After(cutoff) {
			delete(r.advisory, id)
		}
	}
}

// Len reports how many locks the store still holds, live or retained.
func (r *MemoryLockRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.exclusive) + len(r.advisory)
}

func (r *MemoryLockRepository) snapshotLocked(target entity.Target, now time.Time) conflict.Snapshot {
	var snap conflict.Snapshot
	for _, lock := range sortedExclusive(r.exclusive) {
		if lock.Target == target && lock.IsLive(now) {
			snap.Exclusive = append(snap.Exclusive, *lock)
		}
	}
	for _, lock := range sortedAdvisory(r.advisory) {
		if lock.Target == target && lock.IsLive(now) {
			snap.Advisory = append(snap.Advisory, *lock)
		}
	}
	return snap
}

func markReleased(at **time.Time, by **string, reason **string, now time.Time, ownerID *string, why string) {
	releasedAt := now
	*at = &releasedAt
	*by = ownerID
	*reason = &why
}

func sortedExclusive(m map[string]*entity.ExclusiveLock) []*entity.ExclusiveLock {
	out := make([]*entity.ExclusiveLock, 0, len(m))
	for _, lock := range m {
		out = append(out, lock)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AcquiredAt.Equal(out[j].AcquiredAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AcquiredAt.Before(out[j].AcquiredAt)
	})
	return out
}

func sortedAdvisory(m map[string]*entity.AdvisoryLock) []*entity.AdvisoryLock {
	out := make([]*entity.AdvisoryLock, 0, len(m))
	for _, lock := range m {
		out = append(out, lock)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AcquiredAt.Equal(out[j].AcquiredAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AcquiredAt.Before(out[j].AcquiredAt)
	})
	return out
}
