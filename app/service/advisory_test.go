package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-doclocks/app/clock"
	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
	"github.com/vibast-solutions/ms-go-doclocks/app/repository"
)

func sections(names ...string) entity.Scope {
	return entity.Scope{Sections: names}
}

func TestAdvisoryAcquireDefaultsTTL(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	lock, err := f.advisory.Acquire(context.Background(), "alice", resume1, entity.AdvisoryReview, sections("summary"), 0, str("  proofreading "))
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if lock.TTL != defaultAdvisoryTTL || !lock.ExpiresAt.Equal(t0.Add(defaultAdvisoryTTL)) {
		t.Fatalf("unexpected lease: ttl=%s expires=%v", lock.TTL, lock.ExpiresAt)
	}
	if lock.Reason == nil || *lock.Reason != "proofreading" {
		t.Fatalf("unexpected reason: %v", lock.Reason)
	}
}

func TestAdvisoryAcquireValidation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.advisory.Acquire(ctx, "alice", resume1, "comment", sections("summary"), time.Minute, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for lock type, got %v", err)
	}
	bad := entity.Scope{Fields: []string{"experience..title"}}
	if _, err := f.advisory.Acquire(ctx, "alice", resume1, entity.AdvisoryEdit, bad, time.Minute, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for field path, got %v", err)
	}

	capped := NewAdvisoryLockService(f.store, nil, f.clock, quietLogger(), AdvisoryOptions{MaxTTL: time.Minute})
	if _, err := capped.Acquire(ctx, "alice", resume1, entity.AdvisoryEdit, sections("summary"), time.Hour, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for ttl, got %v", err)
	}
}

func TestAdvisoryEditScopesConflictOnOverlap(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	held, err := f.advisory.Acquire(ctx, "alice", resume1, entity.AdvisoryEdit, entity.Scope{Fields: []string{"experience.0"}}, time.Minute, nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	_, err = f.advisory.Acquire(ctx, "bob", resume1, entity.AdvisoryEdit, entity.Scope{Fields: []string{"experience.0.title"}}, time.Minute, nil)
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) || conflictErr.Reason != conflict.ReasonAdvisoryEditInProgress || conflictErr.Holder.LockID != held.ID {
		t.Fatalf("expected advisory edit conflict, got %v", err)
	}
	if !errors.Is(err, ErrAlreadyLocked) || !errors.Is(err, ErrAdvisoryEditInProgress) {
		t.Fatalf("conflict should match both sentinels: %v", err)
	}

	if _, err := f.advisory.Acquire(ctx, "bob", resume1, entity.AdvisoryEdit, entity.Scope{Fields: []string{"experience.1"}}, time.Minute, nil); err != nil {
		t.Fatalf("disjoint field should succeed: %v", err)
	}
	if _, err := f.advisory.Acquire(ctx, "carol", resume1, entity.AdvisoryEdit, entity.Scope{Sections: []string{"experience"}, ReadOnly: true}, time.Minute, nil); err != nil {
		t.Fatalf("read-only scope should succeed: %v", err)
	}
}

func TestAdvisoryCrossKindConflicts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("exclusive blocks advisory edit", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		if _, err := f.exclusive.Acquire(ctx, "alice", resume1, str("experience"), time.Minute); err != nil {
			t.Fatalf("Acquire: %v", err)
		}
		_, err := f.advisory.Acquire(ctx, "bob", resume1, entity.AdvisoryEdit, sections("experience", "skills"), time.Minute, nil)
		if !errors.Is(err, ErrAlreadyLocked) {
			t.Fatalf("expected ErrAlreadyLocked, got %v", err)
		}
		if _, err := f.advisory.Acquire(ctx, "bob", resume1, entity.AdvisoryReview, sections("experience"), time.Minute, nil); err != nil {
			t.Fatalf("review should not be blocked: %v", err)
		}
	})

	t.Run("advisory edit blocks exclusive", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		if _, err := f.advisory.Acquire(ctx, "alice", resume1, entity.AdvisoryEdit, sections("experience"), time.Minute, nil); err != nil {
			t.Fatalf("Acquire: %v", err)
		}
		_, err := f.exclusive.Acquire(ctx, "bob", resume1, str("experience"), time.Minute)
		if !errors.Is(err, ErrAdvisoryEditInProgress) {
			t.Fatalf("expected ErrAdvisoryEditInProgress, got %v", err)
		}
		if _, err := f.exclusive.Acquire(ctx, "bob", resume1, str("education"), time.Minute); err != nil {
			t.Fatalf("disjoint section should succeed: %v", err)
		}
	})

	t.Run("review never blocks exclusive", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		if _, err := f.advisory.Acquire(ctx, "alice", resume1, entity.AdvisoryReview, sections("experience"), time.Minute, nil); err != nil {
			t.Fatalf("Acquire: %v", err)
		}
		if _, err := f.exclusive.Acquire(ctx, "bob", resume1, str("experience"), time.Minute); err != nil {
			t.Fatalf("exclusive should not be blocked by review: %v", err)
		}
	})
}

func TestAdvisoryIdempotentReacquire(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.advisory.Acquire(ctx, "alice", resume1, entity.AdvisoryEdit, sections("skills", "summary"), time.Minute, nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	f.clock.Advance(10 * time.Second)
	second, err := f.advisory.Acquire(ctx, "alice", resume1, entity.AdvisoryEdit, sections("summary", "skills"), time.Minute, nil)
	if err != nil {
		t.Fatalf("re-Acquire: %v", err)
	}
	if second.ID != first.ID || !second.ExpiresAt.Equal(t0.Add(70*time.Second)) {
		t.Fatalf("expected refreshed lock %s, got %s expiring %v", first.ID, second.ID, second.ExpiresAt)
	}

	f.clock.Advance(10 * time.Second)
	third, err := f.advisory.Acquire(ctx, "alice", resume1, entity.AdvisoryEdit, sections("skills", "summary"), 5*time.Minute, nil)
	if err != nil {
		t.Fatalf("re-Acquire with longer ttl: %v", err)
	}
	if third.TTL != 5*time.Minute || !third.ExpiresAt.Equal(t0.Add(20*time.Second+5*time.Minute)) {
		t.Fatalf("expected requested ttl to apply, got ttl=%s expires=%v", third.TTL, third.ExpiresAt)
	}
	if third.Activity.ActionCount != 2 {
		t.Fatalf("expected 2 recorded actions, got %d", third.Activity.ActionCount)
	}
}

func TestAdvisoryHeartbeatExtendsLease(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	beating, err := f.advisory.Acquire(ctx, "alice", resume1, entity.AdvisoryEdit, sections("summary"), 10*time.Second, nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	idle, err := f.advisory.Acquire(ctx, "bob", resume1, entity.AdvisoryReview, sections("summary"), 10*time.Second, nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	f.clock.Advance(8 * time.Second)
	beat, err := f.advisory.Heartbeat(ctx, beating.ID, "alice")
	if err != nil {
		t.Fatalf("Heartbeat: %v", err)
	}
	if !beat.ExpiresAt.Equal(t0.Add(18*time.Second)) || beat.Activity.ActionCount != 1 || !beat.Activity.LastActionAt.Equal(t0.Add(8*time.Second)) {
		t.Fatalf("unexpected heartbeat result: %+v", beat)
	}

	f.clock.Advance(4 * time.Second)
	active, err := f.advisory.ListActive(ctx, resume1)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 || active[0].ID != beating.ID {
		t.Fatalf("expected only heartbeated lock live, got %+v", active)
	}
	if _, err := f.advisory.Heartbeat(ctx, idle.ID, "bob"); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestAdvisoryHeartbeatWithoutSlidingLease(t *testing.T) {
	t.Parallel()
	store := repository.NewMemoryLockRepository()
	clk := clock.NewManual(t0)
	svc := NewAdvisoryLockService(store, nil, clk, quietLogger(), AdvisoryOptions{})
	ctx := context.Background()

	lock, err := svc.Acquire(ctx, "alice", resume1, entity.AdvisoryEdit, sections("summary"), 10*time.Second, nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	clk.Advance(5 * time.Second)
	beat, err := svc.Heartbeat(ctx, lock.ID, "alice")
	if err != nil {
		t.Fatalf("Heartbeat: %v", err)
	}
	if !beat.ExpiresAt.Equal(lock.ExpiresAt) || beat.Activity.ActionCount != 1 {
		t.Fatalf("expected activity only, got %+v", beat)
	}
}

func TestAdvisoryReleaseIsOwnerGated(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	lock, err := f.advisory.Acquire(ctx, "alice", resume1, entity.AdvisoryApproval, entity.Scope{}, time.Minute, nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := f.advisory.Release(ctx, lock.ID, "bob"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, err := f.advisory.Heartbeat(ctx, lock.ID, "bob"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := f.advisory.Release(ctx, lock.ID, "alice"); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := f.advisory.Release(ctx, lock.ID, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.advisory.Heartbeat(ctx, "missing", "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdvisoryCapacityPolicy(t *testing.T) {
	t.Parallel()
	store := repository.NewMemoryLockRepository()
	clk := clock.NewManual(t0)
	svc := NewAdvisoryLockService(store, nil, clk, quietLogger(), AdvisoryOptions{Policy: conflict.Policy{MaxAdvisoryPerType: 2}})
	ctx := context.Background()

	for _, owner := range []string{"alice", "bob"} {
		if _, err := svc.Acquire(ctx, owner, resume1, entity.AdvisoryReview, sections("summary"), time.Minute, nil); err != nil {
			t.Fatalf("Acquire %s: %v", owner, err)
		}
		clk.Advance(time.Second)
	}
	_, err := svc.Acquire(ctx, "carol", resume1, entity.AdvisoryReview, sections("skills"), time.Minute, nil)
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) || conflictErr.Reason != conflict.ReasonCapacityReached || conflictErr.Holder.OwnerID != "alice" {
		t.Fatalf("expected capacity conflict held by oldest reviewer, got %v", err)
	}
	if !errors.Is(err, ErrCapacityReached) || errors.Is(err, ErrAlreadyLocked) {
		t.Fatalf("capacity conflict sentinels mismatch: %v", err)
	}
	if _, err := svc.Acquire(ctx, "carol", resume1, entity.AdvisoryExport, entity.Scope{}, time.Minute, nil); err != nil {
		t.Fatalf("other lock types are not capped: %v", err)
	}
}
