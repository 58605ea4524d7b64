package service

import (
	"context"

	"github.com/vibast-solutions/ms-go-doclocks/app/clock"
	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

// WriteGuardService answers whether a document mutation may be committed.
type WriteGuardService struct {
	store LockStore
	clock clock.Clock
}

func NewWriteGuardService(store LockStore, clk clock.Clock) *WriteGuardService {
	return &WriteGuardService{store: store, clock: clk}
}

// CheckWrite returns a *ConflictError when a live lock of another owner covers
// any part of scope. A read-only scope never conflicts.
func (s *WriteGuardService) CheckWrite(ctx context.Context, ownerID string, target entity.Target, scope entity.Scope) error {
	if err := validateOwner(ownerID); err != nil {
		return err
	}
	if err := validateTarget(target); err != nil {
		return err
	}
	scope = scope.Normalize()
	for _, field := range scope.Fields {
		if err := validateFieldPath(field); err != nil {
			return err
		}
	}

	now := s.clock.Now()
	snap, err := s.store.Snapshot(ctx, target, now)
	if err != nil {
		return translateStoreError("load lock snapshot", err)
	}
	decision := conflict.Resolve(snap, conflict.Request{
		Mode:    conflict.ModeWrite,
		OwnerID: ownerID,
		Scope:   scope,
	}, now, conflict.Policy{})
	if !decision.Allowed() {
		return newConflictError(decision.Conflict)
	}
	return nil
}
