package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

func TestCheckWrite(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.exclusive.Acquire(ctx, "alice", resume1, str("summary"), time.Minute); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if _, err := f.advisory.Acquire(ctx, "bob", resume1, entity.AdvisoryEdit, entity.Scope{Fields: []string{"experience.2"}}, time.Minute, nil); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if _, err := f.advisory.Acquire(ctx, "carol", resume1, entity.AdvisoryReview, sections("skills"), time.Minute, nil); err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	cases := []struct {
		name   string
		owner  string
		scope  entity.Scope
		reason conflict.Reason
	}{
		{name: "holder writes own section", owner: "alice", scope: sections("summary")},
		{name: "other writes locked section", owner: "dave", scope: sections("summary"), reason: conflict.ReasonAlreadyLocked},
		{name: "whole document write", owner: "dave", scope: entity.Scope{}, reason: conflict.ReasonAlreadyLocked},
		{name: "section covering edited field", owner: "dave", scope: sections("experience"), reason: conflict.ReasonAdvisoryEditInProgress},
		{name: "nested field", owner: "alice", scope: entity.Scope{Fields: []string{"experience.2.title"}}, reason: conflict.ReasonAdvisoryEditInProgress},
		{name: "sibling field", owner: "dave", scope: entity.Scope{Fields: []string{"experience.20"}}},
		{name: "reviewed section", owner: "dave", scope: sections("skills")},
		{name: "read only", owner: "dave", scope: entity.Scope{Sections: []string{"summary"}, ReadOnly: true}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := f.guard.CheckWrite(ctx, tc.owner, resume1, tc.scope)
			if tc.reason == "" {
				if err != nil {
					t.Fatalf("expected write allowed, got %v", err)
				}
				return
			}
			var conflictErr *ConflictError
			if !errors.As(err, &conflictErr) || conflictErr.Reason != tc.reason {
				t.Fatalf("expected %s, got %v", tc.reason, err)
			}
		})
	}
}

func TestCheckWriteIgnoresLapsedLocks(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.exclusive.Acquire(ctx, "alice", resume1, nil, time.Second); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := f.guard.CheckWrite(ctx, "bob", resume1, sections("summary")); !errors.Is(err, ErrAlreadyLocked) {
		t.Fatalf("expected ErrAlreadyLocked, got %v", err)
	}
	f.clock.Advance(2 * time.Second)
	if err := f.guard.CheckWrite(ctx, "bob", resume1, sections("summary")); err != nil {
		t.Fatalf("expected lapsed lock ignored, got %v", err)
	}
}

func TestCheckWriteValidation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	if err := f.guard.CheckWrite(context.Background(), "", resume1, entity.Scope{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := f.guard.CheckWrite(context.Background(), "bob", resume1, entity.Scope{Fields: []string{".title"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
