package repository

import (
	"errors"

	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

var (
	ErrLockNotFound = errors.New("lock not found")
	ErrLockNotOwner = errors.New("lock is held by another owner")
	ErrLockExpired  = errors.New("lock lease has expired")
)

// ExclusiveInsert is the outcome of an exclusive acquisition attempt.
// Reclaimed lists leases of the same target that had lapsed and were released
// inside the acquisition transaction.
type ExclusiveInsert struct {
	Lock      *entity.ExclusiveLock
	Reused    bool
	Conflict  *conflict.Conflict
	Reclaimed []entity.LockEvent
}

// AdvisoryInsert is the outcome of an advisory acquisition attempt.
type AdvisoryInsert struct {
	Lock      *entity.AdvisoryLock
	Reused    bool
	Conflict  *conflict.Conflict
	Reclaimed []entity.LockEvent
}
