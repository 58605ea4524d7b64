package service

import (
	"errors"
	"fmt"

	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/repository"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrAlreadyLocked          = errors.New("already locked")
	ErrAdvisoryEditInProgress = errors.New("advisory edit in progress")
	ErrCapacityReached        = errors.New("advisory lock capacity reached")
	ErrNotOwner               = errors.New("lock is held by another owner")
	ErrNotFound               = errors.New("lock not found")
	ErrExpired                = errors.New("lock lease expired")
)

// ConflictError reports a refused acquisition together with the lock that blocked it.
type ConflictError struct {
	Reason conflict.Reason
	Holder conflict.Holder
}

func newConflictError(c *conflict.Conflict) *ConflictError {
	return &ConflictError{Reason: c.Reason, Holder: c.Holder}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s lock %s held by %s", e.Reason, e.Holder.LockKind, e.Holder.LockID, e.Holder.OwnerID)
}

// Is matches the sentinel of the reason. An advisory edit holder also counts as ErrAlreadyLocked.
func (e *ConflictError) Is(target error) bool {
	switch target {
	case ErrAlreadyLocked:
		return e.Reason == conflict.ReasonAlreadyLocked || e.Reason == conflict.ReasonAdvisoryEditInProgress
	case ErrAdvisoryEditInProgress:
		return e.Reason == conflict.ReasonAdvisoryEditInProgress
	case ErrCapacityReached:
		return e.Reason == conflict.ReasonCapacityReached
	}
	return false
}

func translateStoreError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrLockNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrLockNotOwner):
		return ErrNotOwner
	case errors.Is(err, repository.ErrLockExpired):
		return ErrExpired
	}
	return fmt.Errorf("%s: %w", op, err)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
