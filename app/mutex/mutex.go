// Package mutex provides the cross-instance mutual exclusion used to elect a
// single reaper per sweep cycle.
package mutex

import (
	"context"
	"errors"
	"time"
)

var ErrAlreadyHeld = errors.New("mutex already held by this instance")

type Mutex interface {
	// TryLock takes key without waiting. It reports false when another instance holds it.
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}
