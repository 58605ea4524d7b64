// Package reaper releases leases whose TTL has lapsed.
package reaper

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/clock"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
	"github.com/vibast-solutions/ms-go-doclocks/app/events"
	"github.com/vibast-solutions/ms-go-doclocks/app/mutex"
)

const (
	DefaultInterval = 10 * time.Second
	DefaultMutexKey = "doclocks:reaper"
)

// Sweeper releases every lapsed lease and returns one expired event per lock.
type Sweeper interface {
	SweepExpired(ctx context.Context, now time.Time) ([]entity.LockEvent, error)
}

type Options struct {
	Interval time.Duration
	// Mutex, when set, lets only one instance sweep per tick.
	Mutex    mutex.Mutex
	MutexKey string
}

type Reaper struct {
	store  Sweeper
	sink   events.Sink
	clock  clock.Clock
	logger logrus.FieldLogger
	opts   Options
}

func New(store Sweeper, sink events.Sink, clk clock.Clock, logger logrus.FieldLogger, opts Options) *Reaper {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.MutexKey == "" {
		opts.MutexKey = DefaultMutexKey
	}
	if sink == nil {
		sink = events.Noop()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Reaper{store: store, sink: sink, clock: clk, logger: logger, opts: opts}
}

// Run sweeps immediately and then on every interval until ctx is done.
// A failed sweep is logged and retried on the next tick.
func (r *Reaper) Run(ctx context.Context) {
	r.logger.WithField("interval", r.opts.Interval.String()).Info("expiry reaper started")
	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.SweepOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.WithError(err).Warn("expiry sweep failed")
		}
		select {
		case <-ctx.Done():
			r.logger.Info("expiry reaper stopped")
			return
		case <-ticker.C:
		}
	}
}

// SweepOnce runs a single sweep and reports how many leases it released.
// It returns 0 without sweeping when another instance holds the reaper mutex.
func (r *Reaper) SweepOnce(ctx context.Context) (int, error) {
	if r.opts.Mutex != nil {
		ok, err := r.opts.Mutex.TryLock(ctx, r.opts.MutexKey, r.opts.Interval)
		if errors.Is(err, mutex.ErrAlreadyHeld) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		if !ok {
			r.logger.Debug("expiry sweep skipped, another instance holds the reaper mutex")
			return 0, nil
		}
		defer func() {
			if err := r.opts.Mutex.Unlock(context.WithoutCancel(ctx), r.opts.MutexKey); err != nil {
				r.logger.WithError(err).Warn("reaper mutex unlock failed")
			}
		}()
	}

	expired, err := r.store.SweepExpired(ctx, r.clock.Now())
	if err != nil {
		return 0, err
	}
	for _, ev := range expired {
		if err := r.sink.OnLockEvent(ctx, ev); err != nil {
			r.logger.WithError(err).WithFields(events.Fields(ev)).Warn("lock event delivery failed")
		}
	}
	if len(expired) > 0 {
		r.logger.WithField("count", len(expired)).Info("expired leases released")
	}
	return len(expired), nil
}
