package cmd

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/clock"
	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/events"
	"github.com/vibast-solutions/ms-go-doclocks/app/mutex"
	"github.com/vibast-solutions/ms-go-doclocks/app/queue"
	"github.com/vibast-solutions/ms-go-doclocks/app/reaper"
	"github.com/vibast-solutions/ms-go-doclocks/app/repository"
	"github.com/vibast-solutions/ms-go-doclocks/app/service"
	"github.com/vibast-solutions/ms-go-doclocks/config"
)

// runtime holds the connections and shared components every command builds on.
type runtime struct {
	cfg    *config.Config
	logger *logrus.Logger
	clock  clock.Clock
	db     *sql.DB
	rdb    *redis.Client
	store  service.LockStore
	sink   events.Sink
}

func bootstrap(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*runtime, error) {
	rt := &runtime{cfg: cfg, logger: logger, clock: clock.NewSystem()}

	if cfg.LockStore == "mysql" || cfg.ReaperMutex == "mysql" {
		db, err := openMySQL(ctx, cfg)
		if err != nil {
			return nil, err
		}
		rt.db = db
	}

	if cfg.EventSink == "redis" || cfg.ReaperMutex == "redis" {
		rdb, err := openRedis(ctx, cfg)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.rdb = rdb
	}

	switch cfg.LockStore {
	case "memory":
		logger.Warn("using in-memory lock store, locks are not shared between instances")
		rt.store = repository.NewMemoryLockRepositoryWithRetention(cfg.MemoryRetention)
	default:
		rt.store = repository.NewLockRepository(rt.db)
	}

	logSink := events.NewLogSink(logger)
	switch cfg.EventSink {
	case "redis":
		rt.sink = events.Fanout(logSink, queue.NewEventProducer(rt.rdb))
	case "log":
		rt.sink = logSink
	default:
		rt.sink = events.Noop()
	}

	return rt, nil
}

func openMySQL(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MySQLMaxOpen)
	db.SetMaxIdleConns(cfg.MySQLMaxIdle)
	db.SetConnMaxLifetime(cfg.MySQLMaxLife)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func openRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

func (rt *runtime) exclusiveService() *service.ExclusiveLockService {
	return service.NewExclusiveLockService(rt.store, rt.sink, rt.clock, rt.logger, service.ExclusiveOptions{
		MaxTTL: rt.cfg.ExclusiveMaxTTL,
	})
}

func (rt *runtime) advisoryService() *service.AdvisoryLockService {
	return service.NewAdvisoryLockService(rt.store, rt.sink, rt.clock, rt.logger, service.AdvisoryOptions{
		DefaultTTL:   rt.cfg.AdvisoryDefaultTTL,
		MaxTTL:       rt.cfg.AdvisoryMaxTTL,
		SlidingLease: rt.cfg.AdvisorySlidingLease,
		Policy:       conflict.Policy{MaxAdvisoryPerType: rt.cfg.AdvisoryMaxPerType},
	})
}

func (rt *runtime) guardService() *service.WriteGuardService {
	return service.NewWriteGuardService(rt.store, rt.clock)
}

func (rt *runtime) reaper() *reaper.Reaper {
	opts := reaper.Options{Interval: rt.cfg.ReaperInterval}
	switch rt.cfg.ReaperMutex {
	case "redis":
		opts.Mutex = mutex.NewRedisMutex(rt.rdb)
	case "mysql":
		opts.Mutex = mutex.NewMySQLMutex(rt.db)
	}
	return reaper.New(rt.store, rt.sink, rt.clock, rt.logger.WithField("component", "reaper"), opts)
}

func (rt *runtime) Close() {
	if rt.rdb != nil {
		if err := rt.rdb.Close(); err != nil {
			rt.logger.WithError(err).Warn("failed to close redis client")
		}
	}
	if rt.db != nil {
		if err := rt.db.Close(); err != nil {
			rt.logger.WithError(err).Warn("failed to close database")
		}
	}
}
