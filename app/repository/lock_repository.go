package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

const mysqlDuplicateEntry = 1062

const exclusiveColumns = `id, target_type, target_id, section, owner_id, ttl_seconds, acquired_at, expires_at, released_at, released_by, release_reason`

const advisoryColumns = `id, target_type, target_id, owner_id, lock_type, scope, reason, ttl_seconds, acquired_at, expires_at, last_action_at, action_count, released_at, released_by, release_reason`

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// LockRepository is the MySQL lock store. Every mutation is a single
// transaction or a single conditional statement.
type LockRepository struct {
	db *sql.DB
}

// NewLockRepository constructs a lock store backed by MySQL.
func NewLockRepository(db *sql.DB) *LockRepository {
	return &LockRepository{db: db}
}

// TryInsertExclusive atomically acquires an exclusive lock unless a live conflicting lock exists.
func (r *LockRepository) TryInsertExclusive(ctx context.Context, lock *entity.ExclusiveLock, policy conflict.Policy) (*ExclusiveInsert, error) {
	now := lock.AcquiredAt

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	snap, reclaimed, err := r.prepareTarget(ctx, tx, lock.Target, now)
	if err != nil {
		return nil, err
	}

	decision := conflict.Resolve(snap, conflict.Request{
		Mode:    conflict.ModeExclusive,
		OwnerID: lock.OwnerID,
		Section: lock.Section,
	}, now, policy)

	if decision.Reused() {
		held := decision.Exclusive
		held.Renew(lock.TTL, now)
		const renew = `UPDATE exclusive_locks SET ttl_seconds = ?, expires_at = ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, renew, nullableSeconds(held.TTL), nullableTime(held.ExpiresAt), held.ID); err != nil {
			return nil, fmt.Errorf("renew exclusive lock: %w", err)
		}
	}

	if !decision.Allowed() || decision.Reused() {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit tx: %w", err)
		}
		return &ExclusiveInsert{Lock: decision.Exclusive, Reused: decision.Reused(), Conflict: decision.Conflict, Reclaimed: reclaimed}, nil
	}

	const insert = `
		INSERT INTO exclusive_locks (id, target_type, target_id, section, owner_id, ttl_seconds, acquired_at, expires_at, active_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insert,
		lock.ID, string(lock.Target.Type), lock.Target.ID, nullableString(lock.Section), lock.OwnerID,
		nullableSeconds(lock.TTL), lock.AcquiredAt, nullableTime(lock.ExpiresAt), entity.ActiveKey(lock.Target, lock.Section))
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			_ = tx.Rollback()
			return &ExclusiveInsert{Conflict: r.activeHolder(ctx, lock.Target, lock.Section)}, nil
		}
		return nil, fmt.Errorf("insert exclusive lock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &ExclusiveInsert{Lock: lock, Reclaimed: reclaimed}, nil
}

// TryInsertAdvisory atomically acquires an advisory lock unless a live conflicting lock exists.
func (r *LockRepository) TryInsertAdvisory(ctx context.Context, lock *entity.AdvisoryLock, policy conflict.Policy) (*AdvisoryInsert, error) {
	now := lock.AcquiredAt

	scope, err := json.Marshal(lock.Scope)
	if err != nil {
		return nil, fmt.Errorf("encode scope: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	snap, reclaimed, err := r.prepareTarget(ctx, tx, lock.Target, now)
	if err != nil {
		return nil, err
	}

	decision := conflict.Resolve(snap, conflict.Request{
		Mode:     conflict.ModeAdvisory,
		OwnerID:  lock.OwnerID,
		LockType: lock.LockType,
		Scope:    lock.Scope,
	}, now, policy)

	if decision.Reused() {
		held := decision.Advisory
		held.Renew(lock.TTL, now)
		const renew = `
			UPDATE advisory_locks
			SET ttl_seconds = ?, expires_at = ?, last_action_at = ?, action_count = action_count + 1
			WHERE id = ?
		`
		if _, err := tx.ExecContext(ctx, renew, int64(held.TTL/time.Second), held.ExpiresAt, now, held.ID); err != nil {
			return nil, fmt.Errorf("renew advisory lock: %w", err)
		}
	}

	if !decision.Allowed() || decision.Reused() {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit tx: %w", err)
		}
		return &AdvisoryInsert{Lock: decision.Advisory, Reused: decision.Reused(), Conflict: decision.Conflict, Reclaimed: reclaimed}, nil
	}

	const insert = `
		INSERT INTO advisory_locks (id, target_type, target_id, owner_id, lock_type, scope, reason, ttl_seconds, acquired_at, expires_at, last_action_at, action_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insert,
		lock.ID, string(lock.Target.Type), lock.Target.ID, lock.OwnerID, string(lock.LockType), string(scope),
		nullableString(lock.Reason), int64(lock.TTL/time.Second), lock.AcquiredAt, lock.ExpiresAt,
		lock.Activity.LastActionAt, lock.Activity.ActionCount)
	if err != nil {
		return nil, fmt.Errorf("insert advisory lock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &AdvisoryInsert{Lock: lock, Reclaimed: reclaimed}, nil
}

// prepareTarget serializes on the target row, releases lapsed leases of the
// target and loads what is still live.
func (r *LockRepository) prepareTarget(ctx context.Context, tx *sql.Tx, target entity.Target, now time.Time) (conflict.Snapshot, []entity.LockEvent, error) {
	const upsert = `
		INSERT INTO lock_targets (target_type, target_id, created_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE target_id = target_id
	`
	if _, err := tx.ExecContext(ctx, upsert, string(target.Type), target.ID, now); err != nil {
		return conflict.Snapshot{}, nil, fmt.Errorf("upsert lock target: %w", err)
	}

	const selectForUpdate = `
		SELECT target_id FROM lock_targets
		WHERE target_type = ? AND target_id = ?
		FOR UPDATE
	`
	var locked string
	if err := tx.QueryRowContext(ctx, selectForUpdate, string(target.Type), target.ID).Scan(&locked); err != nil {
		return conflict.Snapshot{}, nil, fmt.Errorf("lock target row: %w", err)
	}

	reclaimed, err := expireLapsed(ctx, tx, now, &target)
	if err != nil {
		return conflict.Snapshot{}, nil, err
	}

	snap, err := loadSnapshot(ctx, tx, target, now)
	if err != nil {
		return conflict.Snapshot{}, nil, err
	}
	return snap, reclaimed, nil
}

// activeHolder looks up the live lock that won a uniqueness race.
func (r *LockRepository) activeHolder(ctx context.Context, target entity.Target, section *string) *conflict.Conflict {
	c := &conflict.Conflict{Reason: conflict.ReasonAlreadyLocked}
	query := `SELECT ` + exclusiveColumns + ` FROM exclusive_locks WHERE active_key = ?`
	holder, err := scanExclusive(r.db.QueryRowContext(ctx, query, entity.ActiveKey(target, section)))
	if err == nil {
		c.Holder = conflict.ExclusiveHolder(holder)
	}
	return c
}

// GetExclusive loads an exclusive lock by ID regardless of state.
func (r *LockRepository) GetExclusive(ctx context.Context, id string) (*entity.ExclusiveLock, error) {
	query := `SELECT ` + exclusiveColumns + ` FROM exclusive_locks WHERE id = ?`
	lock, err := scanExclusive(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get exclusive lock: %w", err)
	}
	return lock, nil
}

// FindExclusive returns the live exclusive lock on (target, section), if any.
func (r *LockRepository) FindExclusive(ctx context.Context, target entity.Target, section *string, now time.Time) (*entity.ExclusiveLock, error) {
	query := `SELECT ` + exclusiveColumns + ` FROM exclusive_locks
		WHERE active_key = ? AND (expires_at IS NULL OR expires_at > ?)`
	lock, err := scanExclusive(r.db.QueryRowContext(ctx, query, entity.ActiveKey(target, section), now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find exclusive lock: %w", err)
	}
	return lock, nil
}

// ListExclusive returns the live exclusive locks of a target.
func (r *LockRepository) ListExclusive(ctx context.Context, target entity.Target, now time.Time) ([]entity.ExclusiveLock, error) {
	return listLiveExclusive(ctx, r.db, target, now)
}

// GetAdvisory loads an advisory lock by ID regardless of state.
func (r *LockRepository) GetAdvisory(ctx context.Context, id string) (*entity.AdvisoryLock, error) {
	query := `SELECT ` + advisoryColumns + ` FROM advisory_locks WHERE id = ?`
	lock, err := scanAdvisory(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get advisory lock: %w", err)
	}
	return lock, nil
}

// ListAdvisory returns the live advisory locks of a target.
func (r *LockRepository) ListAdvisory(ctx context.Context, target entity.Target, now time.Time) ([]entity.AdvisoryLock, error) {
	return listLiveAdvisory(ctx, r.db, target, now)
}

// Snapshot returns every live lock of a target.
func (r *LockRepository) Snapshot(ctx context.Context, target entity.Target, now time.Time) (conflict.Snapshot, error) {
	return loadSnapshot(ctx, r.db, target, now)
}

// ReleaseExclusive marks an exclusive lock released if ownerID holds it.
func (r *LockRepository) ReleaseExclusive(ctx context.Context, id string, ownerID string, now time.Time) (*entity.ExclusiveLock, error) {
	const query = `
		UPDATE exclusive_locks
		SET released_at = ?, released_by = ?, release_reason = ?, active_key = NULL
		WHERE id = ? AND owner_id = ? AND released_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, now, ownerID, entity.ReleaseReasonReleased, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("release exclusive lock: %w", err)
	}
	if claimed(res) {
		return r.GetExclusive(ctx, id)
	}

	lock, err := r.GetExclusive(ctx, id)
	if err != nil {
		return nil, err
	}
	if lock.ReleasedAt != nil {
		return nil, ErrLockNotFound
	}
	if lock.OwnerID != ownerID {
		return nil, ErrLockNotOwner
	}
	return nil, ErrLockNotFound
}

// HeartbeatExclusive slides a timed exclusive lease forward by its TTL.
func (r *LockRepository) HeartbeatExclusive(ctx context.Context, id string, ownerID string, now time.Time) (*entity.ExclusiveLock, error) {
	const query = `
		UPDATE exclusive_locks
		SET expires_at = CASE WHEN ttl_seconds IS NULL THEN NULL ELSE DATE_ADD(?, INTERVAL ttl_seconds SECOND) END
		WHERE id = ? AND owner_id = ? AND released_at IS NULL AND (expires_at IS NULL OR expires_at > ?)
	`
	res, err := r.db.ExecContext(ctx, query, now, id, ownerID, now)
	if err != nil {
		return nil, fmt.Errorf("heartbeat exclusive lock: %w", err)
	}

	lock, err := r.GetExclusive(ctx, id)
	if err != nil {
		return nil, err
	}
	// MySQL reports changed rows, so an untimed lock matches without changing.
	if claimed(res) || (lock.OwnerID == ownerID && lock.IsLive(now)) {
		return lock, nil
	}
	return nil, classifyStale(lock.OwnerID, ownerID, lock.ReleaseReason, lock.ReleasedAt, !lock.IsLive(now))
}

// ReleaseAdvisory marks an advisory lock released if ownerID holds it.
func (r *LockRepository) ReleaseAdvisory(ctx context.Context, id string, ownerID string, now time.Time) (*entity.AdvisoryLock, error) {
	const query = `
		UPDATE advisory_locks
		SET released_at = ?, released_by = ?, release_reason = ?
		WHERE id = ? AND owner_id = ? AND released_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, now, ownerID, entity.ReleaseReasonReleased, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("release advisory lock: %w", err)
	}
	if claimed(res) {
		return r.GetAdvisory(ctx, id)
	}

	lock, err := r.GetAdvisory(ctx, id)
	if err != nil {
		return nil, err
	}
	if lock.ReleasedAt != nil {
		return nil, ErrLockNotFound
	}
	if lock.OwnerID != ownerID {
		return nil, ErrLockNotOwner
	}
	return nil, ErrLockNotFound
}

// HeartbeatAdvisory records activity and, when extend is set, slides the lease by its TTL.
func (r *LockRepository) HeartbeatAdvisory(ctx context.Context, id string, ownerID string, now time.Time, extend bool) (*entity.AdvisoryLock, error) {
	query := `
		UPDATE advisory_locks
		SET last_action_at = ?, action_count = action_count + 1
		WHERE id = ? AND owner_id = ? AND released_at IS NULL AND expires_at > ?
	`
	args := []any{now, id, ownerID, now}
	if extend {
		query = `
		UPDATE advisory_locks
		SET last_action_at = ?, action_count = action_count + 1, expires_at = DATE_ADD(?, INTERVAL ttl_seconds SECOND)
		WHERE id = ? AND owner_id = ? AND released_at IS NULL AND expires_at > ?
	`
		args = []any{now, now, id, ownerID, now}
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("heartbeat advisory lock: %w", err)
	}

	lock, err := r.GetAdvisory(ctx, id)
	if err != nil {
		return nil, err
	}
	if claimed(res) {
		return lock, nil
	}
	return nil, classifyStale(lock.OwnerID, ownerID, lock.ReleaseReason, lock.ReleasedAt, !lock.IsLive(now))
}

// SweepExpired releases every lapsed lease of both kinds and returns the ones this call claimed.
func (r *LockRepository) SweepExpired(ctx context.Context, now time.Time) ([]entity.LockEvent, error) {
	return expireLapsed(ctx, r.db, now, nil)
}

// expireLapsed stamps lapsed leases with a fresh sweep token in a single
// conditional UPDATE per table, then reads back exactly the rows carrying
// that token. Concurrent sweepers never claim the same row.
func expireLapsed(ctx context.Context, q querier, now time.Time, target *entity.Target) ([]entity.LockEvent, error) {
	token := uuid.NewString()

	filter := ""
	filterArgs := []any{}
	if target != nil {
		filter = ` AND target_type = ? AND target_id = ?`
		filterArgs = append(filterArgs, string(target.Type), target.ID)
	}

	var events []entity.LockEvent

	exclusiveUpdate := `
		UPDATE exclusive_locks
		SET released_at = ?, release_reason = ?, active_key = NULL, sweep_token = ?
		WHERE released_at IS NULL AND expires_at IS NOT NULL AND expires_at <= ?` + filter
	res, err := q.ExecContext(ctx, exclusiveUpdate, append([]any{now, entity.ReleaseReasonExpired, token, now}, filterArgs...)...)
	if err != nil {
		return nil, fmt.Errorf("expire exclusive locks: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		rows, err := q.QueryContext(ctx, `SELECT `+exclusiveColumns+` FROM exclusive_locks WHERE sweep_token = ?`, token)
		if err != nil {
			return nil, fmt.Errorf("load expired exclusive locks: %w", err)
		}
		expired, err := collectExclusive(rows)
		if err != nil {
			return nil, err
		}
		for i := range expired {
			events = append(events, entity.NewExclusiveEvent(entity.EventExpired, &expired[i], now))
		}
	}

	advisoryUpdate := `
		UPDATE advisory_locks
		SET released_at = ?, release_reason = ?, sweep_token = ?
		WHERE released_at IS NULL AND expires_at <= ?` + filter
	res, err = q.ExecContext(ctx, advisoryUpdate, append([]any{now, entity.ReleaseReasonExpired, token, now}, filterArgs...)...)
	if err != nil {
		return nil, fmt.Errorf("expire advisory locks: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		rows, err := q.QueryContext(ctx, `SELECT `+advisoryColumns+` FROM advisory_locks WHERE sweep_token = ?`, token)
		if err != nil {
			return nil, fmt.Errorf("load expired advisory locks: %w", err)
		}
		expired, err := collectAdvisory(rows)
		if err != nil {
			return nil, err
		}
		for i := range expired {
			events = append(events, entity.NewAdvisoryEvent(entity.EventExpired, &expired[i], now))
		}
	}

	return events, nil
}

func loadSnapshot(ctx context.Context, q querier, target entity.Target, now time.Time) (conflict.Snapshot, error) {
	exclusive, err := listLiveExclusive(ctx, q, target, now)
	if err != nil {
		return conflict.Snapshot{}, err
	}
	advisory, err := listLiveAdvisory(ctx, q, target, now)
	if err != nil {
		return conflict.Snapshot{}, err
	}
	return conflict.Snapshot{Exclusive: exclusive, Advisory: advisory}, nil
}

func listLiveExclusive(ctx context.Context, q querier, target entity.Target, now time.Time) ([]entity.ExclusiveLock, error) {
	query := `SELECT ` + exclusiveColumns + ` FROM exclusive_locks
		WHERE target_type = ? AND target_id = ? AND released_at IS NULL AND (expires_at IS NULL OR expires_at > ?)
		ORDER BY acquired_at, id`
	rows, err := q.QueryContext(ctx, query, string(target.Type), target.ID, now)
	if err != nil {
		return nil, fmt.Errorf("list exclusive locks: %w", err)
	}
	return collectExclusive(rows)
}

func listLiveAdvisory(ctx context.Context, q querier, target entity.Target, now time.Time) ([]entity.AdvisoryLock, error) {
	query := `SELECT ` + advisoryColumns + ` FROM advisory_locks
		WHERE target_type = ? AND target_id = ? AND released_at IS NULL AND expires_at > ?
		ORDER BY acquired_at, id`
	rows, err := q.QueryContext(ctx, query, string(target.Type), target.ID, now)
	if err != nil {
		return nil, fmt.Errorf("list advisory locks: %w", err)
	}
	return collectAdvisory(rows)
}

func collectExclusive(rows *sql.Rows) ([]entity.ExclusiveLock, error) {
	defer rows.Close()
	var out []entity.ExclusiveLock
	for rows.Next() {
		lock, err := scanExclusive(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exclusive lock: %w", err)
		}
		out = append(out, *lock)
	}
	return out, rows.Err()
}

func collectAdvisory(rows *sql.Rows) ([]entity.AdvisoryLock, error) {
	defer rows.Close()
	var out []entity.AdvisoryLock
	for rows.Next() {
		lock, err := scanAdvisory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan advisory lock: %w", err)
		}
		out = append(out, *lock)
	}
	return out, rows.Err()
}

func scanExclusive(s scanner) (*entity.ExclusiveLock, error) {
	var (
		lock       entity.ExclusiveLock
		targetType string
		section    sql.NullString
		ttl        sql.NullInt64
		expiresAt  sql.NullTime
		releasedAt sql.NullTime
		releasedBy sql.NullString
		reason     sql.NullString
	)
	err := s.Scan(&lock.ID, &targetType, &lock.Target.ID, &section, &lock.OwnerID, &ttl,
		&lock.AcquiredAt, &expiresAt, &releasedAt, &releasedBy, &reason)
	if err != nil {
		return nil, err
	}
	lock.Target.Type = entity.TargetType(targetType)
	lock.Section = stringPtr(section)
	if ttl.Valid {
		lock.TTL = time.Duration(ttl.Int64) * time.Second
	}
	lock.ExpiresAt = timePtr(expiresAt)
	lock.ReleasedAt = timePtr(releasedAt)
	lock.ReleasedBy = stringPtr(releasedBy)
	lock.ReleaseReason = stringPtr(reason)
	return &lock, nil
}

func scanAdvisory(s scanner) (*entity.AdvisoryLock, error) {
	var (
		lock       entity.AdvisoryLock
		targetType string
		lockType   string
		scope      string
		reason     sql.NullString
		ttl        int64
		releasedAt sql.NullTime
		releasedBy sql.NullString
		relReason  sql.NullString
	)
	err := s.Scan(&lock.ID, &targetType, &lock.Target.ID, &lock.OwnerID, &lockType, &scope, &reason, &ttl,
		&lock.AcquiredAt, &lock.ExpiresAt, &lock.Activity.LastActionAt, &lock.Activity.ActionCount,
		&releasedAt, &releasedBy, &relReason)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(scope), &lock.Scope); err != nil {
		return nil, fmt.Errorf("decode scope of %s: %w", lock.ID, err)
	}
	lock.Target.Type = entity.TargetType(targetType)
	lock.LockType = entity.AdvisoryType(lockType)
	lock.Reason = stringPtr(reason)
	lock.TTL = time.Duration(ttl) * time.Second
	lock.ReleasedAt = timePtr(releasedAt)
	lock.ReleasedBy = stringPtr(releasedBy)
	lock.ReleaseReason = stringPtr(relReason)
	return &lock, nil
}

// classifyStale explains why an owner-checked update matched no row.
func classifyStale(holder, caller string, releaseReason *string, releasedAt *time.Time, lapsed bool) error {
	if releasedAt != nil {
		if releaseReason != nil && *releaseReason == entity.ReleaseReasonExpired {
			return ErrLockExpired
		}
		return ErrLockNotFound
	}
	if holder != caller {
		return ErrLockNotOwner
	}
	if lapsed {
		return ErrLockExpired
	}
	return ErrLockNotFound
}

func claimed(res sql.Result) bool {
	n, err := res.RowsAffected()
	return err == nil && n == 1
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullableSeconds(d time.Duration) any {
	if d <= 0 {
		return nil
	}
	return int64(d / time.Second)
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
