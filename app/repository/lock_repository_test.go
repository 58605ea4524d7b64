package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

var (
	exclusiveCols = []string{"id", "target_type", "target_id", "section", "owner_id", "ttl_seconds", "acquired_at", "expires_at", "released_at", "released_by", "release_reason"}
	advisoryCols  = []string{"id", "target_type", "target_id", "owner_id", "lock_type", "scope", "reason", "ttl_seconds", "acquired_at", "expires_at", "last_action_at", "action_count", "released_at", "released_by", "release_reason"}

	testNow    = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	testTarget = entity.Target{Type: entity.TargetResume, ID: "resume-1"}
)

func newLockRepo(t *testing.T) (*LockRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	return NewLockRepository(db), mock, func() { _ = db.Close() }
}

func expectPrepareTarget(mock sqlmock.Sqlmock, now time.Time) {
	expectPrepareTargetFor(mock, testTarget, now)
}

func expectPrepareTargetFor(mock sqlmock.Sqlmock, target entity.Target, now time.Time) {
	kind := string(target.Type)
	mock.ExpectExec("INSERT INTO lock_targets").
		WithArgs(kind, target.ID, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT target_id FROM lock_targets").
		WithArgs(kind, target.ID).
		WillReturnRows(sqlmock.NewRows([]string{"target_id"}).AddRow(target.ID))
	mock.ExpectExec("UPDATE exclusive_locks").
		WithArgs(now, entity.ReleaseReasonExpired, sqlmock.AnyArg(), now, kind, target.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE advisory_locks").
		WithArgs(now, entity.ReleaseReasonExpired, sqlmock.AnyArg(), now, kind, target.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func sectionPtr(s string) *string { return &s }

func TestLockRepositoryTryInsertExclusiveInserts(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	expires := testNow.Add(time.Minute)
	lock := &entity.ExclusiveLock{
		ID:         "lock-1",
		Target:     testTarget,
		Section:    sectionPtr("summary"),
		OwnerID:    "alice",
		TTL:        time.Minute,
		AcquiredAt: testNow,
		ExpiresAt:  &expires,
	}

	mock.ExpectBegin()
	expectPrepareTarget(mock, testNow)
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(exclusiveCols))
	mock.ExpectQuery("SELECT (.+) FROM advisory_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(advisoryCols))
	mock.ExpectExec("INSERT INTO exclusive_locks").
		WithArgs("lock-1", "resume", "resume-1", "summary", "alice", int64(60), testNow, expires, "resume:8:resume-1|s:summary").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	res, err := repo.TryInsertExclusive(context.Background(), lock, conflict.Policy{})
	if err != nil {
		t.Fatalf("TryInsertExclusive: %v", err)
	}
	if res.Conflict != nil || res.Reused {
		t.Fatalf("expected fresh insert, got %+v", res)
	}
	if res.Lock.ID != "lock-1" {
		t.Fatalf("expected lock-1, got %s", res.Lock.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryActiveKeySeparatesAmbiguousTargets(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	expires := testNow.Add(time.Minute)
	locks := []struct {
		lock *entity.ExclusiveLock
		key  string
	}{
		{
			lock: &entity.ExclusiveLock{ID: "lock-a", Target: entity.Target{Type: entity.TargetResume, ID: "a#b"}, Section: sectionPtr("c"), OwnerID: "alice", TTL: time.Minute, AcquiredAt: testNow, ExpiresAt: &expires},
			key:  "resume:3:a#b|s:c",
		},
		{
			lock: &entity.ExclusiveLock{ID: "lock-b", Target: entity.Target{Type: entity.TargetResume, ID: "a"}, Section: sectionPtr("b#c"), OwnerID: "bob", TTL: time.Minute, AcquiredAt: testNow, ExpiresAt: &expires},
			key:  "resume:1:a|s:b#c",
		},
	}

	for _, l := range locks {
		target := l.lock.Target
		mock.ExpectBegin()
		expectPrepareTargetFor(mock, target, testNow)
		mock.ExpectQuery("SELECT (.+) FROM exclusive_locks").
			WithArgs("resume", target.ID, testNow).
			WillReturnRows(sqlmock.NewRows(exclusiveCols))
		mock.ExpectQuery("SELECT (.+) FROM advisory_locks").
			WithArgs("resume", target.ID, testNow).
			WillReturnRows(sqlmock.NewRows(advisoryCols))
		mock.ExpectExec("INSERT INTO exclusive_locks").
			WithArgs(l.lock.ID, "resume", target.ID, *l.lock.Section, l.lock.OwnerID, int64(60), testNow, expires, l.key).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
	}

	for _, l := range locks {
		res, err := repo.TryInsertExclusive(context.Background(), l.lock, conflict.Policy{})
		if err != nil {
			t.Fatalf("TryInsertExclusive %s: %v", l.lock.ID, err)
		}
		if res.Conflict != nil || res.Reused {
			t.Fatalf("expected fresh insert for %s, got %+v", l.lock.ID, res)
		}
	}
	if locks[0].key == locks[1].key {
		t.Fatalf("active keys collide: %q", locks[0].key)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryTryInsertExclusiveConflict(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	lock := &entity.ExclusiveLock{ID: "lock-2", Target: testTarget, Section: sectionPtr("summary"), OwnerID: "bob", AcquiredAt: testNow}

	mock.ExpectBegin()
	expectPrepareTarget(mock, testNow)
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(exclusiveCols).
			AddRow("lock-1", "resume", "resume-1", "summary", "alice", int64(60), testNow.Add(-time.Second), testNow.Add(time.Minute), nil, nil, nil))
	mock.ExpectQuery("SELECT (.+) FROM advisory_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(advisoryCols))
	mock.ExpectCommit()

	res, err := repo.TryInsertExclusive(context.Background(), lock, conflict.Policy{})
	if err != nil {
		t.Fatalf("TryInsertExclusive: %v", err)
	}
	if res.Conflict == nil {
		t.Fatalf("expected conflict")
	}
	if res.Conflict.Reason != conflict.ReasonAlreadyLocked || res.Conflict.Holder.OwnerID != "alice" {
		t.Fatalf("unexpected conflict: %+v", res.Conflict)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryTryInsertExclusiveDuplicateKey(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	lock := &entity.ExclusiveLock{ID: "lock-3", Target: testTarget, Section: sectionPtr("summary"), OwnerID: "bob", AcquiredAt: testNow}

	mock.ExpectBegin()
	expectPrepareTarget(mock, testNow)
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(exclusiveCols))
	mock.ExpectQuery("SELECT (.+) FROM advisory_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(advisoryCols))
	mock.ExpectExec("INSERT INTO exclusive_locks").
		WillReturnError(&mysql.MySQLError{Number: 1062})
	mock.ExpectRollback()
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks WHERE active_key").
		WithArgs("resume:8:resume-1|s:summary").
		WillReturnRows(sqlmock.NewRows(exclusiveCols).
			AddRow("lock-1", "resume", "resume-1", "summary", "alice", nil, testNow, nil, nil, nil, nil))

	res, err := repo.TryInsertExclusive(context.Background(), lock, conflict.Policy{})
	if err != nil {
		t.Fatalf("TryInsertExclusive: %v", err)
	}
	if res.Conflict == nil || res.Conflict.Holder.LockID != "lock-1" {
		t.Fatalf("expected conflict with lock-1, got %+v", res.Conflict)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryTryInsertExclusiveReuseRenewsLease(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	lock := &entity.ExclusiveLock{ID: "lock-4", Target: testTarget, Section: sectionPtr("summary"), OwnerID: "alice", TTL: 5 * time.Minute, AcquiredAt: testNow}
	renewed := testNow.Add(5 * time.Minute)

	mock.ExpectBegin()
	expectPrepareTarget(mock, testNow)
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(exclusiveCols).
			AddRow("lock-1", "resume", "resume-1", "summary", "alice", int64(60), testNow.Add(-30*time.Second), testNow.Add(30*time.Second), nil, nil, nil))
	mock.ExpectQuery("SELECT (.+) FROM advisory_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(advisoryCols))
	mock.ExpectExec("UPDATE exclusive_locks SET ttl_seconds").
		WithArgs(int64(300), renewed, "lock-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := repo.TryInsertExclusive(context.Background(), lock, conflict.Policy{})
	if err != nil {
		t.Fatalf("TryInsertExclusive: %v", err)
	}
	if !res.Reused || res.Lock.ID != "lock-1" {
		t.Fatalf("expected reuse of lock-1, got %+v", res)
	}
	if res.Lock.TTL != 5*time.Minute || res.Lock.ExpiresAt == nil || !res.Lock.ExpiresAt.Equal(renewed) {
		t.Fatalf("expected renewed lease, got ttl=%s expires=%v", res.Lock.TTL, res.Lock.ExpiresAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryTryInsertAdvisory(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	lock := &entity.AdvisoryLock{
		ID:         "adv-1",
		Target:     testTarget,
		OwnerID:    "alice",
		LockType:   entity.AdvisoryEdit,
		Scope:      entity.Scope{Sections: []string{"skills"}},
		TTL:        5 * time.Minute,
		AcquiredAt: testNow,
		ExpiresAt:  testNow.Add(5 * time.Minute),
		Activity:   entity.Activity{LastActionAt: testNow},
	}

	mock.ExpectBegin()
	expectPrepareTarget(mock, testNow)
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(exclusiveCols))
	mock.ExpectQuery("SELECT (.+) FROM advisory_locks").
		WithArgs("resume", "resume-1", testNow).
		WillReturnRows(sqlmock.NewRows(advisoryCols).
			AddRow("adv-0", "resume", "resume-1", "bob", "review", `{"sections":["skills"],"read_only":true}`, nil, int64(300), testNow, testNow.Add(time.Minute), testNow, int64(0), nil, nil, nil))
	mock.ExpectExec("INSERT INTO advisory_locks").
		WithArgs("adv-1", "resume", "resume-1", "alice", "edit", `{"sections":["skills"],"read_only":false}`, nil, int64(300), testNow, testNow.Add(5*time.Minute), testNow, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	res, err := repo.TryInsertAdvisory(context.Background(), lock, conflict.Policy{})
	if err != nil {
		t.Fatalf("TryInsertAdvisory: %v", err)
	}
	if res.Conflict != nil || res.Lock.ID != "adv-1" {
		t.Fatalf("expected insert, got %+v", res)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryReleaseExclusive(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE exclusive_locks").
		WithArgs(testNow, "alice", entity.ReleaseReasonReleased, "lock-1", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks WHERE id").
		WithArgs("lock-1").
		WillReturnRows(sqlmock.NewRows(exclusiveCols).
			AddRow("lock-1", "resume", "resume-1", nil, "alice", nil, testNow, nil, testNow, "alice", "released"))

	lock, err := repo.ReleaseExclusive(context.Background(), "lock-1", "alice", testNow)
	if err != nil {
		t.Fatalf("ReleaseExclusive: %v", err)
	}
	if lock.ReleasedAt == nil || lock.Section != nil {
		t.Fatalf("unexpected lock: %+v", lock)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryReleaseExclusiveNotOwner(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE exclusive_locks").
		WithArgs(testNow, "mallory", entity.ReleaseReasonReleased, "lock-1", "mallory").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks WHERE id").
		WithArgs("lock-1").
		WillReturnRows(sqlmock.NewRows(exclusiveCols).
			AddRow("lock-1", "resume", "resume-1", "summary", "alice", int64(60), testNow, testNow.Add(time.Minute), nil, nil, nil))

	if _, err := repo.ReleaseExclusive(context.Background(), "lock-1", "mallory", testNow); !errors.Is(err, ErrLockNotOwner) {
		t.Fatalf("expected ErrLockNotOwner, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryReleaseExclusiveMissing(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE exclusive_locks").
		WithArgs(testNow, "alice", entity.ReleaseReasonReleased, "nope", "alice").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks WHERE id").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(exclusiveCols))

	if _, err := repo.ReleaseExclusive(context.Background(), "nope", "alice", testNow); !errors.Is(err, ErrLockNotFound) {
		t.Fatalf("expected ErrLockNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryHeartbeatExclusiveExpired(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE exclusive_locks").
		WithArgs(testNow, "lock-1", "alice", testNow).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks WHERE id").
		WithArgs("lock-1").
		WillReturnRows(sqlmock.NewRows(exclusiveCols).
			AddRow("lock-1", "resume", "resume-1", "summary", "alice", int64(60), testNow.Add(-2*time.Minute), testNow.Add(-time.Minute), testNow.Add(-time.Second), nil, "expired"))

	if _, err := repo.HeartbeatExclusive(context.Background(), "lock-1", "alice", testNow); !errors.Is(err, ErrLockExpired) {
		t.Fatalf("expected ErrLockExpired, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryHeartbeatExclusiveUntimed(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE exclusive_locks").
		WithArgs(testNow, "lock-1", "alice", testNow).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks WHERE id").
		WithArgs("lock-1").
		WillReturnRows(sqlmock.NewRows(exclusiveCols).
			AddRow("lock-1", "resume", "resume-1", nil, "alice", nil, testNow.Add(-time.Hour), nil, nil, nil, nil))

	lock, err := repo.HeartbeatExclusive(context.Background(), "lock-1", "alice", testNow)
	if err != nil {
		t.Fatalf("HeartbeatExclusive: %v", err)
	}
	if lock.ExpiresAt != nil {
		t.Fatalf("expected untimed lock, got expiry %v", lock.ExpiresAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryHeartbeatAdvisoryExtends(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE advisory_locks").
		WithArgs(testNow, testNow, "adv-1", "alice", testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM advisory_locks WHERE id").
		WithArgs("adv-1").
		WillReturnRows(sqlmock.NewRows(advisoryCols).
			AddRow("adv-1", "resume", "resume-1", "alice", "edit", `{"fields":["experience.0"],"read_only":false}`, "polishing", int64(300), testNow.Add(-time.Minute), testNow.Add(5*time.Minute), testNow, int64(3), nil, nil, nil))

	lock, err := repo.HeartbeatAdvisory(context.Background(), "adv-1", "alice", testNow, true)
	if err != nil {
		t.Fatalf("HeartbeatAdvisory: %v", err)
	}
	if lock.Activity.ActionCount != 3 || lock.Reason == nil || *lock.Reason != "polishing" {
		t.Fatalf("unexpected lock: %+v", lock)
	}
	if len(lock.Scope.Fields) != 1 || lock.Scope.Fields[0] != "experience.0" {
		t.Fatalf("unexpected scope: %+v", lock.Scope)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryHeartbeatAdvisoryNotOwner(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE advisory_locks").
		WithArgs(testNow, "adv-1", "bob", testNow).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM advisory_locks WHERE id").
		WithArgs("adv-1").
		WillReturnRows(sqlmock.NewRows(advisoryCols).
			AddRow("adv-1", "resume", "resume-1", "alice", "edit", `{"read_only":false}`, nil, int64(300), testNow, testNow.Add(5*time.Minute), testNow, int64(0), nil, nil, nil))

	if _, err := repo.HeartbeatAdvisory(context.Background(), "adv-1", "bob", testNow, false); !errors.Is(err, ErrLockNotOwner) {
		t.Fatalf("expected ErrLockNotOwner, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositorySweepExpired(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE exclusive_locks").
		WithArgs(testNow, entity.ReleaseReasonExpired, sqlmock.AnyArg(), testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks WHERE sweep_token").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(exclusiveCols).
			AddRow("lock-1", "resume", "resume-1", "summary", "alice", int64(1), testNow.Add(-2*time.Second), testNow.Add(-time.Second), testNow, nil, "expired"))
	mock.ExpectExec("UPDATE advisory_locks").
		WithArgs(testNow, entity.ReleaseReasonExpired, sqlmock.AnyArg(), testNow).
		WillReturnResult(sqlmock.NewResult(0, 0))

	events, err := repo.SweepExpired(context.Background(), testNow)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Kind != entity.EventExpired || events[0].LockKind != entity.LockKindExclusive || events[0].LockID() != "lock-1" {
		t.Fatalf("unexpected event: %+v", events[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositorySweepExpiredNothingClaimed(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE exclusive_locks").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE advisory_locks").
		WillReturnResult(sqlmock.NewResult(0, 0))

	events, err := repo.SweepExpired(context.Background(), testNow)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLockRepositoryFindExclusive(t *testing.T) {
	t.Parallel()

	repo, mock, cleanup := newLockRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM exclusive_locks").
		WithArgs("resume:resume-1#*", testNow).
		WillReturnRows(sqlmock.NewRows(exclusiveCols))

	if _, err := repo.FindExclusive(context.Background(), testTarget, nil, testNow); !errors.Is(err, ErrLockNotFound) {
		t.Fatalf("expected ErrLockNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestMigrate(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	stmts := SchemaStatements()
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(stmts))
	}
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS lock_targets").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS exclusive_locks").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS advisory_locks").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
