package mutex

import (
	"context"
	"database/sql"
	"sync"
	"time"
)

// MySQLMutex uses GET_LOCK named locks. The lock lives as long as the
// connection that took it, so the connection is pinned until Unlock.
type MySQLMutex struct {
	db    *sql.DB
	mu    sync.Mutex
	conns map[string]*sql.Conn
}

func NewMySQLMutex(db *sql.DB) *MySQLMutex {
	return &MySQLMutex{db: db, conns: make(map[string]*sql.Conn)}
}

// TryLock ignores ttl; MySQL drops the lock when the session ends.
func (m *MySQLMutex) TryLock(ctx context.Context, key string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, held := m.conns[key]; held {
		return false, ErrAlreadyHeld
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return false, err
	}
	var got sql.NullInt64
	if err := conn.QueryRowContext(ctx, "SELECT GET_LOCK(?, 0)", key).Scan(&got); err != nil {
		_ = conn.Close()
		return false, err
	}
	if !got.Valid || got.Int64 != 1 {
		_ = conn.Close()
		return false, nil
	}
	m.conns[key] = conn
	return true, nil
}

func (m *MySQLMutex) Unlock(ctx context.Context, key string) error {
	m.mu.Lock()
	conn, held := m.conns[key]
	delete(m.conns, key)
	m.mu.Unlock()
	if !held {
		return nil
	}
	defer conn.Close()
	_, err := conn.ExecContext(ctx, "DO RELEASE_LOCK(?)", key)
	return err
}
