package mutex

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var compareAndDelete = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisMutex is a SET NX lease. It expires on its own if the holder dies.
type RedisMutex struct {
	client redis.UniversalClient
	mu     sync.Mutex
	tokens map[string]string
}

func NewRedisMutex(client redis.UniversalClient) *RedisMutex {
	return &RedisMutex{client: client, tokens: make(map[string]string)}
}

func (m *RedisMutex) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, held := m.tokens[key]; held {
		return false, ErrAlreadyHeld
	}

	token := uuid.NewString()
	ok, err := m.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil || !ok {
		return false, err
	}
	m.tokens[key] = token
	return true, nil
}

// Unlock deletes key only while it still carries this instance's token.
func (m *RedisMutex) Unlock(ctx context.Context, key string) error {
	m.mu.Lock()
	token, held := m.tokens[key]
	delete(m.tokens, key)
	m.mu.Unlock()
	if !held {
		return nil
	}
	return compareAndDelete.Run(ctx, m.client, []string{key}, token).Err()
}
