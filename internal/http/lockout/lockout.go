// Package lockout counts consecutive failed password attempts per client and
// blocks further tries for a cooling-off window.
package lockout

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	MaxStrikes  = 5
	BlockWindow = 10 * time.Minute
)

// Store tracks failed attempts keyed by client address.
type Store interface {
	Fail(ctx context.Context, key string) (int, error)
	Reset(ctx context.Context, key string) error
	Blocked(ctx context.Context, key string) (bool, error)
}

const keyPrefix = "lockout:login:"

// RedisStore keeps strike counters in Redis so a restart does not clear an
// active block.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Fail(ctx context.Context, key string) (int, error) {
	strikes, err := s.rdb.Incr(ctx, keyPrefix+key).Result()
	if err != nil {
		return 0, err
	}
	if strikes == 1 {
		_ = s.rdb.Expire(ctx, keyPrefix+key, BlockWindow).Err()
	}
	return int(strikes), nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, keyPrefix+key).Err()
}

func (s *RedisStore) Blocked(ctx context.Context, key string) (bool, error) {
	strikes, err := s.rdb.Get(ctx, keyPrefix+key).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strikes >= MaxStrikes, nil
}

type memoryEntry struct {
	strikes  int
	lastFail time.Time
}

// MemoryStore is the in-process implementation used in tests and when no
// Redis address is configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]*memoryEntry{}}
}

func (s *MemoryStore) Fail(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || time.Since(e.lastFail) > BlockWindow {
		e = &memoryEntry{}
		s.entries[key] = e
	}
	e.strikes++
	e.lastFail = time.Now()
	return e.strikes, nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) Blocked(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	if time.Since(e.lastFail) > BlockWindow {
		delete(s.entries, key)
		return false, nil
	}
	return e.strikes >= MaxStrikes, nil
}
