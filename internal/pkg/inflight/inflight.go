// Package inflight keeps at most one outstanding submission per key, so a
// double click on a form does not reach the school API twice.
package inflight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "inflight:"

// Guard hands out short-lived locks. ok is false when the key is already
// held; release must be called once the submission finished.
type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), ok bool, err error)
}

// Key builds a lock key for an action on behalf of subject. The subject
// (a username or a token) is hashed so it is never stored as-is.
func Key(action, subject string) string {
	sum := sha256.Sum256([]byte(subject))
	return action + ":" + hex.EncodeToString(sum[:])
}

// New returns a redis-backed Guard, or an in-process one when rdb is nil.
func New(rdb *redis.Client, ttl time.Duration) Guard {
	if rdb == nil {
		return NewMemoryGuard(ttl)
	}

	return NewRedisGuard(rdb, ttl)
}

type RedisGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGuard(rdb *redis.Client, ttl time.Duration) *RedisGuard {
	return &RedisGuard{rdb: rdb, ttl: ttl}
}

// releaseScript deletes the lock only if we still own it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), bool, error) {
	owner := uuid.NewString()
	redisKey := keyPrefix + key

	ok, err := g.rdb.SetNX(ctx, redisKey, owner, g.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("g.rdb.SetNX -> %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// The request context may already be done.
		_ = releaseScript.Run(context.Background(), g.rdb, []string{redisKey}, owner).Err()
	}

	return release, true, nil
}

type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	return &MemoryGuard{
		held: make(map[string]time.Time),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string) (func(), bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if until, ok := g.held[key]; ok && now.Before(until) {
		return nil, false, nil
	}
	until := now.Add(g.ttl)
	g.held[key] = until

	release := func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.held[key] == until {
			delete(g.held, key)
		}
	}

	return release, true, nil
}
