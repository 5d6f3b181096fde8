// Package cache keeps the province tree between address form loads.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/schoolhub/portal/internal/domain"
)

const provincesKey = "geo:provinces"

type ProvinceCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context) (provinces []domain.Province, ok bool, err error)
	Set(ctx context.Context, provinces []domain.Province) error
}

// New returns a redis-backed cache, or an in-process one when rdb is nil.
func New(rdb *redis.Client, ttl time.Duration) ProvinceCache {
	if rdb == nil {
		return NewMemory(ttl)
	}

	return NewRedis(rdb, ttl)
}

type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context) ([]domain.Province, bool, error) {
	raw, err := c.rdb.Get(ctx, provincesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("c.rdb.Get -> %w", err)
	}

	var provinces []domain.Province
	if err = json.Unmarshal(raw, &provinces); err != nil {
		return nil, false, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return provinces, true, nil
}

func (c *Redis) Set(ctx context.Context, provinces []domain.Province) error {
	raw, err := json.Marshal(provinces)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}
	if err = c.rdb.Set(ctx, provincesKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("c.rdb.Set -> %w", err)
	}

	return nil
}

type Memory struct {
	mu        sync.RWMutex
	provinces []domain.Province
	expires   time.Time
	ttl       time.Duration
	now       func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, now: time.Now}
}

func (c *Memory) Get(context.Context) ([]domain.Province, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.provinces == nil || !c.now().Before(c.expires) {
		return nil, false, nil
	}

	return c.provinces, true, nil
}

func (c *Memory) Set(_ context.Context, provinces []domain.Province) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.provinces = provinces
	c.expires = c.now().Add(c.ttl)

	return nil
}
