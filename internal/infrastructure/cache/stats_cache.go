package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jakupie/backend/internal/domain/rating"
)

const (
	statsKeyPrefix = "rating-stats:"
	statsTTL       = 10 * time.Minute
)

// RedisStatsCache caches computed rating stats in Redis
type RedisStatsCache struct {
	client *redis.Client
}

var _ rating.StatsCache = (*RedisStatsCache)(nil)

// NewRedisStatsCache creates a Redis-backed stats cache
func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{client: client}
}

func (c *RedisStatsCache) Get(ctx context.Context, userID uuid.UUID) (*rating.UserStats, error) {
	val, err := c.client.Get(ctx, statsKeyPrefix+userID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats rating.UserStats
	if err := json.Unmarshal(val, &stats); err != nil {
		// A corrupt entry reads as a miss
		return nil, nil
	}
	return &stats, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, userID uuid.UUID, stats rating.UserStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKeyPrefix+userID.String(), data, statsTTL).Err()
}

func (c *RedisStatsCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, statsKeyPrefix+userID.String()).Err()
}

// MemoryStatsCache keeps stats in process memory. Used in tests and when no
// Redis address is configured.
type MemoryStatsCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]memoryStatsEntry
}

type memoryStatsEntry struct {
	stats     rating.UserStats
	expiresAt time.Time
}

var _ rating.StatsCache = (*MemoryStatsCache)(nil)

// NewMemoryStatsCache creates an in-memory stats cache
func NewMemoryStatsCache() *MemoryStatsCache {
	return &MemoryStatsCache{entries: make(map[uuid.UUID]memoryStatsEntry)}
}

func (c *MemoryStatsCache) Get(_ context.Context, userID uuid.UUID) (*rating.UserStats, error) {
	c.mu.RLock()
	entry, ok := c.entries[userID]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, nil
	}

	stats := entry.stats
	return &stats, nil
}

func (c *MemoryStatsCache) Set(_ context.Context, userID uuid.UUID, stats rating.UserStats) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = memoryStatsEntry{stats: stats, expiresAt: time.Now().Add(statsTTL)}
	return nil
}

func (c *MemoryStatsCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	return nil
}
