package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a layer is not cached
var ErrCacheMiss = errors.New("layer not cached")

// LayerCache caches rendered GeoJSON layers (published treks, POIs, signage...)
// so public map endpoints do not rebuild them on every request.
type LayerCache interface {
	Get(ctx context.Context, layer string) ([]byte, error)
	Set(ctx context.Context, layer string, payload []byte, ttl time.Duration) error
	// Invalidate drops a cached layer, typically after a publish or geometry change
	Invalidate(ctx context.Context, layer string) error
	// InvalidateAll drops every cached layer
	InvalidateAll(ctx context.Context) error
}

// RedisLayerCache implements LayerCache using Redis
type RedisLayerCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisLayerCache creates a new Redis-based layer cache
func NewRedisLayerCache(cfg RedisConfig) (*RedisLayerCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisLayerCache{
		client:    client,
		keyPrefix: "layer:geojson:",
	}, nil
}

// NewRedisLayerCacheWithClient creates a cache with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisLayerCacheWithClient(client *redis.Client, keyPrefix string) *RedisLayerCache {
	if keyPrefix == "" {
		keyPrefix = "layer:geojson:"
	}
	return &RedisLayerCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cached payload for a layer
func (c *RedisLayerCache) Get(ctx context.Context, layer string) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.keyPrefix+layer).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cached layer: %w", err)
	}
	return payload, nil
}

// Set stores a layer payload with a TTL
func (c *RedisLayerCache) Set(ctx context.Context, layer string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+layer, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache layer: %w", err)
	}
	return nil
}

// Invalidate drops a cached layer
func (c *RedisLayerCache) Invalidate(ctx context.Context, layer string) error {
	if err := c.client.Del(ctx, c.keyPrefix+layer).Err(); err != nil {
		return fmt.Errorf("failed to invalidate layer: %w", err)
	}
	return nil
}

// InvalidateAll drops every cached layer
func (c *RedisLayerCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached layers: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate layers: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisLayerCache) Close() error {
	return c.client.Close()
}

// InMemoryLayerCache implements LayerCache with a local map.
// Suitable for development and tests; entries expire lazily.
type InMemoryLayerCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryLayerEntry
}

type inMemoryLayerEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewInMemoryLayerCache creates a new in-memory layer cache
func NewInMemoryLayerCache() *InMemoryLayerCache {
	return &InMemoryLayerCache{entries: make(map[string]inMemoryLayerEntry)}
}

// Get returns the cached payload for a layer
func (c *InMemoryLayerCache) Get(_ context.Context, layer string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[layer]
	c.mu.RUnlock()
	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		return nil, ErrCacheMiss
	}
	return entry.payload, nil
}

// Set stores a layer payload with a TTL
func (c *InMemoryLayerCache) Set(_ context.Context, layer string, payload []byte, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[layer] = inMemoryLayerEntry{payload: payload, expiresAt: expiresAt}
	c.mu.Unlock()
	return nil
}

// Invalidate drops a cached layer
func (c *InMemoryLayerCache) Invalidate(_ context.Context, layer string) error {
	c.mu.Lock()
	delete(c.entries, layer)
	c.mu.Unlock()
	return nil
}

// InvalidateAll drops every cached layer
func (c *InMemoryLayerCache) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]inMemoryLayerEntry)
	c.mu.Unlock()
	return nil
}

var (
	_ LayerCache = (*RedisLayerCache)(nil)
	_ LayerCache = (*InMemoryLayerCache)(nil)
)
