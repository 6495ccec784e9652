package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Cache stores raw response bodies from the route service
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// New picks a backend: Redis when redisAddr is set, in-memory otherwise,
// and a no-op cache when ttl is zero.
func New(ttl time.Duration, redisAddr string) (Cache, error) {
	if ttl <= 0 {
		return NewNoOpCache(), nil
	}
	if redisAddr != "" {
		return NewRedisCache(RedisConfig{Addr: redisAddr, TTL: ttl})
	}
	return NewMemoryCache(ttl), nil
}

// MemoryCache keeps entries in process memory with a fixed TTL
type MemoryCache struct {
	store *gocache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	data, ok := v.([]byte)
	return data, ok
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte) error {
	c.store.SetDefault(key, value)
	return nil
}

func (c *MemoryCache) Close() error {
	c.store.Flush()
	return nil
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache shares cached responses between processes
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, key string) ([]byte, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, key string, value []byte) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// Key builds a stable cache key from a prefix and query parameters.
// Parameter order does not matter.
func Key(prefix string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, k := range names {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
		b.WriteByte('&')
	}

	hash := sha256.Sum256([]byte(b.String()))
	return prefix + ":" + hex.EncodeToString(hash[:])
}
