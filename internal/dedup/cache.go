package dedup

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"yake/internal/db"
)

// Cache memoizes similarity scores keyed by an unordered pair of surfaces.
// Implementations must be safe for concurrent readers once a value is
// published: entries are immutable floats, only evicted or wholesale
// replaced, never mutated in place.
type Cache interface {
	Get(key string) (float64, bool)
	Set(key string, value float64)
	// Clear empties the cache.
	Clear()
}

// PairKey builds a stable cache key for an unordered similarity pair so
// sim(a,b) and sim(b,a) share one entry.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	var sb strings.Builder
	sb.Grow(len(a) + len(b) + 1)
	sb.WriteString(a)
	sb.WriteByte(0)
	sb.WriteString(b)
	return sb.String()
}

// LRUCache is the default, process-local similarity memo: a fixed-capacity
// LRU wrapping hashicorp/golang-lru.
type LRUCache struct {
	mu    sync.Mutex
	inner *lru.Cache[string, float64]
}

// NewLRUCache creates a cache holding at most size entries.
func NewLRUCache(size int) *LRUCache {
	if size <= 0 {
		size = 4096
	}
	c, _ := lru.New[string, float64](size)
	return &LRUCache{inner: c}
}

func (c *LRUCache) Get(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(key)
}

func (c *LRUCache) Set(key string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Add(key, value)
}

func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Purge()
}

// RedisCache is the optional persistent similarity cache owned by the
// extractor, surviving process restarts, bounded by a key prefix + TTL
// rather than an entry count. It is built on internal/db.RedisClient's
// pooled connection, repurposed here to back a float64 score cache.
type RedisCache struct {
	client *db.RedisClient
	prefix string
	ttl    time.Duration
}

// NewRedisCache wraps an existing RedisClient. prefix namespaces keys so one
// Redis instance can back multiple extractors; ttl of zero means no expiry.
func NewRedisCache(client *db.RedisClient, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) Get(key string) (float64, bool) {
	raw, err := c.client.Get(context.Background(), c.prefix+key)
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (c *RedisCache) Set(key string, value float64) {
	_ = c.client.Set(context.Background(), c.prefix+key, value, c.ttl)
}

// Clear deletes every key under this cache's prefix via ScanKeys, so it
// never blocks a shared Redis instance with a full KEYS scan.
func (c *RedisCache) Clear() {
	ctx := context.Background()
	keys, err := c.client.ScanKeys(ctx, c.prefix+"*")
	if err != nil || len(keys) == 0 {
		return
	}
	_ = c.client.Del(ctx, keys...)
}
