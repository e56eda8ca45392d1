package redis

import (
	"context"
	"time"
)

// Cache provides namespaced JSON caching on top of the client.
type Cache struct {
	client *Client
	name   string
	ttl    time.Duration
}

// NewCache creates a named cache. When ttl is zero the client's
// DefaultCacheTTL applies.
func NewCache(client *Client, name string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = client.config.DefaultCacheTTL
	}
	return &Cache{
		client: client,
		name:   name,
		ttl:    ttl,
	}
}

// buildKey constructs the full cache key using name::key format
func (c *Cache) buildKey(key string) string {
	if c.name != "" {
		return c.name + "::" + key
	}
	return key
}

// Get retrieves a cached value into dest, reporting whether the key was present.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return c.client.GetJSON(ctx, c.buildKey(key), dest)
}

// Set stores a value in the cache under the cache's TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	return c.client.SetJSON(ctx, c.buildKey(key), value, c.ttl)
}

// Delete evicts a key from the cache.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildKey(key))
}

// TTL returns the cache's configured TTL.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
