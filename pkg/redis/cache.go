package redis

import (
	"context"
	"encoding/json"
	"time"
)

// Cache provides named, TTL-bound read-through caching on top of the client.
// Values are serialized as JSON. Cache failures are reported to the caller,
// which decides whether to treat the cache as optional.
type Cache struct {
	client *Client
	name   string
}

// NewCache creates a cache bound to a name. The name selects the TTL from the
// client configuration (CacheTTLs, falling back to DefaultCacheTTL) and
// prefixes every key as "name::key".
func NewCache(client *Client, name string) *Cache {
	return &Cache{client: client, name: name}
}

func (c *Cache) ttl() time.Duration {
	if ttl, ok := c.client.config.CacheTTLs[c.name]; ok {
		return ttl
	}
	return c.client.config.DefaultCacheTTL
}

func (c *Cache) buildKey(key string) string {
	return c.name + "::" + key
}

// Get retrieves a value from the cache and deserializes it into dest.
// The second return value reports whether the key was present.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.buildKey(key))
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set serializes a value and stores it under the cache's TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.buildKey(key), data, c.ttl())
}

// Invalidate removes a key from the cache.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildKey(key))
}
