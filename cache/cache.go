// Package cache provides an optional Redis cache for search responses, so a
// repeated question within the TTL does not hit the search API twice.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smallnest/askweb/exa"
)

// ErrMiss is returned when no cached response exists for the query.
var ErrMiss = errors.New("cache miss")

// SearchCache stores Exa responses in Redis keyed by query and result count.
type SearchCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Options configures the Redis connection and cache behavior.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string        // Key prefix, default "askweb:"
	TTL      time.Duration // Expiration for cached responses, default 1h
}

// New creates a SearchCache.
func New(opts Options) *SearchCache {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "askweb:"
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = time.Hour
	}

	return &SearchCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Close releases the Redis connection.
func (c *SearchCache) Close() error {
	return c.client.Close()
}

func (c *SearchCache) key(query string, numResults int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", query, numResults)))
	return fmt.Sprintf("%ssearch:%x", c.prefix, sum[:16])
}

// Get returns the cached response for the query, or ErrMiss.
func (c *SearchCache) Get(ctx context.Context, query string, numResults int) (*exa.SearchResponse, error) {
	data, err := c.client.Get(ctx, c.key(query, numResults)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("get cached search: %w", err)
	}

	var resp exa.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal cached search: %w", err)
	}

	return &resp, nil
}

// Set stores the response for the query.
func (c *SearchCache) Set(ctx context.Context, query string, numResults int, resp *exa.SearchResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal search response: %w", err)
	}

	if err := c.client.Set(ctx, c.key(query, numResults), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached search: %w", err)
	}

	return nil
}
