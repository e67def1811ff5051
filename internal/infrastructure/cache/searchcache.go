// Package cache provides Redis-backed caches for data the console fetches
// repeatedly from the CRM backend.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reachdesk/internal/domain/contact"
)

// ErrCacheMiss is returned when no entry exists for the query.
var ErrCacheMiss = errors.New("search cache miss")

// SearchCache holds recent people-search results under a short TTL so that
// retyping a query does not hit the backend again. Entries are keyed by the
// normalized query string; staleness is bounded by the TTL, never refreshed
// in place.
type SearchCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSearchCache creates a SearchCache. A ttl around 30 seconds keeps
// results fresh enough for an interactive search box.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{
		client: client,
		prefix: "search:people:",
		ttl:    ttl,
	}
}

// Get returns the cached results for a normalized query, or ErrCacheMiss.
func (c *SearchCache) Get(ctx context.Context, query string) ([]contact.Person, error) {
	data, err := c.client.Get(ctx, c.buildKey(query)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read search cache: %w", err)
	}

	var people []contact.Person
	if err := json.Unmarshal([]byte(data), &people); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached results: %w", err)
	}
	return people, nil
}

// Set stores the results for a normalized query with the configured TTL.
func (c *SearchCache) Set(ctx context.Context, query string, people []contact.Person) error {
	data, err := json.Marshal(people)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := c.client.Set(ctx, c.buildKey(query), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store search results: %w", err)
	}
	return nil
}

// Invalidate drops every cached search result. Called after a person is
// created so the next keystroke sees the new record.
func (c *SearchCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan search keys: %w", err)
	}
	return nil
}

func (c *SearchCache) buildKey(query string) string {
	return c.prefix + query
}
