package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Dashboard result caching. Values are JSON-encoded so stats, category sales
// and growth figures all go through the same pair of helpers.

func (c *Client) SetJSON(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return c.rdb.Set(ctx, "dashboard:"+key, data, ttl).Err()
}

func (c *Client) GetJSON(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "dashboard:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache value: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) Invalidate(keys ...string) error {
	ctx := context.Background()
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = "dashboard:" + key
	}
	return c.rdb.Del(ctx, prefixed...).Err()
}

// Birthday notice dedupe. A notice key lives for a year so the same customer
// never receives the same campaign message twice in one cycle.

func (c *Client) WasNoticeSent(customerID, notice string) (bool, error) {
	ctx := context.Background()
	key := fmt.Sprintf("birthday_notice:%s:%s", customerID, notice)
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check notice flag: %w", err)
	}
	return n > 0, nil
}

func (c *Client) MarkNoticeSent(customerID, notice string, ttl time.Duration) error {
	ctx := context.Background()
	key := fmt.Sprintf("birthday_notice:%s:%s", customerID, notice)
	return c.rdb.Set(ctx, key, time.Now().Format(time.RFC3339), ttl).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
