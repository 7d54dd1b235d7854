package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

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

// Order number sequence. INCR is atomic, so concurrent order creation can
// never produce the same number for the same day. Keys expire after two
// days; the date prefix makes cross-day collisions impossible anyway.
func (c *Client) NextOrderSequence(day time.Time) (int64, error) {
	ctx := context.Background()
	key := "order_seq:" + day.Format("20060102")
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to advance order sequence: %w", err)
	}
	if n == 1 {
		c.rdb.Expire(ctx, key, 48*time.Hour)
	}
	return n, nil
}

// Vendor average-rating cache.
func (c *Client) SetVendorRating(vendorID uint, rating float64, ttl time.Duration) error {
	ctx := context.Background()
	key := fmt.Sprintf("vendor_rating:%d", vendorID)
	return c.rdb.Set(ctx, key, rating, ttl).Err()
}

func (c *Client) GetVendorRating(vendorID uint) (float64, error) {
	ctx := context.Background()
	key := fmt.Sprintf("vendor_rating:%d", vendorID)
	val, err := c.rdb.Get(ctx, key).Float64()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("vendor rating not cached")
		}
		return 0, fmt.Errorf("failed to get vendor rating: %w", err)
	}
	return val, nil
}

func (c *Client) DeleteVendorRating(vendorID uint) error {
	ctx := context.Background()
	key := fmt.Sprintf("vendor_rating:%d", vendorID)
	return c.rdb.Del(ctx, key).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
