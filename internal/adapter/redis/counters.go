// Package redis implements the volatile per-banner counter store. Counters
// live only in Redis and may be lost on restart; the analytics store stays
// the source of truth, and drift between the two is accepted.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// CounterStore implements port.CounterStore. All writes are single atomic
// INCR operations, never read-modify-write from the request path.
type CounterStore struct {
	rdb *goredis.Client
}

// NewCounterStore wraps an established client; see db.NewRedisClient for
// construction.
func NewCounterStore(rdb *goredis.Client) *CounterStore {
	return &CounterStore{rdb: rdb}
}

func showsKey(bannerID int64) string  { return fmt.Sprintf("banner:%d:shows", bannerID) }
func clicksKey(bannerID int64) string { return fmt.Sprintf("banner:%d:clicks", bannerID) }

func (c *CounterStore) IncrementShows(ctx context.Context, bannerID int64) error {
	return c.rdb.Incr(ctx, showsKey(bannerID)).Err()
}

func (c *CounterStore) IncrementClicks(ctx context.Context, bannerID int64) error {
	return c.rdb.Incr(ctx, clicksKey(bannerID)).Err()
}

func (c *CounterStore) Shows(ctx context.Context, bannerID int64) (int64, error) {
	return c.get(ctx, showsKey(bannerID))
}

func (c *CounterStore) Clicks(ctx context.Context, bannerID int64) (int64, error) {
	return c.get(ctx, clicksKey(bannerID))
}

// get treats a missing key as zero: a counter that was never bumped, or one
// lost to a store restart.
func (c *CounterStore) get(ctx context.Context, key string) (int64, error) {
	n, err := c.rdb.Get(ctx, key).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return n, err
}
