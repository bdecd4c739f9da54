// Package cache memoizes upstream calls in a bounded TTL LRU and paces every
// cache miss through one process-wide scheduler.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Syug0/LOL-team-assignment/internal/config"
	"github.com/Syug0/LOL-team-assignment/internal/constants"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

var ErrNoSlot = errors.New("cache: limiter cannot grant a slot")

// Cache is safe for concurrent use. Values are shared between callers and must not be mutated.
type Cache struct {
	entries *expirable.LRU[string, any]
	limiter *rate.Limiter
	group   singleflight.Group
	logger  zerolog.Logger
}

func New(cfg *config.Config, logger zerolog.Logger) *Cache {
	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}

	return &Cache{
		entries: expirable.NewLRU[string, any](cfg.CacheSize, nil, cfg.CacheTTL),
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.With().Str("component", "cache").Logger(),
	}
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

// Schedule blocks until the next upstream slot and returns the slot's start time.
// Slots are granted in call order, one per interval, with no bursting.
func (c *Cache) Schedule(ctx context.Context) (time.Time, error) {
	now := time.Now()
	r := c.limiter.ReserveN(now, 1)
	if !r.OK() {
		return time.Time{}, ErrNoSlot
	}

	delay := r.DelayFrom(now)
	slot := now.Add(delay)
	if delay <= 0 {
		return slot, nil
	}

	c.logger.Debug().Dur("delay", delay).Msg("waiting for upstream slot")

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-t.C:
		return slot, nil
	case <-ctx.Done():
		// hand the unused slot back to later callers
		r.CancelAt(time.Now())
		return time.Time{}, ctx.Err()
	}
}

// Fetch returns the live value stored under key, or schedules produce, caches a
// successful result and returns it. Failures are never cached.
//
// Concurrent misses on key share one flight. The flight runs detached from every
// caller's cancellation, so a caller whose ctx ends returns early without failing
// the others.
func Fetch[T any](ctx context.Context, c *Cache, key string, produce func(context.Context) (T, error)) (T, error) {
	var zero T

	if v, ok := c.entries.Get(key); ok {
		if typed, ok := v.(T); ok {
			c.logger.Debug().Str("key", key).Msg("cache hit")
			return typed, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := c.entries.Get(key); ok {
			return v, nil
		}

		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.RequestTimeout)
		defer cancel()

		if _, err := c.Schedule(flightCtx); err != nil {
			return nil, err
		}

		callCtx, cancelCall := context.WithTimeout(flightCtx, constants.ExternalAPITimeout)
		defer cancelCall()

		res, err := produce(callCtx)
		if err != nil {
			return nil, err
		}

		c.entries.Add(key, res)
		return res, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		c.logger.Debug().Err(ctx.Err()).Str("key", key).Msg("caller left shared fetch")
		return zero, ctx.Err()
	}

	if res.Err != nil {
		c.logger.Debug().Err(res.Err).Str("key", key).Msg("upstream call failed")
		return zero, res.Err
	}

	typed, ok := res.Val.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %q holds %T", key, res.Val)
	}

	c.logger.Debug().Str("key", key).Bool("shared", res.Shared).Msg("cache miss")
	return typed, nil
}
