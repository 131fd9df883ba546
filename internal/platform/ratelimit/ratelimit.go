// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ratelimit provides per-client request limiters used by the HTTP
middleware chain.

Two backends are available:

  - Memory: a token bucket per key (golang.org/x/time/rate), local to one process.
  - Redis: a fixed window counter shared by every instance behind a load balancer.
*/
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/taibuivan/pokereview/internal/platform/constants"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// # In-Memory Token Bucket

type memoryClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Memory is a process-local [Limiter].
type Memory struct {
	mu      sync.Mutex
	clients map[string]*memoryClient
	rps     rate.Limit
	burst   int
	ttl     time.Duration
}

// NewMemory constructs a token bucket limiter and starts a cleanup routine that
// evicts idle clients until ctx is cancelled.
func NewMemory(ctx context.Context, rps float64, burst int) *Memory {
	limiter := &Memory{
		clients: make(map[string]*memoryClient),
		rps:     rate.Limit(rps),
		burst:   burst,
		ttl:     constants.RateLimitClientTTL,
	}

	go limiter.cleanup(ctx, constants.RateLimitCleanupInterval)
	return limiter
}

// Allow implements [Limiter].
func (limiter *Memory) Allow(_ context.Context, key string) (bool, error) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	client, found := limiter.clients[key]
	if !found {
		client = &memoryClient{limiter: rate.NewLimiter(limiter.rps, limiter.burst)}
		limiter.clients[key] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow(), nil
}

// cleanup removes clients idle for longer than the TTL.
func (limiter *Memory) cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.evictIdle(time.Now())
		case <-ctx.Done():
			return
		}
	}
}

func (limiter *Memory) evictIdle(now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for key, client := range limiter.clients {
		if now.Sub(client.lastSeen) > limiter.ttl {
			delete(limiter.clients, key)
		}
	}
}

// # Redis Fixed Window

// Redis is a [Limiter] whose counters live in Redis, shared across instances.
type Redis struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRedis constructs a fixed window limiter enforcing rps per client.
//
// Each window admits rps*window requests, rounded up and at least one. The
// whole allowance may be spent at once, so the window plays the role the
// burst plays for [Memory].
func NewRedis(client *redis.Client, rps float64, window time.Duration) *Redis {
	limit := int64(math.Ceil(rps * window.Seconds()))
	if limit < 1 {
		limit = 1
	}
	return &Redis{client: client, limit: limit, window: window}
}

// Allow implements [Limiter].
func (limiter *Redis) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := time.Now().UnixNano() / int64(limiter.window)
	redisKey := fmt.Sprintf("%s%s:%d", constants.RedisPrefixRateLimit, key, windowStart)

	// Increment and set expiry in one round-trip
	pipe := limiter.client.TxPipeline()
	count := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, 2*limiter.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis_rate_limit_failed: %w", err)
	}

	return count.Val() <= limiter.limit, nil
}
