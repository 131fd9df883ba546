// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestMemory_Burst verifies that a client is denied once its burst is spent,
while other clients keep their own bucket.
*/
func TestMemory_Burst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	limiter := NewMemory(ctx, 0.001, 2)

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

/*
TestMemory_EvictIdle verifies idle clients are dropped after the TTL.
*/
func TestMemory_EvictIdle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	limiter := NewMemory(ctx, 1, 1)
	_, _ = limiter.Allow(ctx, "idle")
	_, _ = limiter.Allow(ctx, "active")

	limiter.mu.Lock()
	limiter.clients["idle"].lastSeen = time.Now().Add(-2 * limiter.ttl)
	limiter.mu.Unlock()

	limiter.evictIdle(time.Now())

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.clients, "idle")
	assert.Contains(t, limiter.clients, "active")
}

/*
TestNewRedis_WindowLimit verifies the Redis window admits the configured rate.
*/
func TestNewRedis_WindowLimit(t *testing.T) {
	tests := []struct {
		name   string
		rps    float64
		window time.Duration
		want   int64
	}{
		{"whole_rate", 100, time.Second, 100},
		{"fraction_rounds_up", 2.5, time.Second, 3},
		{"longer_window", 2.5, 2 * time.Second, 5},
		{"floor_of_one", 0.001, time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRedis(nil, tt.rps, tt.window).limit)
		})
	}
}
