package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter bounds authentication attempts per client key (IP)
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter is a sliding-window limiter used when redis is not
// configured.
type MemoryLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	window   time.Duration
	maxReqs  int
}

// NewMemoryLimiter creates an in-process limiter
func NewMemoryLimiter(window time.Duration, maxReqs int) *MemoryLimiter {
	return &MemoryLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		maxReqs:  maxReqs,
	}
}

// Allow records an attempt for key and reports whether it is within
// the limit.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	if reqs, exists := l.requests[key]; exists {
		var valid []time.Time
		for _, t := range reqs {
			if now.Sub(t) < l.window {
				valid = append(valid, t)
			}
		}
		if len(valid) == 0 {
			// don't let fully expired keys accumulate
			delete(l.requests, key)
		} else {
			l.requests[key] = valid
		}
	}

	if len(l.requests[key]) >= l.maxReqs {
		return false, nil
	}

	l.requests[key] = append(l.requests[key], now)
	return true, nil
}

// attempt counter with a window-long expiry, set atomically
var redisAllowScript = redis.NewScript(`
	local n = redis.call('INCR', KEYS[1])
	if n == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return n
`)

// RedisLimiter counts attempts in redis so the limit holds across
// multiple server instances.
type RedisLimiter struct {
	client  *redis.Client
	window  time.Duration
	maxReqs int
}

// NewRedisLimiter creates a redis-backed limiter
func NewRedisLimiter(client *redis.Client, window time.Duration, maxReqs int) *RedisLimiter {
	return &RedisLimiter{client: client, window: window, maxReqs: maxReqs}
}

// Allow increments the attempt counter for key and reports whether it
// is within the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	result, err := redisAllowScript.Run(ctx, l.client,
		[]string{"auth:attempts:" + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return false, err
	}

	n, ok := result.(int64)
	if !ok {
		return false, nil
	}

	return n <= int64(l.maxReqs), nil
}
