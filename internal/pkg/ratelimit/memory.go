package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenBucket is an in-memory per-key limiter.
type TokenBucket struct {
	capacity int
	rate     int
	mu       sync.Mutex
	state    map[string]*bucket
	now      func() time.Time
}

type bucket struct {
	tokens int
	last   time.Time
}

// NewTokenBucket creates limiter with capacity tokens and rate per minute.
func NewTokenBucket(capacity, perMinute int) *TokenBucket {
	if capacity <= 0 {
		capacity = perMinute
	}
	return &TokenBucket{
		capacity: capacity,
		rate:     perMinute,
		state:    make(map[string]*bucket),
		now:      time.Now,
	}
}

func (l *TokenBucket) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.state[key]
	if !ok {
		l.state[key] = &bucket{tokens: l.capacity - 1, last: now}
		return true, nil
	}

	elapsed := now.Sub(b.last).Minutes()
	refill := int(elapsed * float64(l.rate))
	if refill > 0 {
		b.tokens += refill
		if b.tokens >= l.capacity {
			b.tokens = l.capacity
			b.last = now
		} else {
			// Keep the unspent fraction of a token for the next call.
			b.last = b.last.Add(time.Duration(refill) * time.Minute / time.Duration(l.rate))
		}
	}
	if b.tokens <= 0 {
		return false, nil
	}
	b.tokens--
	return true, nil
}

// Prune forgets buckets idle long enough to be full again.
func (l *TokenBucket) Prune(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rate <= 0 {
		return 0
	}
	idle := time.Duration(float64(time.Minute) * float64(l.capacity) / float64(l.rate))
	now := l.now()
	removed := 0
	for key, b := range l.state {
		if now.Sub(b.last) >= idle {
			delete(l.state, key)
			removed++
		}
	}
	return removed
}
