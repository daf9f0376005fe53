// Package ratelimit provides a keyed token bucket limiter for inbound requests.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Defaults for evicting idle keys.
const (
	DefaultIdleTTL         = 10 * time.Minute
	DefaultCleanupInterval = time.Minute
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter gives each key (usually a client IP) its own limiter.
// Keys idle for longer than the idle TTL are evicted in the background.
type KeyedRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a keyed limiter allowing rps requests per second with the
// given burst. The cleanup loop runs every interval until Stop is called;
// an interval <= 0 disables it.
func New(rps float64, burst int, interval time.Duration) *KeyedRateLimiter {
	krl := &KeyedRateLimiter{
		entries: make(map[string]*entry),
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: DefaultIdleTTL,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	if interval > 0 {
		go krl.cleanupLoop(interval)
	}

	return krl
}

// PerMinute converts a requests-per-minute budget into a limiter.
func PerMinute(rpm, burst int) *KeyedRateLimiter {
	return New(float64(rpm)/60, burst, DefaultCleanupInterval)
}

// Allow reports whether a request for key may proceed now.
func (krl *KeyedRateLimiter) Allow(key string) bool {
	return krl.get(key).Allow()
}

// Delay returns how long the caller would have to wait for a token for key.
// Zero means a token is available. No token is consumed.
func (krl *KeyedRateLimiter) Delay(key string) time.Duration {
	lim := krl.get(key)
	missing := 1 - lim.TokensAt(time.Now())
	if missing <= 0 {
		return 0
	}
	if lim.Limit() <= 0 {
		return rate.InfDuration
	}
	return time.Duration(missing / float64(lim.Limit()) * float64(time.Second))
}

func (krl *KeyedRateLimiter) get(key string) *rate.Limiter {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	e, ok := krl.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(krl.limit, krl.burst)}
		krl.entries[key] = e
	}
	e.lastSeen = krl.now()
	return e.limiter
}

// Evict drops keys that have not been seen within the idle TTL and returns
// how many were removed.
func (krl *KeyedRateLimiter) Evict() int {
	cutoff := krl.now().Add(-krl.idleTTL)

	krl.mu.Lock()
	defer krl.mu.Unlock()

	removed := 0
	for key, e := range krl.entries {
		if e.lastSeen.Before(cutoff) {
			delete(krl.entries, key)
			removed++
		}
	}
	return removed
}

// Stop shuts down the cleanup goroutine.
func (krl *KeyedRateLimiter) Stop() {
	krl.stopOnce.Do(func() {
		close(krl.done)
	})
}

func (krl *KeyedRateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-krl.done:
			return
		case <-ticker.C:
			krl.Evict()
		}
	}
}
