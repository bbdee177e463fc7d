package strava

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Strava enforces 100 requests per 15 minutes and 1000 per day.

// RateLimiter tracks both Strava rate-limit windows and spaces requests
// out so a full sync never trips the API.
type RateLimiter struct {
	mu sync.Mutex

	short window // 15-minute window
	daily window

	minInterval time.Duration
	lastRequest time.Time
}

type window struct {
	limit    int
	usage    int
	resetsAt time.Time
	span     time.Duration
}

// NewRateLimiter creates a rate limiter preloaded with Strava's limits
func NewRateLimiter() *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		short:       window{limit: 100, resetsAt: now.Add(15 * time.Minute), span: 15 * time.Minute},
		daily:       window{limit: 1000, resetsAt: now.Truncate(24 * time.Hour).Add(24 * time.Hour), span: 24 * time.Hour},
		minInterval: 150 * time.Millisecond,
	}
}

// Wait blocks until a request can be made without exceeding rate limits
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.short.maybeReset(now)
	r.daily.maybeReset(now)

	if err := r.waitForWindow(ctx, &r.short); err != nil {
		return err
	}
	if err := r.waitForWindow(ctx, &r.daily); err != nil {
		return err
	}

	// Space requests out even when the windows have headroom
	if elapsed := time.Since(r.lastRequest); elapsed < r.minInterval {
		if err := r.sleep(ctx, r.minInterval-elapsed); err != nil {
			return err
		}
	}

	r.short.usage++
	r.daily.usage++
	r.lastRequest = time.Now()

	return nil
}

// waitForWindow sleeps until the window resets when its budget is spent.
// Called with the mutex held; releases it while sleeping.
func (r *RateLimiter) waitForWindow(ctx context.Context, w *window) error {
	if w.usage < w.limit {
		return nil
	}
	if err := r.sleep(ctx, time.Until(w.resetsAt)); err != nil {
		return err
	}
	w.usage = 0
	w.resetsAt = time.Now().Add(w.span)
	return nil
}

func (r *RateLimiter) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Unlock()
	defer r.mu.Lock()
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *window) maybeReset(now time.Time) {
	if now.After(w.resetsAt) {
		w.usage = 0
		w.resetsAt = now.Add(w.span)
	}
}

// UpdateFromHeaders syncs local usage with Strava's response headers:
// X-RateLimit-Limit: "100,1000", X-RateLimit-Usage: "34,512".
func (r *RateLimiter) UpdateFromHeaders(h http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if short, daily, ok := parsePair(h.Get("X-RateLimit-Usage")); ok {
		r.short.usage = short
		r.daily.usage = daily
	}
	if short, daily, ok := parsePair(h.Get("X-RateLimit-Limit")); ok {
		r.short.limit = short
		r.daily.limit = daily
	}
}

func parsePair(value string) (short, daily int, ok bool) {
	parts := strings.Split(value, ",")
	if len(parts) < 2 {
		return 0, 0, false
	}
	short, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	daily, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	return short, daily, err1 == nil && err2 == nil
}

// Status returns the remaining request budget in both windows
func (r *RateLimiter) Status() (shortRemaining, dailyRemaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.short.limit - r.short.usage, r.daily.limit - r.daily.usage
}
