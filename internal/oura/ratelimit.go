package oura

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Oura rate limit: 5000 requests per 5-minute window

// RateLimiter manages Oura API rate limits
type RateLimiter struct {
	mu sync.Mutex

	limit    int
	usage    int
	resetsAt time.Time

	// Minimum interval between requests
	minInterval time.Duration
	lastRequest time.Time
}

// NewRateLimiter creates a new rate limiter with Oura's limits
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limit:       5000,
		resetsAt:    time.Now().Add(5 * time.Minute),
		minInterval: 100 * time.Millisecond,
	}
}

// Wait blocks until a request can be made without exceeding rate limits
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	// Reset window if expired
	if now.After(r.resetsAt) {
		r.usage = 0
		r.resetsAt = now.Add(5 * time.Minute)
	}

	// If the window is exhausted, sleep until it resets
	if r.usage >= r.limit {
		wait := time.Until(r.resetsAt)
		if err := sleepCtx(ctx, wait); err != nil {
			return err
		}
		r.usage = 0
		r.resetsAt = time.Now().Add(5 * time.Minute)
	}

	// Enforce minimum spacing between requests
	if since := now.Sub(r.lastRequest); since < r.minInterval {
		if err := sleepCtx(ctx, r.minInterval-since); err != nil {
			return err
		}
	}

	r.usage++
	r.lastRequest = time.Now()
	return nil
}

// UpdateFromHeaders adjusts usage from API response headers when present
func (r *RateLimiter) UpdateFromHeaders(h http.Header) {
	remaining := h.Get("X-Ratelimit-Remaining")
	if remaining == "" {
		return
	}
	n, err := strconv.Atoi(remaining)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if used := r.limit - n; used > r.usage {
		r.usage = used
	}
}

// Status returns the remaining requests in the current window
func (r *RateLimiter) Status() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit - r.usage
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
