package redis

import (
	"fmt"
	"time"

	"context"
)

// RateLimiterOptions configures a fixed-window rate limiter.
type RateLimiterOptions struct {
	// MaxPerWindow is the maximum number of hits allowed per window
	MaxPerWindow int
	// Window is the length of the counting window
	Window time.Duration
	// Namespace is the namespace for organizing limiter keys
	Namespace string
}

// NewRateLimiterOptions creates rate limiter options with default values.
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{
		MaxPerWindow: 10,
		Window:       time.Minute,
		Namespace:    "",
	}
}

// WithMaxPerWindow sets the maximum number of hits allowed per window.
func (o *RateLimiterOptions) WithMaxPerWindow(max int) *RateLimiterOptions {
	o.MaxPerWindow = max
	return o
}

// WithWindow sets the counting window length.
func (o *RateLimiterOptions) WithWindow(window time.Duration) *RateLimiterOptions {
	o.Window = window
	return o
}

// WithNamespace sets the namespace for organizing limiter keys.
func (o *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	o.Namespace = namespace
	return o
}

// Validate checks the options for values the limiter cannot work with.
func (o *RateLimiterOptions) Validate() error {
	if o.MaxPerWindow < 1 {
		return fmt.Errorf("invalid max per window: %d, must be positive", o.MaxPerWindow)
	}
	if o.Window < time.Second {
		return fmt.Errorf("invalid window: %v, must be at least one second", o.Window)
	}
	return nil
}

// RateLimiter is a distributed fixed-window rate limiter. Counters live in
// Redis so every replica enforces the same budget.
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
}

// NewRateLimiter creates a distributed rate limiter.
func NewRateLimiter(client *Client, opts *RateLimiterOptions) (*RateLimiter, error) {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &RateLimiter{client: client, opts: opts}, nil
}

// buildKey constructs the counter key using namespace::key format
func (rl *RateLimiter) buildKey(key string) string {
	if rl.opts.Namespace != "" {
		return rl.opts.Namespace + "::" + key
	}
	return key
}

// Allow reports whether another hit for key fits within the window budget.
// The counter and its expiry are maintained atomically.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	script := `
		local current = redis.call("INCR", KEYS[1])
		if current == 1 then
			redis.call("EXPIRE", KEYS[1], ARGV[1])
		end
		if current > tonumber(ARGV[2]) then
			return 0
		end
		return 1
	`

	result, err := rl.client.Eval(ctx, script, []string{rl.buildKey(key)},
		int(rl.opts.Window.Seconds()), rl.opts.MaxPerWindow)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rate limit: %w", err)
	}

	return result.(int64) == 1, nil
}

// Remaining returns how many hits are left for key in the current window.
func (rl *RateLimiter) Remaining(ctx context.Context, key string) (int, error) {
	value, err := rl.client.Get(ctx, rl.buildKey(key))
	if err != nil {
		return 0, err
	}
	if value == "" {
		return rl.opts.MaxPerWindow, nil
	}

	var used int
	if _, err := fmt.Sscanf(value, "%d", &used); err != nil {
		return 0, err
	}
	remaining := rl.opts.MaxPerWindow - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
