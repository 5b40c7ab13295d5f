package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrRateLimited is returned by Acquire when the current window is exhausted.
var ErrRateLimited = errors.New("rate limit reached")

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// MaxTransactionsPerMinute is the maximum number of transactions per fixed one-minute window
	MaxTransactionsPerMinute int
	// Namespace is the namespace for organizing rate limiters
	Namespace string
	// Now returns the current time; defaults to time.Now
	Now func() time.Time
}

// NewRateLimiterOptions creates a new rate limiter options with default values
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{
		MaxTransactionsPerMinute: 0,
		Namespace:                "",
		Now:                      time.Now,
	}
}

// WithMaxTransactionsPerMinute sets the maximum number of transactions per minute
func (rlo *RateLimiterOptions) WithMaxTransactionsPerMinute(max int) *RateLimiterOptions {
	if max < 0 {
		panic(fmt.Sprintf("invalid max transactions per minute: %d, must be non-negative", max))
	}
	rlo.MaxTransactionsPerMinute = max
	return rlo
}

// WithNamespace sets the namespace for organizing rate limiters
func (rlo *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	rlo.Namespace = namespace
	return rlo
}

// Validate validates the rate limiter options
func (rlo *RateLimiterOptions) Validate() error {
	if rlo.MaxTransactionsPerMinute <= 0 {
		return fmt.Errorf("MaxTransactionsPerMinute must be positive, got %d", rlo.MaxTransactionsPerMinute)
	}
	return nil
}

// RateLimiter is a distributed fixed-window limiter shared by every instance using the same key.
type RateLimiter struct {
	client *Client
	key    string
	opts   *RateLimiterOptions
}

// NewRateLimiter creates a new distributed rate limiter
func NewRateLimiter(client *Client, key string, opts *RateLimiterOptions) (*RateLimiter, error) {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &RateLimiter{
		client: client,
		key:    key,
		opts:   opts,
	}, nil
}

// windowKey builds Namespace::key::tpm::<minute> for the window containing now.
func (rl *RateLimiter) windowKey(now time.Time) string {
	suffix := "tpm::" + strconv.FormatInt(now.Unix()/60, 10)
	if rl.opts.Namespace != "" {
		return rl.opts.Namespace + "::" + rl.key + "::" + suffix
	}
	return rl.key + "::" + suffix
}

// Acquire takes one slot in the current window or returns ErrRateLimited without waiting.
func (rl *RateLimiter) Acquire(ctx context.Context) error {
	count, err := rl.client.IncrWithExpire(ctx, rl.windowKey(rl.opts.Now()), 2*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire rate limiter: %w", err)
	}
	if count > int64(rl.opts.MaxTransactionsPerMinute) {
		return fmt.Errorf("%w (%d TPM)", ErrRateLimited, rl.opts.MaxTransactionsPerMinute)
	}
	return nil
}

// RateLimiterMetrics represents the current metrics of the rate limiter as key-value pairs
type RateLimiterMetrics map[string]string

// GetMetrics returns the usage of the current window
func (rl *RateLimiter) GetMetrics(ctx context.Context) (RateLimiterMetrics, error) {
	data, err := rl.client.GetBytes(ctx, rl.windowKey(rl.opts.Now()))
	if err != nil {
		return nil, err
	}
	count := 0
	if data != nil {
		count, _ = strconv.Atoi(string(data))
	}

	utilization := float64(count) / float64(rl.opts.MaxTransactionsPerMinute) * 100
	return RateLimiterMetrics{
		"transactions_per_minute":     strconv.Itoa(count),
		"max_transactions_per_minute": strconv.Itoa(rl.opts.MaxTransactionsPerMinute),
		"tpm_utilization":             fmt.Sprintf("%.1f%%", utilization),
	}, nil
}
