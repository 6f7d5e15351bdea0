package ratelimit

import "time"

// RateLimiter answers whether a keyed caller may proceed within a window.
type RateLimiter interface {
	Allow(key string, limit int, window time.Duration) (bool, error)
	Reset(key string) error
}
