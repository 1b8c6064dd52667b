package ratelimit

import "time"

// Result is the outcome of one fixed-window check. ResetTime is echoed
// on rejection so clients can schedule a retry.
type Result struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	ResetTime time.Time `json:"resetTime"`
}

// WindowStore is a fixed-window counter keyed by client identifier.
// Implementations must make the check-then-increment on one key
// effectively atomic; rejected requests never consume budget.
type WindowStore interface {
	Hit(key string, maxRequests int, window time.Duration) Result
}
