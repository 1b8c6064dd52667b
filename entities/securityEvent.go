package entities

import "time"

// SecurityEvent is emitted to the log sink, never persisted by this core.
type SecurityEvent struct {
	Kind      string    `json:"kind"`
	ClientKey string    `json:"clientKey"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}
