package ratelimit

import (
	"sync"
	"time"
)

type countWindow struct {
	count     int
	resetTime time.Time
}

// MemoryWindowStore keeps windows in process memory. Only safe for a
// single-instance deployment; use the Redis store behind a horizontal
// scale-out. Expired windows are swept periodically so the key space
// stays bounded.
type MemoryWindowStore struct {
	mutex   sync.Mutex
	windows map[string]*countWindow
	now     func() time.Time
}

func NewMemoryWindowStore(sweepInterval time.Duration) *MemoryWindowStore {
	store := &MemoryWindowStore{
		windows: map[string]*countWindow{},
		now:     time.Now,
	}
	if sweepInterval > 0 {
		go store.sweep(sweepInterval)
	}
	return store
}

func (store *MemoryWindowStore) Hit(key string, maxRequests int, window time.Duration) Result {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	now := store.now()
	current, exists := store.windows[key]
	if !exists || now.After(current.resetTime) {
		current = &countWindow{count: 1, resetTime: now.Add(window)}
		store.windows[key] = current
		return Result{Allowed: true, Remaining: maxRequests - 1, ResetTime: current.resetTime}
	}

	if current.count >= maxRequests {
		// rejected requests do not consume budget
		return Result{Allowed: false, Remaining: 0, ResetTime: current.resetTime}
	}

	current.count++
	return Result{Allowed: true, Remaining: maxRequests - current.count, ResetTime: current.resetTime}
}

func (store *MemoryWindowStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		store.mutex.Lock()
		now := store.now()
		for key, window := range store.windows {
			if now.After(window.resetTime) {
				delete(store.windows, key)
			}
		}
		store.mutex.Unlock()
	}
}
