package ratelimit

import (
	"testing"
	"time"
)

func TestMemoryWindowStoreFixedWindow(t *testing.T) {
	now := time.Now()
	store := NewMemoryWindowStore(0)
	store.now = func() time.Time { return now }

	maxRequests := 5
	window := time.Minute

	for i := 1; i <= maxRequests; i++ {
		result := store.Hit("client-a", maxRequests, window)
		if !result.Allowed {
			t.Fatalf("request %d should be allowed", i)
		}
		if result.Remaining != maxRequests-i {
			t.Errorf("request %d remaining = %d, want %d", i, result.Remaining, maxRequests-i)
		}
	}

	sixth := store.Hit("client-a", maxRequests, window)
	if sixth.Allowed {
		t.Fatal("6th request in the window should be rejected")
	}
	if sixth.Remaining != 0 {
		t.Errorf("rejected request remaining = %d, want 0", sixth.Remaining)
	}
	if !sixth.ResetTime.After(now) {
		t.Errorf("ResetTime = %v, want a time strictly after now", sixth.ResetTime)
	}

	// rejected requests never consume budget, so the window still rejects
	// at the same count instead of growing
	seventh := store.Hit("client-a", maxRequests, window)
	if seventh.Allowed {
		t.Fatal("7th request in the window should still be rejected")
	}
}

func TestMemoryWindowStoreResetsAfterWindow(t *testing.T) {
	now := time.Now()
	store := NewMemoryWindowStore(0)
	store.now = func() time.Time { return now }

	maxRequests := 5
	window := time.Minute

	for i := 0; i < maxRequests+1; i++ {
		store.Hit("client-a", maxRequests, window)
	}

	now = now.Add(window + time.Second)
	result := store.Hit("client-a", maxRequests, window)
	if !result.Allowed {
		t.Fatal("first request of a fresh window should be allowed")
	}
	if result.Remaining != maxRequests-1 {
		t.Errorf("fresh window remaining = %d, want %d", result.Remaining, maxRequests-1)
	}
}

func TestMemoryWindowStoreKeysAreIndependent(t *testing.T) {
	now := time.Now()
	store := NewMemoryWindowStore(0)
	store.now = func() time.Time { return now }

	maxRequests := 5
	window := time.Minute

	for i := 0; i < maxRequests; i++ {
		store.Hit("client-a", maxRequests, window)
	}
	if store.Hit("client-a", maxRequests, window).Allowed {
		t.Fatal("client-a should be over its limit")
	}
	if !store.Hit("client-b", maxRequests, window).Allowed {
		t.Fatal("client-b should have its own fresh window")
	}
}
