package ratelimit

import (
	"os"
	"time"

	"facegate.io/infrastructure/logger"
)

var WindowStoreInstance WindowStore = NewMemoryWindowStore(0)

func InitialiseWindowStore() {
	if os.Getenv("REDIS_ADDR") != "" {
		WindowStoreInstance = &RedisWindowStore{}
		logger.Info("rate limit windows backed by redis")
		return
	}
	WindowStoreInstance = NewMemoryWindowStore(time.Minute * 5)
	logger.Info("rate limit windows backed by process memory")
}
