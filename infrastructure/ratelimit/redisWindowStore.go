package ratelimit

import (
	"context"
	"fmt"
	"time"

	redisClient "facegate.io/infrastructure/database/connection/cache"
	"facegate.io/infrastructure/logger"
)

// RedisWindowStore backs the fixed window with a shared Redis counter so
// multiple instances see the same budget. Redis being unreachable fails
// open, the coarse per-IP limiter still stands in front.
type RedisWindowStore struct{}

func (store *RedisWindowStore) Hit(key string, maxRequests int, window time.Duration) Result {
	client, err := redisClient.GetInstance()
	if err != nil {
		logger.Error("redis unavailable for rate limit check, failing open", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return Result{Allowed: true, Remaining: maxRequests - 1, ResetTime: time.Now().Add(window)}
	}

	ctx := context.Background()
	redisKey := fmt.Sprintf("enrollment_window:%s", key)

	count, err := client.Client.Incr(ctx, redisKey).Result()
	if err != nil {
		logger.Error("redis INCR failed for rate limit check, failing open", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return Result{Allowed: true, Remaining: maxRequests - 1, ResetTime: time.Now().Add(window)}
	}
	if count == 1 {
		client.Client.PExpire(ctx, redisKey, window)
	}

	ttl, err := client.Client.PTTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	resetTime := time.Now().Add(ttl)

	if count > int64(maxRequests) {
		// give the probe back so rejected requests never consume budget
		client.Client.Decr(ctx, redisKey)
		return Result{Allowed: false, Remaining: 0, ResetTime: resetTime}
	}
	return Result{Allowed: true, Remaining: maxRequests - int(count), ResetTime: resetTime}
}
