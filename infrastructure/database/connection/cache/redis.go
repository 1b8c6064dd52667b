package cache

import (
	"context"
	"errors"
	"os"
	"sync"

	"facegate.io/infrastructure/logger"
	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	Client *redis.Client
}

var (
	instance *RedisClient
	once     sync.Once
)

func GetInstance() (*RedisClient, error) {
	once.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			return
		}
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
			PoolSize: 10,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("could not reach redis", logger.LoggerOptions{Key: "error", Data: err})
		}
		instance = &RedisClient{Client: client}
		logger.Info("connected to redis successfully")
	})
	if instance == nil {
		return nil, errors.New("redis is not configured")
	}
	return instance, nil
}
