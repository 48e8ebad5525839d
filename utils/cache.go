// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"aspcare/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

var (
	// SessionClient stores login sessions.
	SessionClient *redis.Client
	// CheckoutClient stores in-progress checkout state.
	CheckoutClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitSessionCache initializes the Redis client for sessions.
func InitSessionCache() {
	SessionClient = newRedisClient(config.AppConfig.RedisSessionDB, "Session")
}

// GetSessionClient returns the session Redis client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}

// InitCheckoutCache initializes the Redis client for checkout state.
func InitCheckoutCache() {
	CheckoutClient = newRedisClient(config.AppConfig.RedisCheckoutDB, "Checkout")
}

// GetCheckoutClient returns the checkout Redis client.
func GetCheckoutClient() *redis.Client {
	if CheckoutClient == nil {
		InitCheckoutCache()
	}
	return CheckoutClient
}

// QueueRedisOpt is the asynq connection for the audit queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}
