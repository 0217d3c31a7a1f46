// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"doctorsportal/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Printf("WARNING: Failed to connect to Redis (Auth Cache): %v", err)
		AuthCacheClient = nil
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching, or
// nil when the cache is unavailable. Callers fall back to a database lookup.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
