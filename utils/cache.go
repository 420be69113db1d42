package utils

import (
	"context"
	"log"
	"time"

	"superlaw/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// ConfirmCacheClient holds pending email-confirmation tokens.
	ConfirmCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	ConfirmCacheClient = newRedisClient(config.AppConfig.RedisConfirmDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetConfirmCacheClient returns the Redis client for confirmation tokens.
func GetConfirmCacheClient() *redis.Client {
	if ConfirmCacheClient == nil {
		ConfirmCacheClient = newRedisClient(config.AppConfig.RedisConfirmDB)
	}
	return ConfirmCacheClient
}
