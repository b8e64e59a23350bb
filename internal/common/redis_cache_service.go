package common

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"skyfare/voyager/internal/logging"
)

// RedisCacheService implements CacheInterface using Redis
type RedisCacheService struct {
	client *redis.Client
	ctx    context.Context
}

// Ensure RedisCacheService implements CacheInterface
var _ CacheInterface = (*RedisCacheService)(nil)

// NewRedisCacheService creates a new Redis-based cache service
func NewRedisCacheService() (*RedisCacheService, error) {
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}

	redisPort := os.Getenv("REDIS_PORT")
	if redisPort == "" {
		redisPort = "6379"
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", redisHost, redisPort),
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCacheService{
		client: client,
		ctx:    ctx,
	}, nil
}

// NewCacheFromEnv picks Redis when REDIS_HOST is set, otherwise the
// in-memory cache. Search result caching works the same against either.
func NewCacheFromEnv() CacheInterface {
	if os.Getenv("REDIS_HOST") == "" {
		return NewCacheService(600, 120)
	}
	redisCache, err := NewRedisCacheService()
	if err != nil {
		logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
		return NewCacheService(600, 120)
	}
	return redisCache
}

// Set stores a value in Redis with the given key and duration
func (r *RedisCacheService) Set(key string, value interface{}, duration time.Duration) {
	r.SetJSON(key, value, duration)
}

// Get retrieves a value from Redis by key
func (r *RedisCacheService) Get(key string) (interface{}, bool) {
	var result interface{}
	if !r.GetJSON(key, &result) {
		return nil, false
	}
	return result, true
}

// SetJSON serializes the value and stores it under key
func (r *RedisCacheService) SetJSON(key string, value any, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("redis cache: failed to marshal value", "key", key, "error", err.Error())
		return
	}
	if err := r.client.Set(r.ctx, key, data, duration).Err(); err != nil {
		logging.Warn("redis cache: failed to set key", "key", key, "error", err.Error())
	}
}

// GetJSON unmarshals the cached value for key into out
func (r *RedisCacheService) GetJSON(key string, out any) bool {
	data, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logging.Warn("redis cache: failed to get key", "key", key, "error", err.Error())
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		logging.Warn("redis cache: failed to unmarshal value", "key", key, "error", err.Error())
		return false
	}
	return true
}

// Delete removes a value from Redis by key
func (r *RedisCacheService) Delete(key string) {
	if err := r.client.Del(r.ctx, key).Err(); err != nil {
		logging.Warn("redis cache: failed to delete key", "key", key, "error", err.Error())
	}
}

// Close closes the Redis connection
func (r *RedisCacheService) Close() error {
	return r.client.Close()
}
