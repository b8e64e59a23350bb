package common

import (
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"

	"skyfare/voyager/internal/logging"
)

// CacheService is the in-memory cache implementation, used when no Redis
// host is configured.
type CacheService struct {
	cache *cache.Cache
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds int) *CacheService {
	defaultExpiration := time.Duration(defaultExpirationSeconds) * time.Second
	cleanUpInterval := time.Duration(cleanUpIntervalSeconds) * time.Second
	return &CacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

// SetJSON stores the marshaled form so behaviour matches the Redis cache.
func (cs *CacheService) SetJSON(key string, value any, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("cache: failed to marshal value", "key", key, "error", err.Error())
		return
	}
	cs.cache.Set(key, data, duration)
}

func (cs *CacheService) GetJSON(key string, out any) bool {
	val, found := cs.cache.Get(key)
	if !found {
		return false
	}
	data, ok := val.([]byte)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logging.Warn("cache: failed to unmarshal value", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// Close closes the cache (no-op for in-memory cache)
func (cs *CacheService) Close() error {
	return nil
}
