package common

import "time"

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// SetJSON stores a value serialized as JSON, so typed round-trips work
	// the same against Redis and the in-memory cache
	SetJSON(key string, value any, duration time.Duration)

	// GetJSON unmarshals a cached JSON value into out and reports whether
	// the key was found and decodable
	GetJSON(key string, out any) bool

	// Delete removes a value from cache by key
	Delete(key string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
