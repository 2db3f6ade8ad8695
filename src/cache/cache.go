package cache

import "time"

// ReportCache stores serialized report results keyed by request hash.
// Implementations must be safe for concurrent use.
type ReportCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// New selects a cache implementation by provider name. Anything other than
// "redis" gets the in-process cache.
func New(provider, redisAddr string, expiry time.Duration) ReportCache {
	if provider == "redis" {
		return NewRedisCache(redisAddr, expiry)
	}
	return NewMemoryCache(expiry, 2*expiry)
}
