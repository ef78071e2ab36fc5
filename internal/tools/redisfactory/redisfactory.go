package redisfactory

import (
	"time"

	"bitbucket.org/crgw/booker-regression/internal/config"
	"github.com/redis/go-redis/v9"
)

// AuthCacheClient builds the redis client backing the cross-run auth-token
// cache. Returns nil when AUTH_CACHE_REDIS_URI is unset; callers fall back
// to the in-memory cache.
func AuthCacheClient() *redis.Client {
	uri := config.AuthCacheRedisURI()
	if uri == "" {
		return nil
	}

	opt, err := redis.ParseURL(uri)
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return redis.NewClient(opt)
}
