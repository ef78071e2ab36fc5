package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// Public restful-booker instance, overridable via API_BASE_URL.
	DefaultBaseURL = "https://restful-booker.herokuapp.com"

	// Public test credentials of the default instance.
	DefaultUsername = "admin"
	DefaultPassword = "password123"

	DefaultTimeout = 30 * time.Second
)

func BaseURL() string {
	if url := os.Getenv("API_BASE_URL"); url != "" {
		return url
	}

	return DefaultBaseURL
}

func Username() string {
	if username := os.Getenv("API_USERNAME"); username != "" {
		return username
	}

	return DefaultUsername
}

func Password() string {
	if password := os.Getenv("API_PASSWORD"); password != "" {
		return password
	}

	return DefaultPassword
}

func Timeout() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("API_TIMEOUT_MS"))
	if err != nil || ms <= 0 {
		return DefaultTimeout
	}

	return time.Duration(ms) * time.Millisecond
}

// AuthCacheRedisURI is empty when no redis-backed token cache is wanted.
func AuthCacheRedisURI() string {
	return os.Getenv("AUTH_CACHE_REDIS_URI")
}
