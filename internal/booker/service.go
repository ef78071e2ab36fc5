// Package booker is the service layer over the booking API. Scenarios talk
// to it instead of building raw requests; every operation hands back the
// raw response so callers assert on status and body directly.
package booker

import (
	"sync"

	"bitbucket.org/crgw/booker-regression/internal/tools/caching"
	"bitbucket.org/crgw/booker-regression/internal/tools/requesting"
	"github.com/rs/zerolog"
)

const (
	bookingEndpoint = "/booking"
	authEndpoint    = "/auth"
	pingEndpoint    = "/ping"
)

type Service struct {
	client *requesting.Client
	cache  *caching.Cacher
	logger *zerolog.Logger

	// token is written once per run on first authentication; the mutex
	// keeps the lazy init safe if scenarios ever run in parallel.
	tokenMutex sync.Mutex
	token      string
}

func NewService(logger *zerolog.Logger, client *requesting.Client, cache *caching.Cacher) *Service {
	if cache == nil {
		cache = caching.NewMemoryCache()
	}

	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Close releases the underlying connection pool.
func (s *Service) Close() {
	s.client.Close()
}
