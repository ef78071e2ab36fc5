package booker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/crgw/booker-regression/internal/config"
	"bitbucket.org/crgw/booker-regression/internal/schema"
	"bitbucket.org/crgw/booker-regression/internal/tools/requesting"
)

const tokenCacheTTL = 30 * time.Minute

// Authenticate posts credentials to the auth endpoint and caches the token
// it gets back, both on the service and in the cross-run cache. Empty
// arguments fall back to the configured credentials.
func (s *Service) Authenticate(ctx context.Context, username string, password string) (string, *requesting.Response, error) {
	if username == "" {
		username = config.Username()
	}
	if password == "" {
		password = config.Password()
	}

	response, err := s.client.Post(ctx, authEndpoint, schema.AuthRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", nil, err
	}

	var auth schema.AuthResponse
	if err := response.JSON(&auth); err != nil {
		return "", response, err
	}

	s.tokenMutex.Lock()
	s.token = auth.Token
	s.tokenMutex.Unlock()

	if auth.Token != "" {
		s.logger.Info().
			Str("label", "auth").
			Msg("authentication successful")

		if err := s.cache.Store(ctx, s.tokenCacheKey(username), auth.Token, tokenCacheTTL); err != nil {
			s.logger.Warn().
				Str("label", "auth").
				Err(err).
				Msg("could not cache auth token")
		}
	}

	return auth.Token, response, nil
}

// AuthHeaders returns the cookie-style credential header the write
// endpoints require. Authenticates first when no token is held yet.
func (s *Service) AuthHeaders(ctx context.Context) (http.Header, error) {
	s.tokenMutex.Lock()
	token := s.token
	s.tokenMutex.Unlock()

	if token == "" {
		username := config.Username()

		var cached string
		if s.cache.Fetch(ctx, s.tokenCacheKey(username), &cached) && cached != "" {
			s.tokenMutex.Lock()
			s.token = cached
			s.tokenMutex.Unlock()

			token = cached
		}
	}

	if token == "" {
		fresh, _, err := s.Authenticate(ctx, "", "")
		if err != nil {
			return nil, err
		}

		token = fresh
	}

	return http.Header{
		"Cookie": []string{"token=" + token},
	}, nil
}

func (s *Service) tokenCacheKey(username string) string {
	return fmt.Sprintf("booker-auth-token:%s-%s", s.client.BaseURL(), username)
}
