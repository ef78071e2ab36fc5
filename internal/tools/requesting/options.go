package requesting

import (
	"net/http"
	"time"

	"bitbucket.org/crgw/booker-regression/internal/config"
)

type OptionFunc func(o *Options)

type Options struct {
	// BaseURL - full URL of the service under test (including protocol)
	baseURL string

	// Timeout - if not set, then the configured default is used
	timeout time.Duration

	// Transport - swappable for tests
	transport http.RoundTripper

	// Default headers applied to every request
	headers http.Header
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(o *Options) {
		o.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(o *Options) {
		o.timeout = timeout
	}
}

func WithTransport(transport http.RoundTripper) OptionFunc {
	return func(o *Options) {
		o.transport = transport
	}
}

func WithHeader(key string, value string) OptionFunc {
	return func(o *Options) {
		o.headers.Set(key, value)
	}
}

func NewOptions(optionFuncs ...OptionFunc) *Options {
	options := &Options{
		headers: http.Header{
			"Content-Type": []string{"application/json"},
			"Accept":       []string{"application/json"},
		},
	}

	for _, optionFunc := range optionFuncs {
		optionFunc(options)
	}

	return options
}

func (o *Options) BaseURL() string {
	if o.baseURL != "" {
		return o.baseURL
	}

	return config.BaseURL()
}

func (o *Options) Timeout() time.Duration {
	if o.timeout != 0 {
		return o.timeout
	}

	return config.Timeout()
}

func (o *Options) Transport() http.RoundTripper {
	if o.transport != nil {
		return o.transport
	}

	return http.DefaultTransport
}

func (o *Options) Headers() http.Header {
	return o.headers
}
