package requesting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/booker-regression/internal/schema"
	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

// Client executes requests against one base URL over a single long-lived
// http.Client, so every call shares the same pooled connections. Default
// JSON headers apply to all requests; per-call headers are merged on top.
type Client struct {
	http           *http.Client
	baseURL        string
	defaultHeaders http.Header
	logger         *zerolog.Logger
}

func NewClient(logger *zerolog.Logger, optionFuncs ...OptionFunc) *Client {
	options := NewOptions(optionFuncs...)

	return &Client{
		http: &http.Client{
			Timeout: options.Timeout(),
			Transport: &InterceptorTransport{
				Transport: options.Transport(),
				Middlewares: []TransportMiddleware{
					NewLoggingTransportMiddleware(logger),
					NewCorrelationTransportMiddleware(),
				},
			},
		},
		baseURL:        options.BaseURL(),
		defaultHeaders: options.Headers(),
		logger:         logger,
	}
}

// Get sends a GET request. A non-nil queryParams struct is encoded with
// go-querystring, so empty omitempty fields never reach the query string.
func (c *Client) Get(ctx context.Context, path string, queryParams any, headers ...http.Header) (*Response, error) {
	url := c.baseURL + path

	if queryParams != nil {
		values, err := query.Values(queryParams)
		if err != nil {
			return nil, err
		}

		if encoded := values.Encode(); encoded != "" {
			url = fmt.Sprintf("%s?%s", url, encoded)
		}
	}

	return c.do(ctx, http.MethodGet, url, nil, headers)
}

func (c *Client) Post(ctx context.Context, path string, body any, headers ...http.Header) (*Response, error) {
	return c.send(ctx, http.MethodPost, path, body, headers)
}

func (c *Client) Put(ctx context.Context, path string, body any, headers ...http.Header) (*Response, error) {
	return c.send(ctx, http.MethodPut, path, body, headers)
}

func (c *Client) Patch(ctx context.Context, path string, body any, headers ...http.Header) (*Response, error) {
	return c.send(ctx, http.MethodPatch, path, body, headers)
}

func (c *Client) Delete(ctx context.Context, path string, headers ...http.Header) (*Response, error) {
	return c.do(ctx, http.MethodDelete, c.baseURL+path, nil, headers)
}

// Close releases the idle pooled connections. Safe to call once at the end
// of a run.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) send(ctx context.Context, method string, path string, body any, headers []http.Header) (*Response, error) {
	var payload []byte

	if body != nil {
		marshalled, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}

		payload = marshalled

		c.logger.Debug().
			Str("label", "request-body").
			Str("body", string(payload)).
			Msg("")
	}

	return c.do(ctx, method, c.baseURL+path, payload, headers)
}

func (c *Client) do(ctx context.Context, method string, url string, payload []byte, headers []http.Header) (*Response, error) {
	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewBuffer(payload)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for key, values := range c.defaultHeaders {
		httpRequest.Header[key] = values
	}

	for _, extra := range headers {
		for key, values := range extra {
			httpRequest.Header[key] = values
		}
	}

	startTime := time.Now()

	httpResponse, requestError := RequestErrors(c.http.Do(httpRequest))
	if requestError != nil {
		return nil, requestError
	}

	responseBytes, err := io.ReadAll(httpResponse.Body)
	httpResponse.Body.Close()
	if err != nil {
		return nil, schema.NewConnectionError(err.Error())
	}

	response := &Response{
		StatusCode: httpResponse.StatusCode,
		Body:       responseBytes,
		Header:     httpResponse.Header,
		Elapsed:    time.Since(startTime),
	}

	c.logger.Debug().
		Str("label", "response-body").
		Str("body", response.Truncated(500)).
		Msg("")

	return response, nil
}

// RequestErrors splits transport failures into the timeout/connection
// taxonomy. Non-2xx responses pass through untouched; scenarios assert on
// those themselves.
func RequestErrors(response *http.Response, err error) (*http.Response, *schema.RequestError) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, schema.NewTimeoutError(err.Error())
		}

		return nil, schema.NewConnectionError(err.Error())
	}

	return response, nil
}
