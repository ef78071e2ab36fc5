// Package checks holds the reusable response assertions the regression
// scenarios are built from. Every helper reports through the passed
// testing.TB with a message carrying expected vs actual and, where it
// helps, a truncated response body.
package checks

import (
	"testing"
	"time"

	"bitbucket.org/crgw/booker-regression/internal/tools/requesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const DefaultMaxResponseTime = 5 * time.Second

const truncateAt = 300

// Status asserts the response status code.
func Status(t testing.TB, response *requesting.Response, expected int) {
	t.Helper()

	assert.Equalf(t, expected, response.StatusCode,
		"expected status %d, got %d. Response: %s",
		expected, response.StatusCode, response.Truncated(truncateAt))
}

// JSONKey asserts the key exists in the JSON object body.
func JSONKey(t testing.TB, response *requesting.Response, key string) {
	t.Helper()

	data, err := response.JSONMap()
	require.NoErrorf(t, err, "response is not a JSON object: %s", response.Truncated(truncateAt))

	assert.Containsf(t, data, key, "key %q not found in response: %v", key, data)
}

// JSONValue asserts the key exists and holds the expected value.
func JSONValue(t testing.TB, response *requesting.Response, key string, expected any) {
	t.Helper()

	data, err := response.JSONMap()
	require.NoErrorf(t, err, "response is not a JSON object: %s", response.Truncated(truncateAt))

	require.Containsf(t, data, key, "key %q not found in response: %v", key, data)
	assert.EqualValuesf(t, expected, data[key], "expected %q = %v, got %v", key, expected, data[key])
}

// BookingFields asserts the booking-shaped map carries the expected field
// values. The nested bookingdates object is compared date by date.
func BookingFields(t testing.TB, bookingData map[string]any, expected map[string]any) {
	t.Helper()

	for key, value := range expected {
		if key == "bookingdates" {
			dates, ok := bookingData["bookingdates"].(map[string]any)
			require.Truef(t, ok, "expected bookingdates object, got %v", bookingData["bookingdates"])

			expectedDates, ok := value.(map[string]any)
			require.Truef(t, ok, "expected values for bookingdates must be a map, got %v", value)

			for dateKey, dateValue := range expectedDates {
				assert.EqualValuesf(t, dateValue, dates[dateKey],
					"expected bookingdates.%s = %v, got %v", dateKey, dateValue, dates[dateKey])
			}

			continue
		}

		assert.EqualValuesf(t, value, bookingData[key],
			"expected %q = %v, got %v", key, value, bookingData[key])
	}
}

// ResponseTime asserts the response arrived under max; zero max means the
// 5 second default.
func ResponseTime(t testing.TB, response *requesting.Response, max time.Duration) {
	t.Helper()

	if max <= 0 {
		max = DefaultMaxResponseTime
	}

	assert.Lessf(t, response.Elapsed, max,
		"response took %.2fs, exceeding %.2fs threshold",
		response.Elapsed.Seconds(), max.Seconds())
}

// NonEmptyList asserts the body is a JSON list with at least one element.
func NonEmptyList(t testing.TB, response *requesting.Response) {
	t.Helper()

	data, err := response.JSONList()
	require.NoErrorf(t, err, "expected a list, got: %s", response.Truncated(truncateAt))

	assert.NotEmptyf(t, data, "expected non-empty list, got empty")
}

// ContentType asserts the Content-Type header contains the expected
// substring; empty expected means application/json.
func ContentType(t testing.TB, response *requesting.Response, expected string) {
	t.Helper()

	if expected == "" {
		expected = "application/json"
	}

	contentType := response.Header.Get("Content-Type")
	assert.Containsf(t, contentType, expected,
		"expected Content-Type %q, got %q", expected, contentType)
}
