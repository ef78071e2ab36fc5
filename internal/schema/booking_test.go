package schema_test

import (
	"encoding/json"
	"testing"

	"bitbucket.org/crgw/booker-regression/internal/schema"
	"bitbucket.org/crgw/booker-regression/internal/tools/converting"
	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingSerialization(t *testing.T) {
	t.Run("unset additionalneeds disappears from the payload", func(t *testing.T) {
		payload, err := json.Marshal(schema.Booking{
			Firstname: "John",
			Lastname:  "Doe",
		})

		require.NoError(t, err)
		assert.NotContains(t, string(payload), "additionalneeds")
	})

	t.Run("set additionalneeds serializes as a plain string", func(t *testing.T) {
		payload, err := json.Marshal(schema.Booking{
			Additionalneeds: converting.PointerToValue("Breakfast"),
		})

		require.NoError(t, err)
		assert.Contains(t, string(payload), `"additionalneeds":"Breakfast"`)
	})
}

func TestBookingPatchSerialization(t *testing.T) {
	t.Run("only non-nil fields serialize", func(t *testing.T) {
		payload, err := json.Marshal(schema.BookingPatch{
			Firstname:  converting.PointerToValue("Patched"),
			Totalprice: converting.PointerToValue(777),
		})

		require.NoError(t, err)
		assert.JSONEq(t, `{"firstname":"Patched","totalprice":777}`, string(payload))
	})

	t.Run("an empty patch serializes to an empty object", func(t *testing.T) {
		payload, err := json.Marshal(schema.BookingPatch{})

		require.NoError(t, err)
		assert.Equal(t, `{}`, string(payload))
	})
}

func TestBookingFiltersEncoding(t *testing.T) {
	t.Run("empty fields are dropped", func(t *testing.T) {
		values, err := query.Values(schema.BookingFilters{Firstname: "John"})

		require.NoError(t, err)
		assert.Equal(t, "firstname=John", values.Encode())
	})

	t.Run("no filters encode to an empty query string", func(t *testing.T) {
		values, err := query.Values(schema.BookingFilters{})

		require.NoError(t, err)
		assert.Empty(t, values.Encode())
	})

	t.Run("date filters use the wire parameter names", func(t *testing.T) {
		values, err := query.Values(schema.BookingFilters{
			Checkin:  "2025-01-01",
			Checkout: "2025-01-10",
		})

		require.NoError(t, err)
		assert.Equal(t, "checkin=2025-01-01&checkout=2025-01-10", values.Encode())
	})
}
