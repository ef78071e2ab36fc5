package checks

import (
	"encoding/json"
	"testing"

	"bitbucket.org/crgw/booker-regression/internal/contract"
	"bitbucket.org/crgw/booker-regression/internal/tools/requesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Schema asserts the JSON response body matches the named component schema
// of the embedded API contract.
func Schema(t testing.TB, response *requesting.Response, name string) {
	t.Helper()

	doc, err := contract.Load()
	require.NoErrorf(t, err, "openapi document does not load")

	ref, ok := doc.Components.Schemas[name]
	require.Truef(t, ok, "schema %q not defined in the openapi document", name)

	var decoded any
	err = json.Unmarshal(response.Body, &decoded)
	require.NoErrorf(t, err, "response is not valid JSON: %s", response.Truncated(truncateAt))

	err = ref.Value.VisitJSON(decoded)
	assert.NoErrorf(t, err, "response does not match schema %q: %v. Response: %s",
		name, err, response.Truncated(truncateAt))
}
