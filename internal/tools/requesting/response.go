package requesting

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response is the outcome of one executed request: status, raw body,
// headers and the measured wall-clock duration.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
	Elapsed    time.Duration
}

// JSON binds the response body to dest.
func (r *Response) JSON(dest any) error {
	return json.Unmarshal(r.Body, dest)
}

// JSONMap decodes the body as a JSON object.
func (r *Response) JSONMap() (map[string]any, error) {
	var decoded map[string]any
	err := json.Unmarshal(r.Body, &decoded)

	return decoded, err
}

// JSONList decodes the body as a JSON array.
func (r *Response) JSONList() ([]any, error) {
	var decoded []any
	err := json.Unmarshal(r.Body, &decoded)

	return decoded, err
}

// Truncated returns at most limit bytes of the body, for log lines and
// assertion messages.
func (r *Response) Truncated(limit int) string {
	if len(r.Body) <= limit {
		return string(r.Body)
	}

	return string(r.Body[:limit])
}
