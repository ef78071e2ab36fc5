package schema

type RequestErrorCode string

const (
	TimeoutError    RequestErrorCode = "TIMEOUT"
	ConnectionError RequestErrorCode = "CONNECTION"
)

// RequestError is a transport-level failure: the request never produced an
// HTTP response. Non-2xx statuses are ordinary responses, not errors; the
// suite exists to assert on them.
type RequestError struct {
	Code    RequestErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewTimeoutError(msg string) *RequestError {
	return &RequestError{
		Code:    TimeoutError,
		Message: msg,
	}
}

func NewConnectionError(msg string) *RequestError {
	return &RequestError{
		Code:    ConnectionError,
		Message: msg,
	}
}
