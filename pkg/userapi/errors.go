package userapi

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed indicates a transport-level failure before any
	// service response was decoded
	ErrRequestFailed = errors.New("userapi.request_failed")

	// ErrEmptyResponse indicates the service answered without a data payload
	ErrEmptyResponse = errors.New("userapi.empty_response")

	// ErrMissingToken indicates a login/register response carried no token
	ErrMissingToken = errors.New("userapi.missing_token")
)

// APIError is a service-reported failure (invalid credentials, unknown user,
// duplicate email). The Message is what the service wants shown to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("userapi: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("userapi: request rejected (status %d)", e.Status)
}

// AsAPIError extracts an APIError if err carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
