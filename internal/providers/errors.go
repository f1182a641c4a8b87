package providers

import (
	"errors"
	"fmt"
)

// APIError captures a non-success HTTP status or transport failure from an
// upstream collaborator. No retries happen anywhere, so it surfaces directly.
type APIError struct {
	Source     string
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: request failed: %v", e.Source, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Source, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Source, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
