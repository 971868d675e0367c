package screenshotone

import (
	"errors"
	"fmt"
)

// Common errors returned by the ScreenshotOne client.
var (
	// ErrMissingAccessKey indicates the client was constructed without an access key.
	ErrMissingAccessKey = errors.New("screenshotone: access key is required")
	// ErrMissingSecretKey indicates signing was attempted without a secret key.
	ErrMissingSecretKey = errors.New("screenshotone: secret key is required")
)

// APIError represents a structured error response from the ScreenshotOne API.
type APIError struct {
	StatusCode       int    `json:"-"`
	ErrorCode        string `json:"error_code"`
	Message          string `json:"error_message"`
	DocumentationURL string `json:"documentation_url"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("screenshotone API error: status %d, code %q: %s", e.StatusCode, e.ErrorCode, e.Message)
}

// IsBadRequest checks if the error indicates a rejected request, for
// example an unknown option value or an unresolvable target host.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == 400
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsThrottled checks if the error indicates rate limiting
func (e *APIError) IsThrottled() bool {
	return e.StatusCode == 429
}
