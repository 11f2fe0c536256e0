package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey means no credential was available for the call.
	// The UI prompts for re-authentication instead of showing a generic
	// failure.
	ErrMissingAPIKey = errors.New("no Gemini API key configured")

	// ErrEmptyResponse means the call succeeded but carried no usable
	// payload
	ErrEmptyResponse = errors.New("the model returned no usable content")

	// ErrVideoTimeout means the video operation did not finish within the
	// polling budget
	ErrVideoTimeout = errors.New("video generation timed out waiting for the operation to finish")
)

// SafetyError signals a content-policy rejection. The message is meant to
// be shown to the user as-is.
type SafetyError struct {
	// Stage names the operation that was blocked ("image", "edit", ...)
	Stage string
}

func (e *SafetyError) Error() string {
	return fmt.Sprintf("the %s was blocked by safety filters. Please simplify the text", e.Stage)
}

// APIError is a non-200 response from the API
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (status %d)", e.StatusCode)
}
