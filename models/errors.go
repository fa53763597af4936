package models

import "fmt"

// APIError is the error payload returned by the chat backend, both in HTTP
// error bodies and in connection.error events.
type APIError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"StatusCode"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chat api error %d (status %d): %s", e.Code, e.StatusCode, e.Message)
}
