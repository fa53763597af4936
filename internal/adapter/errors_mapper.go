package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-chat-client/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return mapStatus(resp.StatusCode(), errorBody(resp.Body()))
}

// mapAPIError maps an error payload delivered over the realtime connection.
func mapAPIError(apiErr *models.APIError) error {
	if apiErr == nil {
		return fmt.Errorf("%w: connection rejected", ErrUnauthorized)
	}
	if apiErr.StatusCode == 0 {
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
	}

	return mapStatus(apiErr.StatusCode, apiErr.Message)
}

func mapStatus(status int, body string) error {
	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(status)
		}
		return fmt.Errorf("http %d: %s", status, body)
	}
}

// errorBody prefers the message of an APIError payload over the raw body.
func errorBody(raw []byte) string {
	var apiErr models.APIError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}

	return strings.TrimSpace(string(raw))
}
