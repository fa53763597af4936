// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header and no "authorization" query parameter.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header holds more
	// than a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the scheme is present but the token
	// value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrUnsupportedAuthType is returned for any auth type other than jwt.
	ErrUnsupportedAuthType = errors.New("unsupported `Stream-Auth-Type`")

	// ErrInvalidConnectPayload is returned when the "json" query parameter
	// of the connect endpoint is missing or malformed.
	ErrInvalidConnectPayload = errors.New("invalid connect payload")
)
