package adapter

import "errors"

// Connection state errors.
var (
	ErrTokenUserMismatch = errors.New("token was issued for another user")
	ErrAlreadyConnected  = errors.New("client already connected")
	ErrNotConnected      = errors.New("client not connected")
)

// Errors mapped from backend responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
)
