package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidAPIKey           = errors.New("api key is not valid")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenUserMismatch       = errors.New("token was issued for another user")

	ErrChannelNotFound      = errors.New("channel not found")
	ErrNotChannelMember     = errors.New("user is not a member of the channel")
	ErrEmptyMessage         = errors.New("message text is empty")
	ErrUnsupportedFilter    = errors.New("unsupported filter condition")
	ErrUnsupportedSortField = errors.New("unsupported sort field")

	ErrConnectionIDRequired = errors.New("connection_id is required to watch channels")
	ErrConnectionNotFound   = errors.New("connection not found")
	ErrForeignConnection    = errors.New("connection belongs to another user")
)
