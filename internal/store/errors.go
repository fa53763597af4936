package store

import "errors"

// Errors returned by [ChatSessionStore]. They wrap the underlying cause, so
// callers can match both the category and the transport error with
// [errors.Is].
var (
	// ErrConfigurationMissing is returned by [NewChatSessionStore] when the
	// API key, the token or the user ID is empty.
	ErrConfigurationMissing = errors.New("chat configuration missing")
	// ErrAuthenticationFailure is returned when the backend rejects the
	// connect handshake.
	ErrAuthenticationFailure = errors.New("chat authentication failed")
	// ErrQueryFailure is returned when the channel query is rejected.
	ErrQueryFailure = errors.New("chat channel query failed")
)
