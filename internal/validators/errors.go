package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrUserDetailsMismatch  = errors.New("user details ID does not match user ID")
	ErrInvalidSortField     = errors.New("sort field is required")
	ErrInvalidSortDirection = errors.New("sort direction must be 1 or -1")
	ErrNegativeLimit        = errors.New("limit cannot be negative")
	ErrNegativeOffset       = errors.New("offset cannot be negative")
	ErrNegativeMessageLimit = errors.New("message limit cannot be negative")
	ErrConnectionIDRequired = errors.New("connection_id is required to watch or track presence")
	ErrEmptyMessageText     = errors.New("message text is required")
)
