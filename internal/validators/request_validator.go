package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the user ID of a connect request.
	FieldUserID = "user_id"

	// FieldUserDetails targets the user descriptor of a connect request.
	FieldUserDetails = "user_details"

	// FieldSort targets every sort option of a channel query.
	FieldSort = "sort"

	// FieldLimit targets the channel page size.
	FieldLimit = "limit"

	// FieldOffset targets the channel page offset.
	FieldOffset = "offset"

	// FieldMessageLimit targets the per-channel message cap.
	FieldMessageLimit = "message_limit"

	// FieldConnectionID requires a connection ID when the query watches
	// channels or tracks presence.
	FieldConnectionID = "connection_id"

	// FieldMessageText targets the text of a sent message.
	FieldMessageText = "text"
)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConnectRequest:
		return v.validateConnectRequest(ctx, value, fields...)
	case *models.ConnectRequest:
		return v.validateConnectRequest(ctx, *value, fields...)

	case models.QueryChannelsRequest:
		return v.validateQueryChannelsRequest(ctx, value, fields...)
	case *models.QueryChannelsRequest:
		return v.validateQueryChannelsRequest(ctx, *value, fields...)

	case models.SendMessageRequest:
		return v.validateSendMessageRequest(ctx, value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessageRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateConnectRequest(_ context.Context, request models.ConnectRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldUserDetails}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(request.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldUserDetails:
			// an empty ID is filled in from user_id
			if request.UserDetails.ID != "" && request.UserDetails.ID != request.UserID {
				return ErrUserDetailsMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateQueryChannelsRequest(_ context.Context, request models.QueryChannelsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSort, FieldLimit, FieldOffset, FieldMessageLimit, FieldConnectionID}
	}

	for _, f := range fields {
		switch f {
		case FieldSort:
			for i, opt := range request.Sort {
				if strings.TrimSpace(opt.Field) == "" {
					return fmt.Errorf("sort option %d: %w", i, ErrInvalidSortField)
				}
				if opt.Direction != models.SortAscending && opt.Direction != models.SortDescending {
					return fmt.Errorf("sort option %d: %w", i, ErrInvalidSortDirection)
				}
			}
		case FieldLimit:
			if request.Limit < 0 {
				return ErrNegativeLimit
			}
		case FieldOffset:
			if request.Offset < 0 {
				return ErrNegativeOffset
			}
		case FieldMessageLimit:
			if request.MessageLimit < 0 {
				return ErrNegativeMessageLimit
			}
		case FieldConnectionID:
			if (request.Watch || request.Presence) && request.ConnectionID == "" {
				return ErrConnectionIDRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSendMessageRequest(_ context.Context, request models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessageText}
	}

	for _, f := range fields {
		switch f {
		case FieldMessageText:
			if strings.TrimSpace(request.Message.Text) == "" {
				return ErrEmptyMessageText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
