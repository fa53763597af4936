package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/validators"
	"github.com/MKhiriev/go-chat-client/models"
)

// channelValidationService rejects malformed requests before they reach the
// wrapped ChannelService.
type channelValidationService struct {
	inner     ChannelService
	validator validators.Validator
}

func newChannelValidationService(inner ChannelService) ChannelService {
	return &channelValidationService{
		inner:     inner,
		validator: validators.NewRequestValidator(),
	}
}

func (v *channelValidationService) QueryChannels(ctx context.Context, userID string, req models.QueryChannelsRequest) ([]models.ChannelStateResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, validationError(err)
	}

	return v.inner.QueryChannels(ctx, userID, req)
}

func (v *channelValidationService) SendMessage(ctx context.Context, userID, channelType, channelID string, msg models.Message) (models.Message, error) {
	if err := v.validator.Validate(ctx, models.SendMessageRequest{Message: msg}); err != nil {
		return models.Message{}, validationError(err)
	}

	return v.inner.SendMessage(ctx, userID, channelType, channelID, msg)
}

// validationError maps a validator error onto the service error the
// transport layer knows how to report.
func validationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrConnectionIDRequired):
		return fmt.Errorf("%w: %w", ErrConnectionIDRequired, err)
	case errors.Is(err, validators.ErrEmptyMessageText):
		return fmt.Errorf("%w: %w", ErrEmptyMessage, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
