package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

type authService struct {
	apiKey   string
	signKey  string
	tokenTTL time.Duration

	logger *logger.Logger
}

// NewAuthService returns an AuthService that accepts exactly apiKey and
// signs user tokens with signKey.
func NewAuthService(apiKey, signKey string, tokenTTL time.Duration, logger *logger.Logger) AuthService {
	return &authService{
		apiKey:   apiKey,
		signKey:  signKey,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (a *authService) CheckAPIKey(apiKey string) error {
	if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(a.apiKey)) != 1 {
		return ErrInvalidAPIKey
	}
	return nil
}

func (a *authService) CreateToken(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: empty user ID", ErrInvalidDataProvided)
	}

	token, err := utils.GenerateUserToken(userID, a.tokenTTL, a.signKey)
	if err != nil {
		a.logger.Err(err).Str("func", "authService.CreateToken").Str("user_id", userID).Msg("error generating token")
		return "", err
	}

	return token, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	userID, err := utils.ValidateUserToken(tokenString, a.signKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenIsExpired
		}
		return "", fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return userID, nil
}
