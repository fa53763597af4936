package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey  = "test-api-key"
	testSignKey = "test-sign-key"
)

func newTestAuthService() AuthService {
	return NewAuthService(testAPIKey, testSignKey, time.Hour, logger.Nop())
}

// ── CheckAPIKey ──────────────────────────────────────────────────────────────

func TestAuthService_CheckAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		wantErr error
	}{
		{name: "valid key", apiKey: testAPIKey},
		{name: "wrong key", apiKey: "other", wantErr: ErrInvalidAPIKey},
		{name: "empty key", apiKey: "", wantErr: ErrInvalidAPIKey},
		{name: "prefix of key", apiKey: testAPIKey[:4], wantErr: ErrInvalidAPIKey},
	}

	svc := newTestAuthService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckAPIKey(tt.apiKey)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ParseToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
}

func TestAuthService_CreateToken_EmptyUser(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.CreateToken(context.Background(), "")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	other := NewAuthService(testAPIKey, "another-key", time.Hour, logger.Nop())
	token, err := other.CreateToken(context.Background(), "alice")
	require.NoError(t, err)

	_, err = newTestAuthService().ParseToken(context.Background(), token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	claims := &models.TokenClaims{
		UserID: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = newTestAuthService().ParseToken(context.Background(), token)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	_, err := newTestAuthService().ParseToken(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
