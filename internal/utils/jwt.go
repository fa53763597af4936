package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateUserToken creates a signed HMAC-SHA256 user token carrying the
// user_id claim.
//
// The token includes the following claims:
//   - user_id: the chat user the token is issued for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl, omitted when ttl is zero
//
// Example usage:
//
//	token, err := utils.GenerateUserToken("rogelio", 24*time.Hour, "secret")
func GenerateUserToken(userID string, ttl time.Duration, signKey string) (string, error) {
	if userID == "" || signKey == "" || ttl < 0 {
		return "", errors.New("invalid params for generating user token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing user token: %w", err)
	}

	return tokenString, nil
}

// ValidateUserToken verifies the signature and expiry of tokenString and
// returns its user_id claim.
func ValidateUserToken(tokenString, signKey string) (string, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting user ID from token: %w", err)
	}

	return userID, nil
}

// ParseUserIDFromToken extracts the user_id claim without verifying the
// signature. Clients use it to catch a token issued for another user before
// dialing the backend.
func ParseUserIDFromToken(tokenString string) (string, error) {
	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}

	return claims.GetUserID()
}

// ParseBearerToken returns the token of a "<scheme> <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
