package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of a user token. The backend identifies the
// user by the custom user_id claim rather than by the subject.
type TokenClaims struct {
	// UserID is the user the token was issued for.
	UserID string `json:"user_id"`

	jwt.RegisteredClaims
}

// GetUserID returns the user_id claim or an error if it is empty.
func (c *TokenClaims) GetUserID() (string, error) {
	if c.UserID == "" {
		return "", errors.New("token has no user_id claim")
	}
	return c.UserID, nil
}
