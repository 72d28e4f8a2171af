// Package auth implements the two credential primitives of the server:
// signed JWTs (access and refresh, with independent secrets) and bcrypt
// password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity claim set embedded in both access and refresh
// tokens: the registered claims plus the user's public profile fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"no_hp"`
}

// GenerateToken signs a HS256 token embedding the user's identity with the
// given secret and validity window. Access and refresh tokens differ only in
// the secret and duration passed here.
func GenerateToken(userID int64, name, email, phone string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Name:   name,
		Email:  email,
		Phone:  phone,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the embedded claims.
// Expired tokens yield common.ErrTokenExpired; any other verification
// failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
