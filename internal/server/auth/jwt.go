// Package auth issues and verifies the signed bearer tokens that carry the
// authenticated user identity. Tokens are self-contained HS256 JWTs, so
// verification needs no storage lookup and the server keeps no session state.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskdeck/internal/common"
)

// Claims carries the registered claim set (issued-at, expiry) plus the
// user identity the token asserts.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints an HS256-signed token for userID valid for ttl.
// The signature covers the whole claim payload.
func GenerateToken(userID string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString against secretKey and returns its claims.
// Returns common.ErrTokenExpired for a token past its expiry and
// common.ErrInvalidToken for anything else that fails validation: bad
// signature, malformed input, or a signing method other than HS256.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// GetUserIDFromToken is a convenience wrapper over ParseToken returning only
// the user identity.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims, err := ParseToken(tokenString, secretKey)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
