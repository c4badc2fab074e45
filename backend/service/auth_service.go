package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	"github.com/christianjamesnaguit/wcs-backend/backend/model"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "wcs-planner"

// JWTClaims is the bearer credential payload. UserID is the only identity
// the guard trusts; no database lookup happens at verification time.
type JWTClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed credential for the user, valid for
// common.TokenValidity (7 days) from now.
func GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(common.TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(common.JWTSecret))
}

// ValidateToken verifies signature and expiry and returns the decoded
// claims. Any failure (malformed, bad signature, expired, wrong algorithm)
// is an error; callers answer 401.
func ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(common.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
