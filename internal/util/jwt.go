package util

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the token_type claim. Access tokens authenticate
// API calls; refresh tokens are only accepted by the refresh endpoint.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the JWT payload for both access and refresh tokens.
type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived access token for the user.
func GenerateAccessToken(secret, issuer string, userID uint, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return signToken(secret, issuer, userID, TokenTypeAccess, "", ttl)
}

// GenerateRefreshToken signs a long-lived refresh token and returns it with
// its jti, which the caller persists for server-side revocation checks.
func GenerateRefreshToken(secret, issuer string, userID uint, ttl time.Duration) (token string, jti string, err error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	jti = uuid.NewString()
	token, err = signToken(secret, issuer, userID, TokenTypeRefresh, jti, ttl)
	return token, jti, err
}

func signToken(secret, issuer string, userID uint, tokenType, jti string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken parses and verifies a JWT and checks its token_type claim.
func ParseToken(secret, tokenStr, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.TokenType != wantType {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
