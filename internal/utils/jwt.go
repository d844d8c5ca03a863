package utils

import (
	"errors"
	"strconv"
	"time"

	"cardcheck/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("JWT secret not configured")
	ErrInvalidToken  = errors.New("invalid token claims")
)

// GenerateToken signs an HS256 access token for the given claims. Issuer and
// expiry are filled in from the arguments.
func GenerateToken(secret, issuer string, ttl time.Duration, claims *models.UserClaims) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	accessClaims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
		},
		UserID:      claims.UserID,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
}

// ParseToken parses and validates an HS256 token string, returning its
// claims. A non-empty issuer must match the token's iss claim.
func ParseToken(secret, issuer, tokenStr string) (*models.UserClaims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
