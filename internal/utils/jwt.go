package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAPIKey is returned by ParseAPIKey for keys that are malformed,
// expired, or signed by somebody else.
var ErrInvalidAPIKey = errors.New("invalid api key")

// GenerateAPIKey issues an HS256-signed API key whose subject is userID.
func GenerateAPIKey(issuer string, userID int64, ttl time.Duration, signKey string) (string, error) {
	if issuer == "" || ttl == 0 || signKey == "" || userID <= 0 {
		return "", errors.New("invalid params for generating api key")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing api key: %w", err)
	}
	return key, nil
}

// ParseAPIKey validates key and returns the user it was issued to.
func ParseAPIKey(key, signKey, issuer string) (int64, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(key, &claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: subject %q", ErrInvalidAPIKey, claims.Subject)
	}
	return userID, nil
}
