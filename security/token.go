package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/FrankCasanova/fastapi-blog/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every token verification failure: bad
// signature, wrong algorithm, malformed input, expiry, or a missing
// subject. Callers map it to 401 without distinguishing the cause.
var ErrInvalidToken = errors.New("invalid or expired token")

// CreateAccessToken signs a token whose subject is the user's email,
// expiring after the configured TTL.
func CreateAccessToken(subject string, settings *config.Settings) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(settings.AccessTokenTTL())),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.GetSigningMethod(settings.Algorithm), claims)
	signed, err := token.SignedString([]byte(settings.SecretKey))
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken verifies signature, algorithm and expiry, and
// returns the embedded subject.
func ParseAccessToken(tokenString string, settings *config.Settings) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != settings.Algorithm {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return []byte(settings.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
