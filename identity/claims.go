package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const AccessTokenParseError = "error parsing access token claims"

// Claims is the subset of access token claims the CLI reports. Tokens
// are decoded without signature verification, validating them is the
// service's job.
type Claims struct {
	Subject string
	Expiry  time.Time
}

func ParseClaims(accessToken string) (Claims, error) {
	registered := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &registered); err != nil {
		return Claims{}, errors.Wrap(err, AccessTokenParseError)
	}

	claims := Claims{Subject: registered.Subject}
	if registered.ExpiresAt != nil {
		claims.Expiry = registered.ExpiresAt.Time
	}
	return claims, nil
}
