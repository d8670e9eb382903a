package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the client can read out of its own access token.
type Identity struct {
	Subject   string
	ExpiresAt time.Time
}

// PeekIdentity decodes the JWT claims from token without verifying the
// signature. Display use only; the server stays the authority on whether
// the token is actually valid. A malformed or empty token yields a zero
// Identity.
func PeekIdentity(token string) Identity {
	if token == "" {
		return Identity{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}
	}

	var id Identity
	if sub, err := claims.GetSubject(); err == nil {
		id.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id
}
