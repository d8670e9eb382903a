package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// TokenSource yields the current session token. An empty string means no
// session; errors from the source leave the request unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// authTransport decorates every outgoing request with the bearer token from
// the token source and a fresh X-Request-Id. A request without a token goes
// out unauthenticated; whether that is an error is the server's call.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if t.tokens != nil {
		token, err := t.tokens.Token(req.Context())
		if err == nil && token != "" {
			clone.Header.Set("Authorization", "Bearer "+token)
		}
	}
	clone.Header.Set("X-Request-Id", uuid.NewString())

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
