// Package session persists the client's access token between runs.
//
// The token is an opaque string issued by the backend; the store never
// validates, refreshes, or expires it. It lives in the local database until
// Clear is called or the database file is removed.
package session

import "context"

// tokenKey is the fixed storage key the access token lives under.
const tokenKey = "access_token"

// Store holds at most one session token.
type Store interface {
	// Token returns the stored token, or "" when no session exists.
	Token(ctx context.Context) (string, error)

	// Set replaces the stored token.
	Set(ctx context.Context, token string) error

	// Clear removes any stored token.
	Clear(ctx context.Context) error

	// Present reports whether a token is currently stored. Read failures
	// count as absent.
	Present(ctx context.Context) bool
}
