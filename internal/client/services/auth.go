// Package services contains the application services sitting between the CLI
// and the remote API. This file defines authentication: login, logout,
// registration, profile lookup, and the liveness probe.
package services

import (
	"context"
	"fmt"

	"studhub/internal/client/api"
	"studhub/internal/client/models"
	"studhub/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the issued token.
//   - Logout: drop the persisted token.
//   - Register: create a new account on the server.
//   - Me: fetch the current user's profile.
//   - Authenticated: report whether a session token is stored.
//   - Identity: best-effort identity decoded from the stored token.
//   - Ping: check server liveness.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, email, username string, password []byte) error
	Me(ctx context.Context) (models.Me, error)
	Authenticated(ctx context.Context) bool
	Identity(ctx context.Context) session.Identity
	Ping(ctx context.Context) error
	Close() error
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

// Login exchanges credentials for an access token and persists it. Every
// request after a successful Login carries the token until Logout.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	token, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if err := a.store.Set(ctx, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// Logout removes the persisted token. The server is not notified; the token
// simply stops being attached to requests.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Register(ctx context.Context, email, username string, password []byte) error {
	return a.client.Register(ctx, email, username, string(password))
}

func (a *authService) Me(ctx context.Context) (models.Me, error) {
	return a.client.Me(ctx)
}

func (a *authService) Authenticated(ctx context.Context) bool {
	return a.store.Present(ctx)
}

func (a *authService) Identity(ctx context.Context) session.Identity {
	token, err := a.store.Token(ctx)
	if err != nil {
		return session.Identity{}
	}
	return session.PeekIdentity(token)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close() error {
	return a.client.Close()
}
