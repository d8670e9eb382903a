package cli

import (
	"context"
	"os"

	"studhub/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login runs the sign-in form. Both fields are free text; validation is the
// server's job. On success the issued token is stored and the dashboard
// opens. Invalid credentials, network failures, and server errors all
// collapse to the same message.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.auth.Login(ctx, userName, password); err != nil {
		a.log.Error(ctx, "login failed", "err", err)
		printlnFn("Login failed")
		return nil
	}

	a.authenticated = true
	return a.Open(ctx, routeDashboard)
}

// Logout drops the session and returns to the login page without prompting
// for new credentials.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.authenticated = false
	a.me = models.Me{}
	a.posts, a.files, a.users = nil, nil, nil
	a.route = routeLogin
	printlnFn("Logged out")
	return nil
}
