package cli

import (
	"context"
	"errors"
	"net/mail"
	"os"
)

var (
	errFieldsRequired = errors.New("email, username and password are required")
	errInvalidEmail   = errors.New("enter a valid email address")
)

// validateRegistration rejects the form before any network call is made.
func validateRegistration(email, username string, password []byte) error {
	if email == "" || username == "" || len(password) == 0 {
		return errFieldsRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errInvalidEmail
	}
	return nil
}

// Register runs the account-creation form. Malformed input never reaches the
// network. On success the user is sent to the login page; on a server error
// they stay here with a generic message.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	userName, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := validateRegistration(email, userName, password); err != nil {
		printlnFn(err.Error())
		return nil
	}

	if err := a.auth.Register(ctx, email, userName, password); err != nil {
		a.log.Error(ctx, "registration failed", "err", err)
		printlnFn("Registration failed")
		return nil
	}

	printlnFn("Account created! You can sign in now.")
	a.route = routeLogin
	return nil
}
