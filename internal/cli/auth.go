package cli

import (
	"context"
	"fmt"

	"github.com/mkravets/sparkle/internal/forms"
)

// Login prompts for credentials, validates them locally, and signs in.
// Validation failures never reach the network; backend failures are shown
// from the session's error state so the message matches what a banner
// would display.
func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("error: " + err.Error())
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		printlnFn("error: " + err.Error())
		return
	}

	creds, err := forms.Login(forms.LoginForm{Email: email, Password: password})
	if err != nil {
		printlnFn("error: " + err.Error())
		return
	}

	user, err := a.session.Login(ctx, creds)
	if err != nil {
		printlnFn("Sign-in failed: " + a.session.Snapshot().Err)
		return
	}
	printlnFn(fmt.Sprintf("Signed in as %s", user.Username))
}

// Register prompts for account details and creates an account. On success
// the user is signed in immediately (the backend returns a session token
// with the new account).
func (a *App) Register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("error: " + err.Error())
		return
	}
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		printlnFn("error: " + err.Error())
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		printlnFn("error: " + err.Error())
		return
	}

	payload, err := forms.Register(forms.RegisterForm{Email: email, Username: username, Password: password})
	if err != nil {
		printlnFn("error: " + err.Error())
		return
	}

	user, err := a.session.Register(ctx, payload)
	if err != nil {
		printlnFn("Registration failed: " + a.session.Snapshot().Err)
		return
	}
	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
}

// Logout signs out. The local session is always cleared, so this reports
// success even when the backend call failed.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	if msg := a.session.Snapshot().Err; msg != "" {
		printlnFn("Note: " + msg)
	}
	printlnFn("Signed out")
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) {
	s := a.session.Snapshot()
	if s.User == nil {
		printlnFn("Not signed in")
		return
	}
	printlnFn(fmt.Sprintf("%s <%s> (user id %d)", s.User.Username, s.User.Email, s.User.ID))
}
