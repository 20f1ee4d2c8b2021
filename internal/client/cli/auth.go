package cli

import (
	"context"
	"os"
	"time"

	"github.com/dmitrijs2005/microbank-cli/internal/client/guard"
	"github.com/dmitrijs2005/microbank-cli/internal/client/models"
	"github.com/dmitrijs2005/microbank-cli/internal/client/session"
	"github.com/dmitrijs2005/microbank-cli/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// guardView runs the access decision for the requested view. It reports
// whether the command may proceed, printing the redirect the decision calls
// for otherwise. Pass "" for views any authenticated user may enter.
func (a *App) guardView(requiredRole models.Role) bool {
	switch guard.Decide(a.auth.Session(), requiredRole) {
	case guard.RedirectToLogin:
		printlnFn("Please login first.")
		return false
	case guard.RedirectToDefault:
		printlnFn("This command requires the " + string(requiredRole) + " role.")
		return false
	default:
		return true
	}
}

// Login prompts for credentials, validates them locally, and authenticates.
// Validation failures never reach the network.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	form := validation.LoginForm{Email: email, Password: password}
	if err := form.Validate(); err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		printlnFn(a.auth.State().Err)
		return err
	}

	if s := a.auth.Session(); s.Identity != nil {
		printlnFn("Welcome, " + s.Identity.Username + "!")
	}
	return nil
}

// Register prompts for the registration form and creates an account.
// Registration implicitly logs the user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	form := validation.RegisterForm{Name: name, Email: email, Password: password, ConfirmPassword: confirm}
	if err := form.Validate(); err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.auth.Register(ctx, name, email, password); err != nil {
		printlnFn(a.auth.State().Err)
		return err
	}

	printlnFn("Account created. You are now logged in.")
	return nil
}

// Logout clears the session locally; the backend is not called.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI refreshes the profile from the backend and prints it. Blacklisting
// does not end the session; it is only surfaced to the user here and by the
// transaction commands.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.guardView("") {
		return nil
	}

	if err := a.auth.GetProfile(ctx); err != nil {
		printlnFn(a.auth.State().Err)
		return err
	}

	s := a.auth.Session()
	if s.Identity == nil {
		return nil
	}
	printfFn("%s <%s> role=%s\n", s.Identity.Username, s.Identity.Email, s.Identity.Role)
	if s.Identity.IsBlacklisted {
		printlnFn("Note: your account is blacklisted. Transactions are disabled.")
	}
	return nil
}

// Status prints the authentication state and, when the access token is a
// JWT, its expiry. Works logged out as well.
func (a *App) Status(ctx context.Context) error {
	s := a.auth.Session()
	if !s.IsAuthenticated() {
		printlnFn("Not logged in.")
		return nil
	}

	if s.Identity != nil {
		printfFn("Logged in as %s (%s)\n", s.Identity.Username, s.Identity.Role)
	} else {
		printlnFn("Logged in.")
	}

	if exp, ok := session.TokenExpiresAt(s.AccessToken); ok {
		printfFn("Session expires at %s\n", exp.Format(time.RFC1123))
	}
	return nil
}
