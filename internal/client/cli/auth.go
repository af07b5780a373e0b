package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/investportal/internal/common"
)

// Seams for prompting, replaced in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the credentials and runs one attempt. The email comes
// from args, the last "use" pick, or a prompt, in that order.
func (a *App) Login(ctx context.Context, args []string) error {
	email := a.prefill
	if len(args) > 0 {
		email = args[0]
	}
	if email == "" {
		var err error
		email, err = getSimpleText(a.reader, "Email", a.out)
		if err != nil {
			return err
		}
	} else {
		fmt.Fprintf(a.out, "Email: %s\n", email)
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fmt.Fprintln(a.out, "Checking...")
	rec, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Fprintln(a.out, "Invalid email or password")
		case errors.Is(err, common.ErrRegistrationFailed):
			fmt.Fprintln(a.out, "Could not register the first admin account")
		case errors.Is(err, common.ErrLoginInProgress):
			fmt.Fprintln(a.out, "A login is already in progress")
		default:
			fmt.Fprintln(a.out, "Login failed:", err)
		}
		return err
	}

	a.prefill = ""
	a.current = &rec
	fmt.Fprintf(a.out, "Logged in as %s\n", rec.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	a.current = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	rec, ok := a.sessions.Current(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return common.ErrNoSession
	}
	fmt.Fprintf(a.out, "%s (%s)\n", rec.Email, rec.Role)
	return nil
}

// Forgot asks for an email and requests a password reset for it.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email for password reset", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Sending...")
	if err := a.reset.Request(ctx, email); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidEmail):
			fmt.Fprintln(a.out, "Please enter a valid email address")
		case errors.Is(err, common.ErrorNotFound):
			fmt.Fprintln(a.out, "No account found for", email)
		default:
			fmt.Fprintln(a.out, "Reset failed:", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Reset instructions sent to %s\n", email)
	return nil
}
