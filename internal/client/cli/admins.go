package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/investportal/internal/client/models"
	"github.com/dmitrijs2005/investportal/internal/common"
)

// requireAdmin gates the settings commands on the stored session.
func (a *App) requireAdmin(ctx context.Context) error {
	if _, err := a.sessions.RequireRole(ctx, models.RoleAdmin); err != nil {
		if errors.Is(err, common.ErrNoSession) {
			a.current = nil
			fmt.Fprintln(a.out, "Session expired, please log in again")
		} else {
			fmt.Fprintln(a.out, "Admin access required")
		}
		return err
	}
	return nil
}

func (a *App) Admins(ctx context.Context) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}

	emails, err := a.admins.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not read admin accounts:", err)
		return err
	}
	if len(emails) == 0 {
		fmt.Fprintln(a.out, "No registered admins")
		return nil
	}
	for i, e := range emails {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, e)
	}
	return nil
}

func (a *App) AddAdmin(ctx context.Context) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "New admin email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.admins.Add(ctx, email, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidEmail), errors.Is(err, common.ErrEmptyPassword),
			errors.Is(err, common.ErrAlreadyRegistered):
			fmt.Fprintln(a.out, err)
		default:
			fmt.Fprintln(a.out, "Could not add admin:", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Admin %s added\n", email)
	return nil
}

func (a *App) RemoveAdmin(ctx context.Context, args []string) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: rmadmin <email>")
		return common.ErrInvalidEmail
	}

	email := args[0]
	if err := a.admins.Remove(ctx, email); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fmt.Fprintln(a.out, "No admin with email", email)
		case errors.Is(err, common.ErrLastAdmin):
			fmt.Fprintln(a.out, err)
		default:
			fmt.Fprintln(a.out, "Could not remove admin:", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Admin %s removed\n", email)
	return nil
}
