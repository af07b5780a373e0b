package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/investportal/internal/common"
)

func (a *App) Recent(ctx context.Context) error {
	list := a.recents.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No saved logins")
		return nil
	}
	for i, l := range list {
		fmt.Fprintf(a.out, "%d. %s <%s> %s, last used %s\n",
			i+1, l.Name, l.Email, l.Country, l.LastUsed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// Use picks a saved login to prefill the next login prompt.
func (a *App) Use(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: use <email>")
		return common.ErrInvalidEmail
	}

	l, ok := a.recents.Find(ctx, args[0])
	if !ok {
		fmt.Fprintln(a.out, "No saved login for", args[0])
		return common.ErrorNotFound
	}

	a.recents.Touch(ctx, l.Email)
	a.prefill = l.Email
	fmt.Fprintf(a.out, "Next login will use %s\n", l.Email)
	return nil
}

func (a *App) Forget(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: forget <email>")
		return common.ErrInvalidEmail
	}

	email := args[0]
	a.recents.Remove(ctx, email)
	if common.SameEmail(a.prefill, email) {
		a.prefill = ""
	}
	fmt.Fprintf(a.out, "Forgot %s\n", email)
	return nil
}
