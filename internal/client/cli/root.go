package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.current == nil {
		return "logged out"
	}
	return fmt.Sprintf("%s (%s)", a.current.Email, a.current.Role)
}

// Root greets the user, restores a stored session and runs the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Invest Portal admin console")
	fmt.Fprintf(a.out, "Language: %s\n", a.prefs.Language(ctx))

	a.restoreSession(ctx)
	if a.current != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.current.Email)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
