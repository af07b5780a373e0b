package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/investportal/internal/client/services"
	"github.com/dmitrijs2005/investportal/internal/common"
)

// Language shows the preferred language, or sets it when a code is given.
func (a *App) Language(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Language: %s (available: %s)\n",
			a.prefs.Language(ctx), strings.Join(services.SupportedLanguages(), ", "))
		return nil
	}

	if err := a.prefs.SetLanguage(ctx, args[0]); err != nil {
		if errors.Is(err, common.ErrUnsupportedLanguage) {
			fmt.Fprintln(a.out, "Unsupported language:", args[0])
		} else {
			fmt.Fprintln(a.out, "Could not save language:", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Language set to %s\n", a.prefs.Language(ctx))
	return nil
}
