package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/investportal/internal/client/models"
	"github.com/dmitrijs2005/investportal/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investportal/internal/common"
	"github.com/dmitrijs2005/investportal/internal/logging"
)

const DefaultLanguage = "en"

var supportedLanguages = []string{"en", "es", "fr", "de", "pt", "zh", "ar", "ru"}

// SupportedLanguages returns the language codes SetLanguage accepts.
func SupportedLanguages() []string {
	return slices.Clone(supportedLanguages)
}

// Preferences stores per-device UI preferences.
type Preferences struct {
	store kv.Store
	log   logging.Logger
}

func NewPreferences(store kv.Store, log logging.Logger) *Preferences {
	return &Preferences{store: store, log: log.With("component", "preferences")}
}

// Language returns the preferred language, DefaultLanguage when unset,
// unsupported or unreadable.
func (p *Preferences) Language(ctx context.Context) string {
	var code string
	found, err := kv.LoadJSON(ctx, p.store, models.KeyPreferredLanguage, &code)
	if err != nil {
		p.log.Warn(ctx, "preferred language unreadable", "err", err)
		return DefaultLanguage
	}
	if !found || !slices.Contains(supportedLanguages, code) {
		return DefaultLanguage
	}
	return code
}

// SetLanguage stores code, normalized to lower case.
func (p *Preferences) SetLanguage(ctx context.Context, code string) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if !slices.Contains(supportedLanguages, code) {
		return fmt.Errorf("%w: %q", common.ErrUnsupportedLanguage, code)
	}
	if err := kv.SaveJSON(ctx, p.store, models.KeyPreferredLanguage, code); err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	return nil
}
