package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/investportal/internal/common"
	"github.com/dmitrijs2005/investportal/internal/logging"
	"github.com/dmitrijs2005/investportal/internal/timex"
)

// PasswordReset backs the forgot-password screen. There is no mail
// backend; a request only checks that the account exists.
type PasswordReset struct {
	creds   *CredentialStore
	latency time.Duration
	log     logging.Logger
}

func NewPasswordReset(creds *CredentialStore, latency time.Duration, log logging.Logger) *PasswordReset {
	return &PasswordReset{creds: creds, latency: latency, log: log.With("component", "password_reset")}
}

// Request asks for a reset link for email. Unknown accounts fail with
// common.ErrorNotFound.
func (p *PasswordReset) Request(ctx context.Context, email string) error {
	if err := common.ValidateEmail(email); err != nil {
		return err
	}
	if err := timex.Sleep(ctx, p.latency); err != nil {
		return err
	}

	email = strings.TrimSpace(email)
	if !p.creds.IsRegistered(ctx, email) {
		return fmt.Errorf("no account found for %s: %w", email, common.ErrorNotFound)
	}

	p.log.Info(ctx, "password reset requested", "email", email)
	return nil
}
