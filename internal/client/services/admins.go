package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/investportal/internal/common"
	"github.com/dmitrijs2005/investportal/internal/logging"
)

// AdminService backs the admin settings screen.
type AdminService struct {
	creds *CredentialStore
	log   logging.Logger
}

func NewAdminService(creds *CredentialStore, log logging.Logger) *AdminService {
	return &AdminService{creds: creds, log: log.With("component", "admins")}
}

// List returns admin emails only.
func (a *AdminService) List(ctx context.Context) ([]string, error) {
	emails, err := a.creds.Emails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return emails, nil
}

// Add registers another admin. Duplicate emails fail with
// common.ErrAlreadyRegistered.
func (a *AdminService) Add(ctx context.Context, email, password string) error {
	if err := common.ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return common.ErrEmptyPassword
	}

	err := a.creds.RegisterUnique(ctx, email, password)
	switch {
	case err == nil:
		a.log.Info(ctx, "admin added", "email", email)
		return nil
	case errors.Is(err, common.ErrAlreadyRegistered):
		return err
	default:
		a.log.Warn(ctx, "admin not added", "email", email, "err", err)
		return errors.Join(common.ErrRegistrationFailed, err)
	}
}

// Remove deletes an admin. It fails with common.ErrorNotFound for an
// unknown email and common.ErrLastAdmin when no admin would remain.
func (a *AdminService) Remove(ctx context.Context, email string) error {
	err := a.creds.RemoveUnlessLast(ctx, email)
	switch {
	case err == nil:
		a.log.Info(ctx, "admin removed", "email", email)
		return nil
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrLastAdmin):
		return err
	default:
		return fmt.Errorf("remove admin: %w", err)
	}
}
