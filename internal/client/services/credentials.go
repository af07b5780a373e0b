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

const (
	opIsRegistered = "is_registered"
	opRegister     = "register"
	opVerify       = "verify"
)

// credentialFailureOutcome is what each boolean operation answers when the
// stored collection cannot be read, decoded or written:
//
//	is_registered  false  fail-open: unreadable store reads as "not registered"
//	register       false  the write did not happen
//	verify         false  fail-closed: never authenticate on error
//
// The failure itself is logged at WARN and not returned.
var credentialFailureOutcome = map[string]bool{
	opIsRegistered: false,
	opRegister:     false,
	opVerify:       false,
}

// CredentialStore keeps the admin email/password collection under
// models.KeyAdminCredentials. Emails compare case-insensitively; insertion
// order is preserved. Every mutation rewrites the whole collection.
type CredentialStore struct {
	store kv.Store
	log   logging.Logger
}

func NewCredentialStore(store kv.Store, log logging.Logger) *CredentialStore {
	return &CredentialStore{store: store, log: log.With("component", "credentials")}
}

func (c *CredentialStore) fail(ctx context.Context, op string, err error) bool {
	c.log.Warn(ctx, "credential store failure", "op", op, "err", err)
	return credentialFailureOutcome[op]
}

func loadCredentials(ctx context.Context, s kv.Store) ([]models.Credential, error) {
	var creds []models.Credential
	if _, err := kv.LoadJSON(ctx, s, models.KeyAdminCredentials, &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

func saveCredentials(ctx context.Context, s kv.Store, creds []models.Credential) error {
	if creds == nil {
		creds = []models.Credential{}
	}
	return kv.SaveJSON(ctx, s, models.KeyAdminCredentials, creds)
}

func indexOfEmail(creds []models.Credential, email string) int {
	return slices.IndexFunc(creds, func(c models.Credential) bool {
		return common.SameEmail(c.Email, email)
	})
}

// IsRegistered reports whether any credential carries email.
func (c *CredentialStore) IsRegistered(ctx context.Context, email string) bool {
	creds, err := loadCredentials(ctx, c.store)
	if err != nil {
		return c.fail(ctx, opIsRegistered, err)
	}
	return indexOfEmail(creds, email) >= 0
}

// Register appends a credential. It does not check for duplicates; callers
// that care use IsRegistered or RegisterUnique.
func (c *CredentialStore) Register(ctx context.Context, email, password string) bool {
	err := kv.Update(ctx, c.store, func(ctx context.Context, s kv.Store) error {
		creds, err := loadCredentials(ctx, s)
		if err != nil {
			return err
		}
		creds = append(creds, models.Credential{Email: strings.TrimSpace(email), Password: password})
		return saveCredentials(ctx, s, creds)
	})
	if err != nil {
		return c.fail(ctx, opRegister, err)
	}
	return true
}

// Verify reports whether email (case-insensitively) and password (exactly)
// match a stored credential.
func (c *CredentialStore) Verify(ctx context.Context, email, password string) bool {
	creds, err := loadCredentials(ctx, c.store)
	if err != nil {
		return c.fail(ctx, opVerify, err)
	}
	for _, cr := range creds {
		if common.SameEmail(cr.Email, email) && cr.Password == password {
			return true
		}
	}
	return false
}

// Remove deletes every credential carrying email. It does not protect the
// last admin; see RemoveUnlessLast.
func (c *CredentialStore) Remove(ctx context.Context, email string) error {
	err := kv.Update(ctx, c.store, func(ctx context.Context, s kv.Store) error {
		creds, err := loadCredentials(ctx, s)
		if err != nil {
			return err
		}
		return saveCredentials(ctx, s, withoutEmail(creds, email))
	})
	if err != nil {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// RemoveUnlessLast removes email unless that would leave the collection
// empty. The check and the write happen in one transaction.
func (c *CredentialStore) RemoveUnlessLast(ctx context.Context, email string) error {
	return kv.Update(ctx, c.store, func(ctx context.Context, s kv.Store) error {
		creds, err := loadCredentials(ctx, s)
		if err != nil {
			return err
		}
		if indexOfEmail(creds, email) < 0 {
			return common.ErrorNotFound
		}
		remaining := withoutEmail(creds, email)
		if len(remaining) == 0 {
			return common.ErrLastAdmin
		}
		return saveCredentials(ctx, s, remaining)
	})
}

// RegisterUnique appends a credential unless email is already present,
// in which case it returns common.ErrAlreadyRegistered.
func (c *CredentialStore) RegisterUnique(ctx context.Context, email, password string) error {
	return kv.Update(ctx, c.store, func(ctx context.Context, s kv.Store) error {
		creds, err := loadCredentials(ctx, s)
		if err != nil {
			return err
		}
		if indexOfEmail(creds, email) >= 0 {
			return common.ErrAlreadyRegistered
		}
		creds = append(creds, models.Credential{Email: strings.TrimSpace(email), Password: password})
		return saveCredentials(ctx, s, creds)
	})
}

// Bootstrap registers email as the first admin when the collection is
// empty. It reports false with a nil error when the collection already has
// credentials. An unreadable collection is an error, not "empty": a corrupt
// blob must not be overwritten by whoever logs in next.
func (c *CredentialStore) Bootstrap(ctx context.Context, email, password string) (bool, error) {
	registered := false
	err := kv.Update(ctx, c.store, func(ctx context.Context, s kv.Store) error {
		creds, err := loadCredentials(ctx, s)
		if err != nil {
			return err
		}
		if len(creds) > 0 {
			return nil
		}
		creds = append(creds, models.Credential{Email: strings.TrimSpace(email), Password: password})
		if err := saveCredentials(ctx, s, creds); err != nil {
			return err
		}
		registered = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("bootstrap admin: %w", err)
	}
	return registered, nil
}

// Count returns the number of stored credentials.
func (c *CredentialStore) Count(ctx context.Context) (int, error) {
	creds, err := loadCredentials(ctx, c.store)
	if err != nil {
		return 0, err
	}
	return len(creds), nil
}

// Emails lists stored emails in insertion order. Passwords never leave
// the store.
func (c *CredentialStore) Emails(ctx context.Context) ([]string, error) {
	creds, err := loadCredentials(ctx, c.store)
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(creds))
	for _, cr := range creds {
		emails = append(emails, cr.Email)
	}
	return emails, nil
}

func withoutEmail(creds []models.Credential, email string) []models.Credential {
	return slices.DeleteFunc(creds, func(c models.Credential) bool {
		return common.SameEmail(c.Email, email)
	})
}
