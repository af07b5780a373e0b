package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/dmitrijs2005/investportal/internal/client/models"
	"github.com/dmitrijs2005/investportal/internal/common"
	"github.com/dmitrijs2005/investportal/internal/logging"
	"github.com/dmitrijs2005/investportal/internal/timex"
)

// LoginState is the position of the admin login screen.
type LoginState int

const (
	StateUnauthenticated LoginState = iota
	StateChecking
	StateAuthenticated
	StateRejected
)

func (s LoginState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("LoginState(%d)", int(s))
	}
}

// AuthOptions configures AuthService.
type AuthOptions struct {
	// FallbackEmail and FallbackPassword always authenticate and are never
	// written to the credential store. Empty FallbackEmail disables them.
	FallbackEmail    string
	FallbackPassword string

	// Latency is waited out in the checking state.
	Latency time.Duration

	// Country is recorded on the saved login of every successful attempt.
	Country string
}

// AuthService runs the admin login protocol. On submit it authenticates,
// in order, by the fallback pair, by the credential store, or by
// registering the very first admin of an empty store; anything else is
// rejected with common.ErrInvalidCredentials.
type AuthService struct {
	creds    *CredentialStore
	sessions *SessionService
	recents  *SavedLogins
	opts     AuthOptions
	log      logging.Logger

	mu    sync.Mutex
	state LoginState
}

func NewAuthService(creds *CredentialStore, sessions *SessionService, recents *SavedLogins, opts AuthOptions, log logging.Logger) *AuthService {
	return &AuthService{
		creds:    creds,
		sessions: sessions,
		recents:  recents,
		opts:     opts,
		log:      log.With("component", "auth"),
	}
}

// State returns the current protocol state.
func (a *AuthService) State() LoginState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *AuthService) setState(s LoginState) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

// Login submits one attempt. While an attempt is checking, further
// submits fail with common.ErrLoginInProgress instead of racing it.
func (a *AuthService) Login(ctx context.Context, email, password string) (models.SessionRecord, error) {
	a.mu.Lock()
	if a.state == StateChecking {
		a.mu.Unlock()
		return models.SessionRecord{}, common.ErrLoginInProgress
	}
	a.state = StateChecking
	a.mu.Unlock()

	if err := timex.Sleep(ctx, a.opts.Latency); err != nil {
		a.setState(StateRejected)
		return models.SessionRecord{}, err
	}

	email = strings.TrimSpace(email)
	how, err := a.authenticate(ctx, email, password)
	if err != nil {
		a.setState(StateRejected)
		a.log.Info(ctx, "login rejected", "email", email, "err", err)
		return models.SessionRecord{}, err
	}

	rec := models.SessionRecord{Email: email, Role: models.RoleAdmin}
	if err := a.sessions.Save(ctx, rec); err != nil {
		a.log.Warn(ctx, "session not persisted", "email", email, "err", err)
	}
	a.recents.Add(ctx, email, displayName(email), a.opts.Country)

	a.setState(StateAuthenticated)
	a.log.Info(ctx, "login accepted", "email", email, "via", how)
	return rec, nil
}

func (a *AuthService) authenticate(ctx context.Context, email, password string) (string, error) {
	if a.opts.FallbackEmail != "" && email == a.opts.FallbackEmail && password == a.opts.FallbackPassword {
		return "fallback", nil
	}

	if common.ValidateEmail(email) != nil || password == "" {
		return "", common.ErrInvalidCredentials
	}

	if a.creds.Verify(ctx, email, password) {
		return "credentials", nil
	}

	registered, err := a.creds.Bootstrap(ctx, email, password)
	if err != nil {
		return "", errors.Join(common.ErrRegistrationFailed, err)
	}
	if registered {
		return "bootstrap", nil
	}

	return "", common.ErrInvalidCredentials
}

// Logout ends the session and resets the protocol.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	a.setState(StateUnauthenticated)
	return nil
}

// displayName derives a readable name from the local part of an email:
// "jane.doe@x.com" becomes "Jane Doe".
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	if len(words) == 0 {
		return email
	}
	return strings.Join(words, " ")
}
