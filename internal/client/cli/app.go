package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/investportal/internal/client/client"
	"github.com/dmitrijs2005/investportal/internal/client/config"
	"github.com/dmitrijs2005/investportal/internal/client/models"
	"github.com/dmitrijs2005/investportal/internal/client/services"
	"github.com/dmitrijs2005/investportal/internal/logging"
)

type authenticator interface {
	Login(ctx context.Context, email, password string) (models.SessionRecord, error)
	Logout(ctx context.Context) error
}

type sessionReader interface {
	Current(ctx context.Context) (models.SessionRecord, bool)
	RequireRole(ctx context.Context, role models.Role) (models.SessionRecord, error)
}

type adminManager interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, email, password string) error
	Remove(ctx context.Context, email string) error
}

type recentsList interface {
	List(ctx context.Context) []models.SavedLogin
	Find(ctx context.Context, email string) (models.SavedLogin, bool)
	Touch(ctx context.Context, email string)
	Remove(ctx context.Context, email string)
}

type languageStore interface {
	Language(ctx context.Context) string
	SetLanguage(ctx context.Context, code string) error
}

type resetRequester interface {
	Request(ctx context.Context, email string) error
}

type App struct {
	config   *config.Config
	repos    *client.Repositories
	auth     authenticator
	sessions sessionReader
	admins   adminManager
	recents  recentsList
	prefs    languageStore
	reset    resetRequester
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// current mirrors the stored session so the prompt needs no I/O.
	current *models.SessionRecord
	// prefill is the email picked with "use" for the next login.
	prefill string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.New(os.Stderr, c.LogLevel)

	repos, err := client.InitRepositories(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "err", err)
		return nil, err
	}

	creds := services.NewCredentialStore(repos.KV, log)
	sessions := services.NewSessionService(repos.KV, log)
	recents := services.NewSavedLogins(repos.KV, c.SavedLoginsLimit, log)
	auth := services.NewAuthService(creds, sessions, recents, services.AuthOptions{
		FallbackEmail:    c.FallbackAdminEmail,
		FallbackPassword: c.FallbackAdminPassword,
		Latency:          c.SimulatedLatency,
		Country:          c.DefaultCountry,
	}, log)

	return &App{
		config:   c,
		repos:    repos,
		auth:     auth,
		sessions: sessions,
		admins:   services.NewAdminService(creds, log),
		recents:  recents,
		prefs:    services.NewPreferences(repos.KV, log),
		reset:    services.NewPasswordReset(creds, c.SimulatedLatency, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores any stored session and blocks in the REPL until the user
// exits, then closes the database.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.repos == nil {
			return
		}
		if err := a.repos.Close(); err != nil {
			a.log.Warn(ctx, "closing database", "err", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) restoreSession(ctx context.Context) {
	if rec, ok := a.sessions.Current(ctx); ok {
		a.current = &rec
	}
}
