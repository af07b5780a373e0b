package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/investportal/internal/client/models"
	"github.com/dmitrijs2005/investportal/internal/common"
	"github.com/dmitrijs2005/investportal/internal/logging"
)

var errNoMoreInput = errors.New("no more input")

type fakeAuth struct {
	rec       models.SessionRecord
	err       error
	logoutErr error

	gotEmail, gotPassword string
	logouts               int
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (models.SessionRecord, error) {
	f.gotEmail, f.gotPassword = email, password
	if f.err != nil {
		return models.SessionRecord{}, f.err
	}
	if f.rec.Email == "" {
		return models.SessionRecord{Email: email, Role: models.RoleAdmin}, nil
	}
	return f.rec, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return f.logoutErr
}

type fakeSessions struct {
	rec     *models.SessionRecord
	roleErr error
}

func (f *fakeSessions) Current(context.Context) (models.SessionRecord, bool) {
	if f.rec == nil {
		return models.SessionRecord{}, false
	}
	return *f.rec, true
}

func (f *fakeSessions) RequireRole(context.Context, models.Role) (models.SessionRecord, error) {
	if f.roleErr != nil {
		return models.SessionRecord{}, f.roleErr
	}
	if f.rec == nil {
		return models.SessionRecord{}, common.ErrNoSession
	}
	return *f.rec, nil
}

type fakeAdmins struct {
	emails    []string
	listErr   error
	addErr    error
	removeErr error

	added   []string
	removed []string
}

func (f *fakeAdmins) List(context.Context) ([]string, error) { return f.emails, f.listErr }

func (f *fakeAdmins) Add(_ context.Context, email, password string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, email+":"+password)
	return nil
}

func (f *fakeAdmins) Remove(_ context.Context, email string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, email)
	return nil
}

type fakeRecents struct {
	list    []models.SavedLogin
	touched []string
	removed []string
}

func (f *fakeRecents) List(context.Context) []models.SavedLogin { return f.list }

func (f *fakeRecents) Find(_ context.Context, email string) (models.SavedLogin, bool) {
	for _, l := range f.list {
		if common.SameEmail(l.Email, email) {
			return l, true
		}
	}
	return models.SavedLogin{}, false
}

func (f *fakeRecents) Touch(_ context.Context, email string) { f.touched = append(f.touched, email) }

func (f *fakeRecents) Remove(_ context.Context, email string) { f.removed = append(f.removed, email) }

type fakePrefs struct {
	lang   string
	setErr error
}

func (f *fakePrefs) Language(context.Context) string {
	if f.lang == "" {
		return "en"
	}
	return f.lang
}

func (f *fakePrefs) SetLanguage(_ context.Context, code string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.lang = code
	return nil
}

type fakeReset struct {
	err error
	got string
}

func (f *fakeReset) Request(_ context.Context, email string) error {
	f.got = email
	return f.err
}

type appFixture struct {
	app      *App
	out      *bytes.Buffer
	auth     *fakeAuth
	sessions *fakeSessions
	admins   *fakeAdmins
	recents  *fakeRecents
	prefs    *fakePrefs
	reset    *fakeReset
}

func newAppFixture(t *testing.T, input string) *appFixture {
	t.Helper()
	f := &appFixture{
		out:      &bytes.Buffer{},
		auth:     &fakeAuth{},
		sessions: &fakeSessions{},
		admins:   &fakeAdmins{},
		recents:  &fakeRecents{},
		prefs:    &fakePrefs{},
		reset:    &fakeReset{},
	}
	f.app = &App{
		auth:     f.auth,
		sessions: f.sessions,
		admins:   f.admins,
		recents:  f.recents,
		prefs:    f.prefs,
		reset:    f.reset,
		log:      logging.Nop{},
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      f.out,
	}
	return f
}

func (f *appFixture) loginAs(email string) {
	rec := models.SessionRecord{Email: email, Role: models.RoleAdmin}
	f.sessions.rec = &rec
	f.app.current = &rec
}

// stubInputs replaces the prompt seams for the duration of the test.
func stubInputs(t *testing.T, texts []string, password string) {
	t.Helper()
	oldText, oldPw := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = oldText, oldPw })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", errNoMoreInput
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}
