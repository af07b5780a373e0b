package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/investportal/internal/common"
)

func TestApp_Login_PromptsForEmail(t *testing.T) {
	f := newAppFixture(t, "")
	stubInputs(t, []string{"owner@site.com"}, "pw")

	err := f.app.Login(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "owner@site.com", f.auth.gotEmail)
	assert.Equal(t, "pw", f.auth.gotPassword)
	require.True(t, f.app.isLoggedIn())
	assert.Equal(t, "owner@site.com", f.app.current.Email)
	assert.Contains(t, f.out.String(), "Logged in as owner@site.com")
}

func TestApp_Login_EmailFromArgsBeatsPrefill(t *testing.T) {
	f := newAppFixture(t, "")
	stubInputs(t, nil, "pw")
	f.app.prefill = "saved@site.com"

	require.NoError(t, f.app.Login(context.Background(), []string{"typed@site.com"}))
	assert.Equal(t, "typed@site.com", f.auth.gotEmail)
	assert.Empty(t, f.app.prefill)
}

func TestApp_Login_UsesPrefill(t *testing.T) {
	f := newAppFixture(t, "")
	stubInputs(t, nil, "pw")
	f.app.prefill = "saved@site.com"

	require.NoError(t, f.app.Login(context.Background(), nil))
	assert.Equal(t, "saved@site.com", f.auth.gotEmail)
	assert.Contains(t, f.out.String(), "Email: saved@site.com")
}

func TestApp_Login_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"invalid", common.ErrInvalidCredentials, "Invalid email or password"},
		{"registration", errors.Join(common.ErrRegistrationFailed, errors.New("disk full")), "Could not register"},
		{"in progress", common.ErrLoginInProgress, "already in progress"},
		{"other", context.Canceled, "Login failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppFixture(t, "")
			stubInputs(t, []string{"a@b.com"}, "pw")
			f.auth.err = tt.err

			err := f.app.Login(context.Background(), nil)
			require.ErrorIs(t, err, tt.err)
			assert.False(t, f.app.isLoggedIn())
			assert.Contains(t, f.out.String(), tt.msg)
		})
	}
}

func TestApp_Login_PromptError(t *testing.T) {
	f := newAppFixture(t, "")
	stubInputs(t, nil, "pw")

	err := f.app.Login(context.Background(), nil)
	require.ErrorIs(t, err, errNoMoreInput)
	assert.Empty(t, f.auth.gotEmail)
}

func TestApp_Logout(t *testing.T) {
	f := newAppFixture(t, "")
	f.loginAs("a@b.com")

	require.NoError(t, f.app.Logout(context.Background()))
	assert.False(t, f.app.isLoggedIn())
	assert.Equal(t, 1, f.auth.logouts)
	assert.Contains(t, f.out.String(), "Logged out")
}

func TestApp_Logout_Error(t *testing.T) {
	f := newAppFixture(t, "")
	f.loginAs("a@b.com")
	f.auth.logoutErr = errors.New("locked")

	require.Error(t, f.app.Logout(context.Background()))
	assert.True(t, f.app.isLoggedIn())
	assert.Contains(t, f.out.String(), "Logout failed")
}

func TestApp_WhoAmI(t *testing.T) {
	f := newAppFixture(t, "")
	require.ErrorIs(t, f.app.WhoAmI(context.Background()), common.ErrNoSession)

	f.loginAs("a@b.com")
	require.NoError(t, f.app.WhoAmI(context.Background()))
	assert.Contains(t, f.out.String(), "a@b.com (admin)")
}

func TestApp_Forgot(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		f := newAppFixture(t, "")
		stubInputs(t, []string{"a@b.com"}, "")

		require.NoError(t, f.app.Forgot(context.Background()))
		assert.Equal(t, "a@b.com", f.reset.got)
		assert.Contains(t, f.out.String(), "Reset instructions sent to a@b.com")
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newAppFixture(t, "")
		stubInputs(t, []string{"nope"}, "")
		f.reset.err = common.ErrInvalidEmail

		require.ErrorIs(t, f.app.Forgot(context.Background()), common.ErrInvalidEmail)
		assert.Contains(t, f.out.String(), "valid email")
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newAppFixture(t, "")
		stubInputs(t, []string{"x@y.com"}, "")
		f.reset.err = common.ErrorNotFound

		require.ErrorIs(t, f.app.Forgot(context.Background()), common.ErrorNotFound)
		assert.Contains(t, f.out.String(), "No account found for x@y.com")
	})
}
