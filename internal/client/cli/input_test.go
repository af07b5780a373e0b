package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  hello  \nrest\n")), "Email", &out)

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "Email\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("last")), "p", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "last", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "p", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func stubTerminal(t *testing.T, term bool, pw []byte, err error) {
	t.Helper()
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
	isTerminal = func(int) bool { return term }
	readPassword = func(int) ([]byte, error) { return pw, err }
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret"), nil)
	var out bytes.Buffer

	pw, err := GetPassword(bufio.NewReader(strings.NewReader("ignored\n")), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	boom := errors.New("tty gone")
	stubTerminal(t, true, nil, boom)

	_, err := GetPassword(bufio.NewReader(strings.NewReader("")), io.Discard)
	require.ErrorIs(t, err, boom)
}

func TestGetPassword_Piped(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	pw, err := GetPassword(bufio.NewReader(strings.NewReader("piped\n")), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []byte("piped"), pw)
}
