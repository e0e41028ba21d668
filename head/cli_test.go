package head

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/carlmjohnson/versioninfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cli(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := appEnv{stdin: strings.NewReader(stdin), stdout: &out, stderr: &errOut}
	if err = app.ParseArgs(args); err == nil {
		err = app.Exec()
	}
	return out.String(), errOut.String(), err
}

func TestCLILines(t *testing.T) {
	a := writeFile(t, "a.txt", numbered(5))
	for _, flagName := range []string{"-n", "--lines"} {
		out, _, err := cli(t, "", flagName, "2", a)
		require.NoError(t, err)
		assert.Equal(t, "line a\nline b\n", out)
	}
}

func TestCLIBytes(t *testing.T) {
	out, _, err := cli(t, "hello world", "-c", "5")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestCLIStdinDash(t *testing.T) {
	out, _, err := cli(t, numbered(12), "-")
	require.NoError(t, err)
	assert.Equal(t, numbered(10), out)
}

func TestCLIInvalidCount(t *testing.T) {
	out, errOut, err := cli(t, "", "-n", "E33or")
	require.Error(t, err)
	assert.Equal(t, "E33or", err.Error())
	assert.Equal(t, "head: invalid number of lines: 'E33or'\n", errOut)
	assert.Empty(t, out)
}

func TestCLIConflict(t *testing.T) {
	_, errOut, err := cli(t, "input\n", "--lines", "1", "--bytes", "1")
	var herr *Error
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, UsageConflict, herr.Kind)
	assert.Equal(t, "head: options --lines and --bytes cannot be used together\n", errOut)
}

func TestCLIEnv(t *testing.T) {
	t.Setenv("HEADR_LINES", "1")

	out, _, err := cli(t, numbered(5))
	require.NoError(t, err)
	assert.Equal(t, "line a\n", out)

	out, _, err = cli(t, numbered(5), "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, numbered(3), out)

	// A byte count on the command line replaces the line count from the
	// environment instead of conflicting with it.
	out, errOut, err := cli(t, numbered(5), "-c", "3")
	require.NoError(t, err)
	assert.Equal(t, "lin", out)
	assert.Empty(t, errOut)
}

func TestCLIEnvConflict(t *testing.T) {
	t.Setenv("HEADR_LINES", "1")
	t.Setenv("HEADR_BYTES", "1")

	_, _, err := cli(t, numbered(5))
	var herr *Error
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, UsageConflict, herr.Kind)

	out, _, err := cli(t, numbered(5), "--lines", "2")
	require.NoError(t, err)
	assert.Equal(t, numbered(2), out)
}

func TestCLIEnvHeaders(t *testing.T) {
	t.Setenv("HEADR_QUIET", "true")
	a := writeFile(t, "a.txt", "a1\n")
	b := writeFile(t, "b.txt", "b1\n")

	out, _, err := cli(t, "", a, b)
	require.NoError(t, err)
	assert.Equal(t, "a1\nb1\n", out)

	out, _, err = cli(t, "", "-v", a)
	require.NoError(t, err)
	assert.Equal(t, "==> "+a+" <==\na1\n", out)
}

func TestCLIVersion(t *testing.T) {
	out, _, err := cli(t, "ignored\n", "--version")
	require.NoError(t, err)
	assert.Equal(t, "headr "+versioninfo.Version+"\n", out)
}

func TestCLIHelp(t *testing.T) {
	_, errOut, err := cli(t, "", "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, errOut, "Usage:")
	assert.Contains(t, errOut, "HEADR_LINES")
}
