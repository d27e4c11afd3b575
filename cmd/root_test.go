package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/textclean/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_Clean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfhello\r\nworld\r"), 0o644))

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(got))

	assert.Contains(t, stdout, "Cleaning encoding issues in "+path)
	assert.Contains(t, stdout, "Removing BOM from "+path)
	assert.Contains(t, stdout, path+" cleaned (BOM removed, 1 CRLF, 1 CR)")
}

func TestRoot_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.js")

	stdout, _, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "File "+path+" not found")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRoot_DefaultPathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.js")
	require.NoError(t, os.WriteFile(path, []byte("a\rb"), 0o644))
	t.Setenv("TEXTCLEAN_PATH", path)

	_, _, err := execute(t)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", string(got))
}

func TestRoot_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "File "+core.DefaultPath+" not found")
}

func TestRoot_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte("a\r\n"), 0o644))

	stdout, _, err := execute(t, "--dry-run", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "would be cleaned")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\r\n", string(got))
}

func TestRoot_DecodeErrorFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte{0xff, '\r', '\n'}, 0o644))

	_, stderr, err := execute(t, "--log-format=logfmt", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding "+path)
	assert.Contains(t, stderr, "level=error")
}

func TestRoot_EmptyPath(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, _, err := execute(t, "")
	assert.EqualError(t, err, "path must not be empty")
	assert.Empty(t, stdout)
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, "a", "b")
	assert.Error(t, err)
}

func TestRoot_BadLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	_, _, err := execute(t, "--log-format=xml", path)
	assert.EqualError(t, err, "initializing logger: unknown log format: xml")
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup, like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}
