package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/textclean/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func writeFile(t *testing.T, content []byte, perm os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, content, perm))
	require.NoError(t, os.Chmod(path, perm))
	return path
}

func TestFileReader_Read(t *testing.T) {
	path := writeFile(t, []byte("\xef\xbb\xbfhello\r\n"), 0o640)

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "\uFEFFhello\r\n", doc.Text)
	assert.Equal(t, os.FileMode(0o640), doc.Mode)
}

func TestFileReader_ReadKeepsSpecialBits(t *testing.T) {
	mode := os.FileMode(0o755) | os.ModeSetuid
	path := writeFile(t, []byte("x"), mode)

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, mode, doc.Mode)
}

func TestFileReader_ReadNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.js")

	doc, err := New().Read(context.Background(), path)
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.Nil(t, doc)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileReader_ReadDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := New().Read(context.Background(), dir)
	var re *core.ReadError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, dir, re.Path)
}

func TestFileReader_ReadInvalidUTF8(t *testing.T) {
	path := writeFile(t, []byte("ok\xffbad"), 0o644)

	_, err := New().Read(context.Background(), path)
	var de *core.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, path, de.Path)
	assert.Equal(t, 2, de.Offset)
	assert.ErrorIs(t, err, encoding.ErrInvalidUTF8)
}

func TestFileReader_ReadCanceled(t *testing.T) {
	path := writeFile(t, []byte("x"), 0o644)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Read(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDecode(t *testing.T) {
	got, err := Decode([]byte("héllo\n"))
	require.NoError(t, err)
	assert.Equal(t, "héllo\n", got)

	_, err = Decode([]byte("truncated \xe2\x82"))
	assert.Error(t, err)
}
