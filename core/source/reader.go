// Package source implements the Reader interface.
// It checks that the target file exists, reads it in full and validates
// that the contents decode as UTF-8.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/gaurav-prasanna/textclean/core"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// FileReader reads target files from the local filesystem.
type FileReader struct{}

// New creates a FileReader. Relative paths resolve against the working directory.
func New() *FileReader {
	return &FileReader{}
}

// Read returns the decoded contents of path. It returns core.ErrNotFound
// if nothing exists at path.
func (r *FileReader) Read(ctx context.Context, path string) (*core.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.ErrNotFound
		}
		return nil, &core.ReadError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &core.ReadError{Path: path, Err: fmt.Errorf("not a regular file (%s)", info.Mode().Type())}
	}

	raw, err := readAll(path)
	if err != nil {
		return nil, &core.ReadError{Path: path, Err: err}
	}

	text, err := Decode(raw)
	if err != nil {
		var de *core.DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}

	return &core.Document{
		Path: path,
		Text: text,
		Mode: info.Mode() & (fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky),
	}, nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading contents: %w", err)
	}
	return data, nil
}

// Decode validates raw as UTF-8 and returns it as text.
func Decode(raw []byte) (string, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		return "", &core.DecodeError{Offset: n, Err: err}
	}
	return string(out), nil
}
