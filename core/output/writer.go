// Package output writes cleaned text back over the original file.
// By default the new contents go to a temporary file beside the target
// which is then renamed over it, so a crash leaves either the old or the
// new contents in place. Symlinks are resolved first so the file they
// point at is the one replaced. In-place mode truncates and rewrites the file.
package output

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/textclean/core"
	"github.com/hashicorp/go-multierror"
)

// errNoRename marks failures that happen before the target is touched and
// that an in-place write can still get past: the directory does not accept
// new files, or the original owner cannot be kept on a replacement.
var errNoRename = errors.New("cannot replace by rename")

// Writer writes cleaned documents to disk.
type Writer struct {
	// Atomic selects temp-file-and-rename over truncate-and-write.
	Atomic bool
}

// New creates a Writer.
func New(atomic bool) *Writer {
	return &Writer{Atomic: atomic}
}

// Write replaces the contents of doc.Path with text, keeping doc.Mode.
func (w *Writer) Write(ctx context.Context, doc *core.Document, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := []byte(text)
	var err error
	if w.Atomic {
		err = writeAtomic(doc.Path, data, doc.Mode)
		if errors.Is(err, errNoRename) {
			err = os.WriteFile(doc.Path, data, doc.Mode)
		}
	} else {
		err = os.WriteFile(doc.Path, data, doc.Mode)
	}
	if err != nil {
		return &core.WriteError{Path: doc.Path, Err: err}
	}
	return nil
}

// writeAtomic writes data to a temp file beside the file path resolves to
// and renames it over that file, keeping its owner and group.
func writeAtomic(path string, data []byte, mode os.FileMode) (err error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %w", errNoRename, err)
		}
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			err = multierror.Append(err, fmt.Errorf("removing temp file: %w", rmErr))
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	// chown clears setuid and setgid, so it must come before chmod.
	if err = keepOwner(tmpName, info); err != nil {
		return fmt.Errorf("%w: keeping owner: %w", errNoRename, err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("setting mode: %w", err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	return nil
}
