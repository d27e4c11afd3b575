// Package core defines the cleaning pipeline types and interfaces for textclean.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"os"
)

// DefaultPath is the file cleaned when no path is given.
const DefaultPath = "js/main.js"

// BOM is the byte-order mark character stripped from the start of a file.
const BOM = '\uFEFF'

// Document holds the decoded contents of a target file.
type Document struct {
	Path string
	Text string
	Mode os.FileMode
}

// Changes counts what normalization removed or replaced.
type Changes struct {
	BOMRemoved bool
	CRLF       int // "\r\n" sequences replaced
	CR         int // standalone "\r" replaced
}

// Changed reports whether any edit was made.
func (c Changes) Changed() bool {
	return c.BOMRemoved || c.CRLF > 0 || c.CR > 0
}

// Normalized is the outcome of normalizing a document's text.
type Normalized struct {
	Text string
	Changes
}

// Status is the outcome of a cleaning run that did not fail.
type Status int

const (
	// StatusAbsent means the target file did not exist. Nothing was read or written.
	StatusAbsent Status = iota
	// StatusCleaned means the file was rewritten.
	StatusCleaned
	// StatusPending means a dry run found edits it did not write.
	StatusPending
	// StatusUnchanged means a dry run found nothing to edit.
	StatusUnchanged
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusCleaned:
		return "cleaned"
	case StatusPending:
		return "pending"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Result summarizes a cleaning run.
type Result struct {
	Path   string
	Status Status
	DryRun bool
	Changes
}

// Reader locates a file and decodes its contents.
type Reader interface {
	Read(ctx context.Context, path string) (*Document, error)
}

// Normalizer strips the BOM and canonicalizes line endings.
type Normalizer interface {
	Normalize(text string) Normalized
}

// Writer replaces a document's contents on disk.
type Writer interface {
	Write(ctx context.Context, doc *Document, text string) error
}

// Reporter emits human-readable status lines.
type Reporter interface {
	Start(path string)
	NotFound(path string)
	BOMRemoved(path string)
	Done(res Result)
}
