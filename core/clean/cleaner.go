// Package clean orchestrates a cleaning run:
// read → strip BOM → normalize line endings → write → report.
package clean

import (
	"context"
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/textclean/core"
	"go.uber.org/zap"
)

// Cleaner runs the pipeline stages against a single file.
type Cleaner struct {
	Reader     core.Reader
	Normalizer core.Normalizer
	Writer     core.Writer
	Reporter   core.Reporter
	Logger     *zap.Logger

	// DryRun skips the write stage.
	DryRun bool
}

// Run cleans the file at path. A missing file is not an error: it is
// reported and returned as core.StatusAbsent. Decode, read and write
// failures are returned as *core.DecodeError, *core.ReadError and
// *core.WriteError respectively.
func (c *Cleaner) Run(ctx context.Context, path string) (core.Result, error) {
	log := c.logger().With(zap.String("path", path), zap.Bool("dry_run", c.DryRun))
	res := core.Result{Path: path, DryRun: c.DryRun}

	c.Reporter.Start(path)

	// 1. Locate and read
	doc, err := c.Reader.Read(ctx, path)
	if errors.Is(err, core.ErrNotFound) {
		log.Info("Target file not found")
		c.Reporter.NotFound(path)
		res.Status = core.StatusAbsent
		c.Reporter.Done(res)
		return res, nil
	}
	if err != nil {
		log.Error("Failed to read target file", zap.Error(err))
		return res, err
	}
	log.Debug("Read target file", zap.Int("bytes", len(doc.Text)))

	// 2. Strip BOM and normalize line endings
	norm := c.Normalizer.Normalize(doc.Text)
	res.Changes = norm.Changes
	if norm.BOMRemoved {
		c.Reporter.BOMRemoved(path)
	}
	log.Debug("Normalized text",
		zap.Bool("bom_removed", norm.BOMRemoved),
		zap.Int("crlf", norm.CRLF),
		zap.Int("cr", norm.CR))

	// 3. Write back. Clean content is rewritten too, so an unwritable
	// file fails the same way whether or not it needed edits.
	switch {
	case c.DryRun && norm.Changed():
		res.Status = core.StatusPending
	case c.DryRun:
		res.Status = core.StatusUnchanged
	default:
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("before write: %w", err)
		}
		if err := c.Writer.Write(ctx, doc, norm.Text); err != nil {
			log.Error("Failed to write target file", zap.Error(err))
			return res, err
		}
		res.Status = core.StatusCleaned
	}

	log.Info("Finished cleaning", zap.Stringer("status", res.Status))
	c.Reporter.Done(res)
	return res, nil
}

func (c *Cleaner) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
