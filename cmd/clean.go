// Package cmd — clean stage wiring.
// Builds the pipeline components from the resolved configuration and runs
// them against the target file: read → normalize → write → report.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/gaurav-prasanna/textclean/core/clean"
	"github.com/gaurav-prasanna/textclean/core/config"
	"github.com/gaurav-prasanna/textclean/core/normalize"
	"github.com/gaurav-prasanna/textclean/core/output"
	"github.com/gaurav-prasanna/textclean/core/report"
	"github.com/gaurav-prasanna/textclean/core/source"
	"go.uber.org/zap"
)

func runClean(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	log, err := cfg.Log.New(stderr)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Initialize pipeline components.
	cleaner := &clean.Cleaner{
		Reader:     source.New(),
		Normalizer: normalize.New(),
		Writer:     output.New(cfg.Atomic),
		Reporter:   report.New(stdout),
		Logger:     log,
		DryRun:     cfg.DryRun,
	}

	log.Debug("Starting",
		zap.String("path", cfg.Path),
		zap.Bool("atomic", cfg.Atomic),
		zap.Bool("dry_run", cfg.DryRun))

	_, err = cleaner.Run(ctx, cfg.Path)
	return err
}
