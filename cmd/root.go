// Package cmd implements the CLI for textclean using Cobra.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gaurav-prasanna/textclean/core"
	"github.com/gaurav-prasanna/textclean/core/config"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd(os.Stdout, os.Stderr)

// newRootCmd builds the textclean command. Status lines go to stdout,
// diagnostic logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cfg config.Config
	v := config.NewViper()
	opts := cfg.Opts()

	cmd := &cobra.Command{
		Use:   "textclean [path]",
		Short: "textclean — strip the BOM and normalize line endings in a text file",
		Long: `textclean removes a leading byte-order mark from a UTF-8 text file and
rewrites every CRLF and bare CR line ending as LF, in place.

With no path it cleans ` + core.DefaultPath + ` (or $` + config.EnvPrefix + `_PATH).

Examples:
  textclean
  textclean src/app.js
  textclean notes.txt --dry-run
  textclean notes.txt --atomic=false --log-level debug`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(v, opts); err != nil {
				return err
			}
			path, err := config.ResolvePath(v, args)
			if err != nil {
				return err
			}
			cfg.Path = path
			return runClean(cmd.Context(), cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	config.BindOptions(v, cmd.Flags(), opts)
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
