// Package report prints the human-readable status lines of a cleaning run.
// Lines are styled with lipgloss; styling is dropped automatically when the
// output is not a terminal.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/gaurav-prasanna/textclean/core"
)

// StatusReporter writes status lines to an io.Writer.
type StatusReporter struct {
	w    io.Writer
	info lipgloss.Style
	ok   lipgloss.Style
	warn lipgloss.Style
	fail lipgloss.Style
}

// New creates a StatusReporter writing to w.
func New(w io.Writer) *StatusReporter {
	r := lipgloss.NewRenderer(w)
	return &StatusReporter{
		w:    w,
		info: r.NewStyle().Foreground(lipgloss.Color("12")),
		ok:   r.NewStyle().Foreground(lipgloss.Color("10")),
		warn: r.NewStyle().Foreground(lipgloss.Color("11")),
		fail: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Start prints the opening banner.
func (r *StatusReporter) Start(path string) {
	r.line(r.info, "🧹", fmt.Sprintf("Cleaning encoding issues in %s...", path))
}

// NotFound reports that the target file does not exist.
func (r *StatusReporter) NotFound(path string) {
	r.line(r.fail, "✗", fmt.Sprintf("File %s not found", path))
}

// BOMRemoved reports that a leading BOM was stripped.
func (r *StatusReporter) BOMRemoved(path string) {
	r.line(r.warn, "🔧", fmt.Sprintf("Removing BOM from %s...", path))
}

// Done prints the completion banner.
func (r *StatusReporter) Done(res core.Result) {
	switch res.Status {
	case core.StatusAbsent:
		r.line(r.ok, "✓", "Done")
	case core.StatusPending:
		r.line(r.warn, "•", fmt.Sprintf("%s would be cleaned (%s)", res.Path, summary(res)))
	case core.StatusUnchanged:
		r.line(r.ok, "✓", fmt.Sprintf("%s is already clean", res.Path))
	default:
		r.line(r.ok, "✓", fmt.Sprintf("%s cleaned (%s)", res.Path, summary(res)))
	}
}

func (r *StatusReporter) line(style lipgloss.Style, glyph, msg string) {
	fmt.Fprintf(r.w, "%s %s\n", style.Render(glyph), msg)
}

func summary(res core.Result) string {
	bom := "no BOM"
	if res.BOMRemoved {
		bom = "BOM removed"
	}
	return fmt.Sprintf("%s, %d CRLF, %d CR", bom, res.CRLF, res.CR)
}
