// Package normalize implements the Normalizer interface.
// It removes a leading byte-order mark and rewrites every line ending
// to a single line feed, the canonical form for all cleaned files.
package normalize

import (
	"strings"

	"github.com/gaurav-prasanna/textclean/core"
)

// TextNormalizer strips the BOM and canonicalizes line endings.
type TextNormalizer struct{}

// New creates a TextNormalizer.
func New() *TextNormalizer {
	return &TextNormalizer{}
}

// Normalize returns text without a leading BOM and with "\r\n" and "\r"
// replaced by "\n". The result contains no carriage returns.
func (n *TextNormalizer) Normalize(text string) core.Normalized {
	var out core.Normalized

	text, out.BOMRemoved = StripBOM(text)
	out.Text, out.CRLF, out.CR = NormalizeLineEndings(text)
	return out
}

// StripBOM removes exactly one leading BOM character.
func StripBOM(text string) (string, bool) {
	return strings.CutPrefix(text, string(core.BOM))
}

// NormalizeLineEndings replaces "\r\n" with "\n" and then every remaining
// "\r" with "\n". The pairs must go first so a CRLF becomes one line feed,
// not two. It returns the counts of each sequence replaced.
func NormalizeLineEndings(text string) (string, int, int) {
	crlf := strings.Count(text, "\r\n")
	if crlf > 0 {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	cr := strings.Count(text, "\r")
	if cr > 0 {
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	return text, crlf, cr
}
