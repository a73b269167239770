package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrapLines soft-wraps text to width columns. Hard newlines always break,
// lines break at whitespace where possible, and a single token wider than
// the panel is split mid-token so no line ever exceeds the width. A
// trailing newline yields a trailing empty line, which keeps the wrapped
// tail aligned with the raw text.
func wrapLines(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(wrapped, "\n")
}
