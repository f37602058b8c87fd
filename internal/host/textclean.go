package host

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// CleanText normalizes host-provided rich text into plain announceable text:
// terminal escape sequences and angle-bracket markup are dropped, whitespace
// runs collapse to single spaces. Idempotent.
func CleanText(raw string) string {
	text := xansi.Strip(raw)
	text = stripMarkup(text)
	return strings.Join(strings.Fields(text), " ")
}

// stripMarkup removes <...> style markup tags. Unterminated tags are dropped
// through the end of the string rather than spoken as raw markup.
func stripMarkup(text string) string {
	if !strings.ContainsRune(text, '<') {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	depth := 0
	for _, r := range text {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
			// tags separate words: "a<br>b" must not fuse into "ab"
			b.WriteByte(' ')
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
