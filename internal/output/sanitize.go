package output

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeTerminal makes process-supplied text safe to print to a terminal.
// Control characters other than newline and tab, the Unicode line and
// paragraph separators, and invalid UTF-8 bytes are replaced by visible
// escapes:
//   - "evil\x1b[2J" -> `evil\x1b[2J`
//   - "bad:\xff"    -> `bad:\xff`
//   - "a\u2028b"    -> `a\u2028b`
func SanitizeTerminal(s string) string {
	clean := cleanPrefix(s)
	if clean == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:clean])

	for i := clean; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, `\x%02x`, s[i])
		case isSafeRune(r):
			b.WriteString(s[i : i+size])
		default:
			writeEscapedRune(&b, r)
		}
		i += size
	}
	return b.String()
}

// cleanPrefix returns the length of the longest prefix of s that needs no
// escaping.
func cleanPrefix(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || !isSafeRune(r) {
			return i
		}
		i += size
	}
	return i
}

func isSafeRune(r rune) bool {
	return r == '\n' || r == '\t' || !unicode.IsControl(r) && r != '\u2028' && r != '\u2029'
}

func writeEscapedRune(b *strings.Builder, r rune) {
	switch {
	case r <= 0xFF:
		fmt.Fprintf(b, `\x%02x`, r)
	case r <= 0xFFFF:
		fmt.Fprintf(b, `\u%04x`, r)
	default:
		fmt.Fprintf(b, `\U%08x`, r)
	}
}
