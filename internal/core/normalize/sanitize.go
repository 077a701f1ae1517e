package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops NUL, ASCII controls other than \n \r \t, DEL, C1 controls and invalid UTF-8 bytes.
// Clean input is returned as is without allocating
func Sanitize(s string) string {
	first := firstDirty(s)
	if first < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])
	for i := first; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if keep(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// firstDirty returns the byte offset of the first rune Sanitize would drop, or -1
func firstDirty(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !keep(r, size) {
			return i
		}
		i += size
	}
	return -1
}

func keep(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return false
	case r == '\n' || r == '\r' || r == '\t':
		return true
	case r < 0x20 || r == 0x7F:
		return false
	case r >= 0x80 && r <= 0x9F:
		return false
	}
	return true
}
