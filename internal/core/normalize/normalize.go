// Package normalize cleans user text before script detection
// Pipeline order
// 1 Sanitize control characters and invalid UTF-8
// 2 Unicode NFC composition
// 3 Remove format characters (ZWSP, ZWJ, ZWNJ, BOM)
// 4 Width fold (fullwidth ASCII to ASCII, halfwidth kana to fullwidth)
// 5 Collapse whitespace runs and trim
//
// Combining marks are kept: Thai vowels and tone marks are Mn and carry meaning
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe, transformer chains are pooled
type Normalizer struct{}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the cleaned form of s
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}
	return collapseSpaces(ns)
}

// collapseSpaces turns whitespace runs into one space, or one newline when the run had a line break
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS, sawNL := false, false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			sawNL = sawNL || r == '\n' || r == '\r'
			continue
		}
		if inWS && b.Len() > 0 {
			if sawNL {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		inWS, sawNL = false, false
		b.WriteRune(r)
	}
	return b.String()
}
