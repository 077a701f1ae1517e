// Package script provides coarse writing-system classification used to pick a tokenizer
package script

import "unicode"

// Category is the coarse script family of a text
type Category uint8

const (
	// Unclassified means no tracked script was found
	Unclassified Category = iota
	// CJK is the CJK Unified Ideographs block
	CJK
	// Kana is the Hiragana and Katakana blocks
	Kana
	// Thai is the Thai block
	Thai
)

// String returns the lowercase wire name of the category
func (c Category) String() string {
	switch c {
	case CJK:
		return "cjk"
	case Kana:
		return "kana"
	case Thai:
		return "thai"
	default:
		return "unclassified"
	}
}

// Fixed ranges, not the full unicode.Han / unicode.Thai tables:
// extension blocks and compatibility ideographs do not count as CJK here
var (
	cjkTable  = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}}}
	kanaTable = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x3040, Hi: 0x30FF, Stride: 1}}}
	thaiTable = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0E00, Hi: 0x0E7F, Stride: 1}}}
)

// priority is the check order; the first category with any rune present wins
var priority = []struct {
	cat   Category
	table *unicode.RangeTable
}{
	{CJK, cjkTable},
	{Kana, kanaTable},
	{Thai, thaiTable},
}

// Classify returns the first category in priority order (CJK, Kana, Thai)
// that has at least one rune in text. Empty text is Unclassified
func Classify(text string) Category {
	for _, p := range priority {
		if contains(text, p.table) {
			return p.cat
		}
	}
	return Unclassified
}

// Of returns the category a single rune belongs to
func Of(r rune) Category {
	for _, p := range priority {
		if unicode.Is(p.table, r) {
			return p.cat
		}
	}
	return Unclassified
}

func contains(s string, t *unicode.RangeTable) bool {
	for _, r := range s {
		if unicode.Is(t, r) {
			return true
		}
	}
	return false
}

// Census counts runes per category; Other counts letters outside the tracked blocks
type Census struct {
	CJK   int `json:"cjk"`
	Kana  int `json:"kana"`
	Thai  int `json:"thai"`
	Other int `json:"other"`
}

// Counts walks text once and tallies runes by category
func Counts(text string) Census {
	var c Census
	for _, r := range text {
		switch Of(r) {
		case CJK:
			c.CJK++
		case Kana:
			c.Kana++
		case Thai:
			c.Thai++
		default:
			if unicode.IsLetter(r) {
				c.Other++
			}
		}
	}
	return c
}
