package service

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Format renders the display string for one result
func Format(code string, conf float64) string {
	return fmt.Sprintf("Language: %s\nConfidence: %s", code, Percent(conf))
}

// Percent renders conf as a percentage with two decimals, clamped to [0, 100]
func Percent(conf float64) string {
	if math.IsNaN(conf) {
		conf = 0
	}
	conf = math.Max(0, math.Min(1, conf))
	return fmt.Sprintf("%.2f%%", conf*100)
}

var namer = display.English.Languages()

// LanguageName returns the English name for an ISO code, or "" when unknown
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return namer.Name(tag)
}
