// Package normalize canonicalizes free text dimension labels read from source tables
// Pipeline order for Label
// 1 drop invalid UTF-8 and control characters
// 2 Unicode NFKC normalization
// 3 strip format characters (ZWJ ZWNJ BOM)
// 4 width fold fullwidth forms
// 5 collapse whitespace runs to one space and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Label returns the cleaned form of a raw cell, case preserved
func Label(s string) string {
	if s == "" {
		return ""
	}
	if isPlain(s) {
		return strings.TrimSpace(s)
	}

	s = strings.ToValidUTF8(s, "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}

// Key is the upper cased Label, used for alias lookups
func Key(s string) string {
	return cases.Upper(language.Und).String(Label(s))
}

// Title title cases every word of the Label, lower casing the rest ("UNITED STATES" -> "United States")
func Title(s string) string {
	return cases.Title(language.English).String(Label(s))
}

// isPlain reports printable ASCII with no doubled or interior non space whitespace
func isPlain(s string) bool {
	prevSpace := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == ' ':
			if prevSpace {
				return false
			}
			prevSpace = true
		case b < 0x20 || b >= 0x7F:
			return false
		default:
			prevSpace = false
		}
	}
	return true
}
