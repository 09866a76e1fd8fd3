// Package textnorm normalises free text before it is matched against the
// rule-table vocabulary.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Upper composes the text to NFC and upper-cases it. Spreadsheet cells
// sometimes carry decomposed accents (A + U+0303), which would otherwise
// never equal the composed vocabulary entry "NÃO HALOGENADO".
func Upper(s string) string {
	return strings.ToUpper(norm.NFC.String(s))
}

// Fold upper-cases and strips accents (Descrição -> DESCRICAO).
func Fold(s string) string {
	// Chains keep state between calls, so each call gets its own.
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(strip, strings.ToUpper(s))
	if err != nil {
		return strings.ToUpper(s)
	}
	return folded
}
