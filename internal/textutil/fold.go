// Package textutil holds small text helpers shared by the classifier and the
// field extractors.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold uppercases s and strips diacritics, so "Liquidación" and
// "LIQUIDACION" compare equal. Input that fails to transform is returned
// uppercased unchanged.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(out)
}

// NormalizeName folds a person name and collapses inner whitespace, producing
// the dedup key for payroll entries.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(Fold(s)), " ")
}
