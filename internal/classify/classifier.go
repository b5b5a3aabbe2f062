// Package classify assigns a document type to a transcript using
// indicator-keyword scoring.
package classify

import (
	"strings"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/textutil"
)

// Indicator sets are disjoint and matched case-insensitively against the
// diacritic-folded transcript, so OCR output with or without accents scores
// the same.
var (
	payrollIndicators = []string{
		"LIQUIDACION",
		"LEGAJO",
		"APELLIDO",
		"HABER",
		"DESCUENTO",
		"SIDEPP",
	}
	transferIndicators = []string{
		"TRANSFERENCIA",
		"CBU",
		"BANCO",
		"IMPORTE",
		"CUENTA",
	}
)

// Classify is a pure function from transcript text to a document type.
// Tie-break: transfer indicators are rarer and more specific, so a text
// matching both sets is a TRANSFER. No match at all is UNKNOWN.
func Classify(text string) constants.DocumentType {
	folded := textutil.Fold(text)

	payrollScore := score(folded, payrollIndicators)
	transferScore := score(folded, transferIndicators)

	switch {
	case transferScore > 0:
		return constants.DocTypeTransfer
	case payrollScore > 0:
		return constants.DocTypePayroll
	default:
		return constants.DocTypeUnknown
	}
}

func score(folded string, indicators []string) int {
	n := 0
	for _, kw := range indicators {
		if strings.Contains(folded, kw) {
			n++
		}
	}
	return n
}
