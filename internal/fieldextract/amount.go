package fieldextract

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount normalizes a currency-shaped numeral using the comma-decimal,
// dot-thousands convention of the source documents ("1.234,56" -> 1234.56).
// A single trailing comma or dot followed by 1-2 digits is the decimal
// marker; every other separator is a thousands separator and is stripped.
// Dot-decimal input ("1,234.56") is tolerated by the same rule.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	lastSep := strings.LastIndexAny(s, ".,")
	var intPart, fracPart string
	if lastSep >= 0 && len(s)-lastSep-1 <= 2 && len(s)-lastSep-1 > 0 {
		intPart, fracPart = s[:lastSep], s[lastSep+1:]
	} else {
		intPart = s
	}

	intPart = strings.Map(func(r rune) rune {
		if r == '.' || r == ',' {
			return -1
		}
		return r
	}, intPart)

	normalized := intPart
	if fracPart != "" {
		normalized += "." + fracPart
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}
