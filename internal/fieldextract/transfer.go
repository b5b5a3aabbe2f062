package fieldextract

import (
	"regexp"
	"strings"
	"time"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/entity"
)

var (
	// The labeled pattern is tried first and tolerates decimal-less amounts;
	// the bare fallback insists on a decimal group so it cannot latch onto
	// stray integers elsewhere in the receipt.
	reLabeledAmount  = regexp.MustCompile(`(?i)(?:IMPORTE|MONTO)\s*:?\s*(?:USD\s*|U\$S?\s*)?\$?\s*(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{1,2})?)`)
	reTransferAmount = regexp.MustCompile(`(?:USD\s*)?\$?\s*(\d{1,3}(?:[.,]\d{3})*[.,]\d{2})`)

	// Labeled account identifiers are preferred over reading order; the
	// positional first=source/second=destination convention is the fallback.
	reLabeledCBU    = regexp.MustCompile(`(?i)CBU\s+(Origen|Destino)\s*:?\s*(\d{22})`)
	rePositionalCBU = regexp.MustCompile(`\b\d{22}\b`)

	reLabeledDate = regexp.MustCompile(`(?i)FECHA(?:\s+OPERACI[OÓ]N)?\s*[:\s]\s*(\d{2}[-./]\d{2}[-./]\d{4})`)
	reBareDate    = regexp.MustCompile(`\b(\d{2})[-./](\d{2})[-./](\d{4})\b`)

	reReference = regexp.MustCompile(`(?i)(?:REF(?:ERENCIA)?|CONCEPTO)\s*:\s*(.+)`)
	reRefCutoff = regexp.MustCompile(`\s{2,}`)

	reUSDToken = regexp.MustCompile(`\b(?:USD|U\$S?)\b|U\$S`)
)

// TransferExtractor builds a TransferRecord from a bank-transfer receipt.
// Every field is extracted independently with the richest pattern tried
// first; absent fields stay zero-valued and are judged by the validator.
type TransferExtractor struct {
	now func() time.Time
}

func NewTransferExtractor() *TransferExtractor {
	return &TransferExtractor{now: time.Now}
}

func (x *TransferExtractor) CanHandle(t constants.DocumentType) bool {
	return t == constants.DocTypeTransfer
}

func (x *TransferExtractor) Extract(text string) (any, error) {
	lines := splitLines(text)
	content := strings.Join(lines, " ")

	rec := &entity.TransferRecord{Currency: detectCurrency(content)}

	// Dotted dates ("15.03.2024") are indistinguishable from thousands
	// notation to the amount patterns, so the scan runs on a copy with
	// date tokens blanked out.
	scanned := reBareDate.ReplaceAllString(content, " ")
	m := reLabeledAmount.FindStringSubmatch(scanned)
	if m == nil {
		m = reTransferAmount.FindStringSubmatch(scanned)
	}
	if m != nil {
		if amount, err := ParseAmount(m[1]); err == nil {
			rec.Amount = amount
		}
	}

	rec.SourceAccountID, rec.DestAccountID = extractAccountIDs(content)
	rec.OperationDate, rec.DateFallback = x.extractDate(content)
	rec.Reference = extractReference(lines)
	return rec, nil
}

func extractAccountIDs(content string) (source, dest string) {
	for _, m := range reLabeledCBU.FindAllStringSubmatch(content, -1) {
		switch strings.ToLower(m[1]) {
		case "origen":
			if source == "" {
				source = m[2]
			}
		case "destino":
			if dest == "" {
				dest = m[2]
			}
		}
	}
	if source != "" || dest != "" {
		return source, dest
	}

	// Positional convention: first 22-digit run in reading order is the
	// source, second is the destination. Fragile, but matches the issuing
	// bank layouts this pipeline sees.
	cbus := rePositionalCBU.FindAllString(content, -1)
	if len(cbus) > 0 {
		source = cbus[0]
	}
	if len(cbus) > 1 {
		dest = cbus[1]
	}
	return source, dest
}

// extractDate prefers the labeled "Fecha:" pattern, then any bare
// DD/MM/YYYY token. The processing-date default is flagged, mirroring the
// payroll period fallback.
func (x *TransferExtractor) extractDate(content string) (time.Time, bool) {
	candidate := ""
	if m := reLabeledDate.FindStringSubmatch(content); m != nil {
		candidate = m[1]
	} else if m := reBareDate.FindStringSubmatch(content); m != nil {
		candidate = m[0]
	}

	if candidate != "" {
		normalized := strings.NewReplacer("-", "/", ".", "/").Replace(candidate)
		if d, err := time.Parse("02/01/2006", normalized); err == nil {
			return d, false
		}
	}

	now := x.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
}

// extractReference captures the labeled reference/concept, trimmed at the
// next run of 2+ spaces or end of line.
func extractReference(lines []string) string {
	for _, line := range lines {
		m := reReference.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ref := m[1]
		if loc := reRefCutoff.FindStringIndex(ref); loc != nil {
			ref = ref[:loc[0]]
		}
		return strings.TrimSpace(ref)
	}
	return ""
}

func detectCurrency(content string) string {
	if reUSDToken.MatchString(content) {
		return constants.CurrencyUSD
	}
	return constants.DefaultCurrency
}
