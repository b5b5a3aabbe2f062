package fieldextract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/entity"
	"github.com/sidepp-ar/docingest/internal/textutil"
)

// Section and terminator markers of the person table, matched on folded text.
const (
	personSectionMarker = "PERSONAS"
	personColumnMarker  = "TOT REMUNERATIVO"
	totalsMarker        = "TOTALES:"
	personCountMarker   = "CANTIDAD DE PERSONAS:"
)

var (
	// A person row: a run of uppercase letters (Spanish diacritics included)
	// read as "LASTNAME FIRSTNAME...", followed by a numeric amount.
	rePersonRow = regexp.MustCompile(`^([A-ZÁÉÍÓÚÑÜ][A-ZÁÉÍÓÚÑÜ\s]*?)\s+(\d[\d.,]*)`)

	// Currency-shaped numerals with comma decimals; the amount column is the
	// rightmost one on a row.
	reRowMoney = regexp.MustCompile(`\d+(?:\.\d{3})*,\d{2}`)

	reNationalID = regexp.MustCompile(`\b\d{7,8}\b`)
	reAccountID  = regexp.MustCompile(`\b\d{22}\b`)

	rePeriodLabeled = regexp.MustCompile(`(?i)Per[ií]odo?:\s*(\d{2}/\d{4})`)
	reMonthLabeled  = regexp.MustCompile(`(?i)Mes:\s*([A-Za-zÁÉÍÓÚáéíóúÑñ]+)\s+(\d{4})`)
	rePeriodBare    = regexp.MustCompile(`\b(\d{2})/(\d{4})\b`)

	// Fallback scanner: 2-4 consecutive capitalized or all-caps words.
	reNameRun = regexp.MustCompile(`\b(?:[A-ZÁÉÍÓÚÑÜ][a-záéíóúñü]+|[A-ZÁÉÍÓÚÑÜ]{2,})(?:\s+(?:[A-ZÁÉÍÓÚÑÜ][a-záéíóúñü]+|[A-ZÁÉÍÓÚÑÜ]{2,})){1,3}\b`)

	reConceptRow = regexp.MustCompile(`^([A-ZÁÉÍÓÚÑÜ][A-ZÁÉÍÓÚÑÜ\s]*?)\s+([\d.,]+)$`)
)

// nameStoplist rejects header/boilerplate token runs the fallback scanner
// would otherwise read as person names. Bilingual, folded.
var nameStoplist = []string{
	"TOTAL", "TOTALES", "SUBTOTAL",
	"PERIODO", "PERIOD", "MES", "MONTH",
	"PAGINA", "PAGE", "HOJA",
	"BANCO", "BANK", "CUENTA", "ACCOUNT", "SUCURSAL",
	"IMPORTE", "AMOUNT", "MONTO", "HABER", "HABERES",
	"DESCUENTO", "APORTE", "RETENCION",
	"APELLIDO", "NOMBRE", "NAME", "LEGAJO", "DOCUMENTO",
	"LIQUIDACION", "PLANILLA", "LISTADO", "SISTEMA", "EMISION",
	"FECHA", "DATE", "CUIT", "CUIL", "CBU", "DNI",
	"REMUNERATIVO", "PERSONAS", "CANTIDAD",
}

// PayrollExtractor builds a PayrollBatch from a payroll disbursement listing
// via a line-oriented section scan, with an unanchored name-run scan as the
// recovery path for drifted layouts.
type PayrollExtractor struct {
	now func() time.Time
}

func NewPayrollExtractor() *PayrollExtractor {
	return &PayrollExtractor{now: time.Now}
}

func (x *PayrollExtractor) CanHandle(t constants.DocumentType) bool {
	return t == constants.DocTypePayroll
}

// Extract never fails: an unrecoverable document yields an empty batch,
// which the validator rejects with field-level reasons.
func (x *PayrollExtractor) Extract(text string) (any, error) {
	lines := splitLines(text)

	batch := &entity.PayrollBatch{}
	batch.Period, batch.PeriodFallback = x.extractPeriod(text)

	entries := scanPersonSection(lines)
	if len(entries) == 0 {
		entries = scanNameRuns(lines)
	}
	batch.Entries = dedupeByName(entries)
	batch.Concepts = scanConceptSection(lines)

	total := decimal.Zero
	for _, e := range batch.Entries {
		total = total.Add(e.Amount)
	}
	batch.Total = total
	return batch, nil
}

type scanState int

const (
	seekingSection scanState = iota
	inPersonSection
	sectionDone
)

// scanPersonSection walks the trimmed, non-empty lines as a three-state
// machine: the header line carrying both section markers opens the person
// section and is consumed; a totals marker closes it.
func scanPersonSection(lines []string) []entity.PersonAmountEntry {
	var entries []entity.PersonAmountEntry
	state := seekingSection

	for _, line := range lines {
		folded := textutil.Fold(line)
		switch state {
		case seekingSection:
			if strings.Contains(folded, personSectionMarker) && strings.Contains(folded, personColumnMarker) {
				state = inPersonSection
			}
		case inPersonSection:
			if strings.Contains(folded, totalsMarker) || strings.Contains(folded, personCountMarker) {
				state = sectionDone
				continue
			}
			if e, ok := parsePersonRow(line); ok {
				entries = append(entries, e)
			}
		case sectionDone:
			// remaining lines ignored
		}
	}
	return entries
}

func parsePersonRow(line string) (entity.PersonAmountEntry, bool) {
	m := rePersonRow.FindStringSubmatch(line)
	if m == nil {
		return entity.PersonAmountEntry{}, false
	}

	// The amount column is rightmost; prefer the last currency-shaped
	// numeral so opportunistic IDs earlier in the row are not misread.
	amountStr := m[2]
	if monies := reRowMoney.FindAllString(line, -1); len(monies) > 0 {
		amountStr = monies[len(monies)-1]
	}
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return entity.PersonAmountEntry{}, false
	}

	e := newPersonEntry(m[1], amount)
	if e.LastName == "" {
		return entity.PersonAmountEntry{}, false
	}
	e.BankAccountID = reAccountID.FindString(line)
	e.NationalID = findNationalID(line, e.BankAccountID)
	return e, true
}

// scanNameRuns recovers entries from documents whose layout drifted enough
// to defeat the section-header heuristic: any line holding a 2-4 word
// name-shaped run plus an amount, minus known boilerplate.
func scanNameRuns(lines []string) []entity.PersonAmountEntry {
	var entries []entity.PersonAmountEntry
	for _, line := range lines {
		run := reNameRun.FindString(line)
		if run == "" || stoplisted(run) {
			continue
		}
		monies := reRowMoney.FindAllString(line, -1)
		if len(monies) == 0 {
			continue
		}
		amount, err := ParseAmount(monies[len(monies)-1])
		if err != nil {
			continue
		}
		e := newPersonEntry(run, amount)
		e.BankAccountID = reAccountID.FindString(line)
		e.NationalID = findNationalID(line, e.BankAccountID)
		entries = append(entries, e)
	}
	return entries
}

// newPersonEntry splits a name run into last name (first token) and first
// name (remaining tokens, "N/N" when absent).
func newPersonEntry(nameRun string, amount decimal.Decimal) entity.PersonAmountEntry {
	parts := strings.Fields(strings.TrimSpace(nameRun))
	e := entity.PersonAmountEntry{Amount: amount}
	if len(parts) == 0 {
		return e
	}
	e.LastName = parts[0]
	if len(parts) > 1 {
		e.FirstName = strings.Join(parts[1:], " ")
	} else {
		e.FirstName = "N/N"
	}
	return e
}

func stoplisted(run string) bool {
	folded := textutil.Fold(run)
	for _, word := range strings.Fields(folded) {
		for _, stop := range nameStoplist {
			if word == stop {
				return true
			}
		}
	}
	return false
}

// findNationalID skips 7-8 digit windows that are part of a captured
// 22-digit account identifier.
func findNationalID(line, accountID string) string {
	if accountID != "" {
		line = strings.Replace(line, accountID, "", 1)
	}
	return reNationalID.FindString(line)
}

// extractPeriod resolves "MM/YYYY" from explicit labels, the Spanish month
// table, or any bare MM/YYYY token. The current-month default is a lossy
// fallback and is flagged, never silently trusted.
func (x *PayrollExtractor) extractPeriod(text string) (period string, fallback bool) {
	if m := rePeriodLabeled.FindStringSubmatch(text); m != nil {
		return m[1], false
	}
	if m := reMonthLabeled.FindStringSubmatch(text); m != nil {
		if mm, ok := spanishMonths[textutil.Fold(m[1])]; ok {
			return mm + "/" + m[2], false
		}
	}
	for _, m := range rePeriodBare.FindAllStringSubmatch(text, -1) {
		if m[1] >= "01" && m[1] <= "12" {
			return m[1] + "/" + m[2], false
		}
	}
	now := x.now()
	return now.Format("01/2006"), true
}

func dedupeByName(entries []entity.PersonAmountEntry) []entity.PersonAmountEntry {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		key := textutil.NormalizeName(e.LastName + " " + e.FirstName)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

// scanConceptSection reads the optional concept table ("Concepto" / "Monto"
// header), classifying each row into HABER, DESCUENTO or APORTE.
func scanConceptSection(lines []string) []entity.ConceptEntry {
	var concepts []entity.ConceptEntry
	inSection := false
	for _, line := range lines {
		folded := textutil.Fold(line)
		if !inSection {
			if strings.Contains(folded, "CONCEPTO") && strings.Contains(folded, "MONTO") {
				inSection = true
			}
			continue
		}
		if strings.Contains(folded, totalsMarker) || strings.Contains(line, "---") {
			break
		}
		m := reConceptRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		amount, err := ParseAmount(m[2])
		if err != nil {
			continue
		}
		desc := strings.TrimSpace(m[1])
		concepts = append(concepts, entity.ConceptEntry{
			Code:        conceptCode(desc),
			Description: desc,
			Kind:        conceptKind(desc),
			Amount:      amount,
		})
	}
	return concepts
}

func conceptKind(desc string) string {
	folded := textutil.Fold(desc)
	switch {
	case strings.Contains(folded, "DESCUENTO") || strings.Contains(folded, "RETENCION"):
		return "DESCUENTO"
	case strings.Contains(folded, "APORTE") || strings.Contains(folded, "CONTRIBUCION"):
		return "APORTE"
	default:
		return "HABER"
	}
}

func conceptCode(desc string) string {
	code := textutil.Fold(desc)
	if len(code) > 10 {
		code = code[:10]
	}
	return strings.ReplaceAll(strings.TrimSpace(code), " ", "_")
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
