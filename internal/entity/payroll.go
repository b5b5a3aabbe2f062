package entity

import (
	"github.com/shopspring/decimal"
)

// PersonAmountEntry is one person/amount row of a payroll listing.
// NationalID (7-8 digit DNI) and BankAccountID (22-digit CBU) are captured
// opportunistically and may be empty.
type PersonAmountEntry struct {
	LastName      string          `json:"last_name"`
	FirstName     string          `json:"first_name"`
	NationalID    string          `json:"national_id,omitempty"`
	BankAccountID string          `json:"bank_account_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// ConceptEntry is one concept line of a payroll listing (HABER BASICO,
// DESCUENTO SINDICAL, ...), classified into a coarse kind.
type ConceptEntry struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Kind        string          `json:"kind"` // "HABER" | "DESCUENTO" | "APORTE"
	Amount      decimal.Decimal `json:"amount"`
}

// PayrollBatch is the structured record extracted from a payroll listing.
// Total always equals the sum of entry amounts. PeriodFallback marks the
// low-confidence case where the period defaulted to the current month.
type PayrollBatch struct {
	Period         string              `json:"period"` // "MM/YYYY"
	PeriodFallback bool                `json:"period_fallback"`
	Entries        []PersonAmountEntry `json:"entries"`
	Concepts       []ConceptEntry      `json:"concepts,omitempty"`
	Total          decimal.Decimal     `json:"total"`
}
