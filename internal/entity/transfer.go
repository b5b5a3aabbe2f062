package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecord is the structured record extracted from a bank-transfer
// receipt. Account identifiers, when present, are exactly 22 ASCII digits.
// DateFallback marks the low-confidence case where the operation date
// defaulted to the processing date.
type TransferRecord struct {
	Amount          decimal.Decimal `json:"amount"`
	SourceAccountID string          `json:"source_account_id,omitempty"`
	DestAccountID   string          `json:"dest_account_id,omitempty"`
	Reference       string          `json:"reference,omitempty"`
	Currency        string          `json:"currency"` // "ARS" | "USD"
	OperationDate   time.Time       `json:"operation_date"`
	DateFallback    bool            `json:"date_fallback"`
}
