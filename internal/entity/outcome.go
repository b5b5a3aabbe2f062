package entity

import (
	"github.com/sidepp-ar/docingest/constants"
)

// ProcessingOutcome is the unit returned to the caller, one per input
// document. Payload carries the structured record on success (a
// *PayrollBatch or *TransferRecord); Err carries the stage failure otherwise.
// AlreadyProcessed marks documents skipped by the idempotency check.
type ProcessingOutcome struct {
	SourceName       string                 `json:"source_name"`
	DocType          constants.DocumentType `json:"doc_type"`
	Success          bool                   `json:"success"`
	AlreadyProcessed bool                   `json:"already_processed"`
	Payload          any                    `json:"payload,omitempty"`
	Err              error                  `json:"-"`
}
