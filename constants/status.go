package constants

// ProcessingStatus is the canonical status for rows in documents.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	StatusProcessed ProcessingStatus = "PROCESSED" // pipeline completed and record persisted
	StatusFailed    ProcessingStatus = "FAILED"    // terminal failure for this document
)
