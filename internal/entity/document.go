package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/sidepp-ar/docingest/constants"
)

// RawDocument is one input to the pipeline: an immutable byte payload plus a
// display name. It is owned by a single pipeline invocation and discarded
// once processing completes.
type RawDocument struct {
	Name string
	Data []byte
}

// NaturalKey returns the stable dedup key for the payload: the hex sha256 of
// its bytes. Filenames in this domain ("transferencia_<ts>.pdf") are not
// unique, so content fingerprints are used instead.
func (d RawDocument) NaturalKey() string {
	sum := sha256.Sum256(d.Data)
	return hex.EncodeToString(sum[:])
}

// Document represents a processed document row for data transfer between layers.
type Document struct {
	ID           uuid.UUID                  `json:"id"`
	Filename     string                     `json:"filename"`
	NaturalKey   string                     `json:"natural_key"`
	DocType      constants.DocumentType     `json:"doc_type"`
	Status       constants.ProcessingStatus `json:"status"`
	ErrorMessage string                     `json:"error_message,omitempty"`
	ProcessedAt  time.Time                  `json:"processed_at"`
	CreatedAt    time.Time                  `json:"created_at"`
}
