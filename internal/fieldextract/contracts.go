// Package fieldextract turns transcript text into structured records, one
// extractor per document type.
package fieldextract

import (
	"github.com/sidepp-ar/docingest/constants"
)

// Extractor is stage 3 of the pipeline: text -> structured record. Each
// variant declares which document type it handles; the record is a
// *entity.PayrollBatch or *entity.TransferRecord depending on the variant.
// Extractors never fail on missing fields; absence is left to the validator.
type Extractor interface {
	CanHandle(t constants.DocumentType) bool
	Extract(text string) (any, error)
}

// Registry is the closed set of extractor variants, selected by document
// type. New document types register a new variant here.
type Registry struct {
	extractors []Extractor
}

func NewRegistry(extractors ...Extractor) *Registry {
	return &Registry{extractors: extractors}
}

// DefaultRegistry wires the two known variants.
func DefaultRegistry() *Registry {
	return NewRegistry(NewPayrollExtractor(), NewTransferExtractor())
}

// For returns the extractor handling t, or nil when the type is unsupported.
func (r *Registry) For(t constants.DocumentType) Extractor {
	for _, ex := range r.extractors {
		if ex.CanHandle(t) {
			return ex
		}
	}
	return nil
}
