// Package validate checks structured records for completeness and format
// before they are persisted. Validation never mutates a record; it only
// annotates pass/fail with field-level reasons.
package validate

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/common"
	"github.com/sidepp-ar/docingest/internal/entity"
)

var reAccountID = regexp.MustCompile(`^\d{22}$`)

// Result is the validator's verdict: pass/fail plus ordered per-field
// reasons. Derived, never persisted directly.
type Result struct {
	OK       bool
	Failures []common.FieldFailure
}

func (r *Result) fail(field, reason string) {
	r.OK = false
	r.Failures = append(r.Failures, common.FieldFailure{Field: field, Reason: reason})
}

type Validator struct {
	logger *slog.Logger
}

func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logger}
}

// Validate dispatches on the declared document type. The record must be the
// concrete type the matching extractor produces.
func (v *Validator) Validate(record any, docType constants.DocumentType) Result {
	res := Result{OK: true}

	switch docType {
	case constants.DocTypePayroll:
		batch, ok := record.(*entity.PayrollBatch)
		if !ok {
			res.fail("record", fmt.Sprintf("expected payroll batch, got %T", record))
			return res
		}
		v.validatePayroll(batch, &res)
		v.checkSchema(payrollSchema, batch, &res)
	case constants.DocTypeTransfer:
		rec, ok := record.(*entity.TransferRecord)
		if !ok {
			res.fail("record", fmt.Sprintf("expected transfer record, got %T", record))
			return res
		}
		v.validateTransfer(rec, &res)
		v.checkSchema(transferSchema, rec, &res)
	default:
		res.fail("doc_type", fmt.Sprintf("unsupported document type: %s", docType))
	}

	if !res.OK {
		v.logger.Debug("validate.failed", "doc_type", string(docType), "failures", len(res.Failures))
	}
	return res
}

func (v *Validator) validatePayroll(batch *entity.PayrollBatch, res *Result) {
	if batch.Period == "" {
		res.fail("period", "period unresolved and no fallback applied")
	}
	if len(batch.Entries) == 0 {
		res.fail("entries", "no person entries recovered")
		return
	}
	positive := 0
	for _, e := range batch.Entries {
		if e.Amount.IsPositive() {
			positive++
		}
	}
	if positive < 1 {
		res.fail("entries", "no entry has a positive amount")
	}
}

func (v *Validator) validateTransfer(rec *entity.TransferRecord, res *Result) {
	if !rec.Amount.IsPositive() {
		res.fail("amount", "must be a positive number")
	}
	if rec.SourceAccountID != "" && !reAccountID.MatchString(rec.SourceAccountID) {
		res.fail("source_account_id", "must be exactly 22 digits")
	}
	if rec.DestAccountID != "" && !reAccountID.MatchString(rec.DestAccountID) {
		res.fail("dest_account_id", "must be exactly 22 digits")
	}
}

// checkSchema guards the shape of the payload JSON handed to the gateway.
func (v *Validator) checkSchema(schema map[string]any, record any, res *Result) {
	data, err := json.Marshal(record)
	if err != nil {
		res.fail("payload", fmt.Sprintf("marshal: %v", err))
		return
	}
	if err := validateJSONAgainstSchema(schema, data); err != nil {
		res.fail("payload", err.Error())
	}
}

// IsAccountID reports whether s is a well-formed 22-digit account identifier.
func IsAccountID(s string) bool {
	return reAccountID.MatchString(s)
}
