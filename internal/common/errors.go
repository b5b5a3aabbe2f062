package common

import (
	"errors"
	"fmt"

	"github.com/sidepp-ar/docingest/constants"
)

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ExtractionError means no transcript was recoverable after every fallback
// stage. Fatal for the document, never for the batch.
type ExtractionError struct {
	Reason   string
	Attempts []string // one entry per stage that was tried
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

// UnsupportedDocumentError means the classifier returned UNKNOWN.
type UnsupportedDocumentError struct {
	Type constants.DocumentType
}

func (e *UnsupportedDocumentError) Error() string {
	return fmt.Sprintf("unsupported document type: %s", e.Type)
}

// FieldFailure names a single field that failed validation and why.
type FieldFailure struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError means the structured record failed completeness or format
// checks. Carries per-field reasons so callers can report them.
type ValidationError struct {
	Failures []FieldFailure
}

func (e *ValidationError) Error() string {
	if len(e.Failures) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Failures[0].Field, e.Failures[0].Reason)
}

// PersistenceError means the gateway call failed after validation passed.
// The validated payload is kept on the outcome so the caller can retry.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
