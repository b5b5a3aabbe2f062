// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/document"
	"github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
)

// PayrollBatch is the model entity for the PayrollBatch schema.
type PayrollBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Period holds the value of the "period" field.
	Period string `json:"period,omitempty"`
	// PeriodFallback holds the value of the "period_fallback" field.
	PeriodFallback bool `json:"period_fallback,omitempty"`
	// Total holds the value of the "total" field.
	Total float64 `json:"total,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PayrollBatchQuery when eager-loading is set.
	Edges        PayrollBatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PayrollBatchEdges holds the relations/edges for other nodes in the graph.
type PayrollBatchEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Entries holds the value of the entries edge.
	Entries []*PayrollEntry `json:"entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PayrollBatchEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e PayrollBatchEdges) EntriesOrErr() ([]*PayrollEntry, error) {
	if e.loadedTypes[1] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PayrollBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case payrollbatch.FieldPeriodFallback:
			values[i] = new(sql.NullBool)
		case payrollbatch.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case payrollbatch.FieldPeriod:
			values[i] = new(sql.NullString)
		case payrollbatch.FieldID, payrollbatch.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PayrollBatch fields.
func (_m *PayrollBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case payrollbatch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case payrollbatch.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case payrollbatch.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = value.String
			}
		case payrollbatch.FieldPeriodFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field period_fallback", values[i])
			} else if value.Valid {
				_m.PeriodFallback = value.Bool
			}
		case payrollbatch.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PayrollBatch.
// This includes values selected through modifiers, order, etc.
func (_m *PayrollBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the PayrollBatch entity.
func (_m *PayrollBatch) QueryDocument() *DocumentQuery {
	return NewPayrollBatchClient(_m.config).QueryDocument(_m)
}

// QueryEntries queries the "entries" edge of the PayrollBatch entity.
func (_m *PayrollBatch) QueryEntries() *PayrollEntryQuery {
	return NewPayrollBatchClient(_m.config).QueryEntries(_m)
}

// Update returns a builder for updating this PayrollBatch.
// Note that you need to call PayrollBatch.Unwrap() before calling this method if this PayrollBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PayrollBatch) Update() *PayrollBatchUpdateOne {
	return NewPayrollBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PayrollBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PayrollBatch) Unwrap() *PayrollBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PayrollBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PayrollBatch) String() string {
	var builder strings.Builder
	builder.WriteString("PayrollBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(_m.Period)
	builder.WriteString(", ")
	builder.WriteString("period_fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.PeriodFallback))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteByte(')')
	return builder.String()
}

// PayrollBatches is a parsable slice of PayrollBatch.
type PayrollBatches []*PayrollBatch
