// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	"github.com/sidepp-ar/docingest/gen/ent/payrollentry"
)

// PayrollEntry is the model entity for the PayrollEntry schema.
type PayrollEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID uuid.UUID `json:"batch_id,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName string `json:"last_name,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// NationalID holds the value of the "national_id" field.
	NationalID *string `json:"national_id,omitempty"`
	// BankAccountID holds the value of the "bank_account_id" field.
	BankAccountID *string `json:"bank_account_id,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PayrollEntryQuery when eager-loading is set.
	Edges        PayrollEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PayrollEntryEdges holds the relations/edges for other nodes in the graph.
type PayrollEntryEdges struct {
	// Batch holds the value of the batch edge.
	Batch *PayrollBatch `json:"batch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BatchOrErr returns the Batch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PayrollEntryEdges) BatchOrErr() (*PayrollBatch, error) {
	if e.Batch != nil {
		return e.Batch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: payrollbatch.Label}
	}
	return nil, &NotLoadedError{edge: "batch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PayrollEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case payrollentry.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case payrollentry.FieldLastName, payrollentry.FieldFirstName, payrollentry.FieldNationalID, payrollentry.FieldBankAccountID:
			values[i] = new(sql.NullString)
		case payrollentry.FieldID, payrollentry.FieldBatchID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PayrollEntry fields.
func (_m *PayrollEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case payrollentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case payrollentry.FieldBatchID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value != nil {
				_m.BatchID = *value
			}
		case payrollentry.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case payrollentry.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case payrollentry.FieldNationalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field national_id", values[i])
			} else if value.Valid {
				_m.NationalID = new(string)
				*_m.NationalID = value.String
			}
		case payrollentry.FieldBankAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_account_id", values[i])
			} else if value.Valid {
				_m.BankAccountID = new(string)
				*_m.BankAccountID = value.String
			}
		case payrollentry.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PayrollEntry.
// This includes values selected through modifiers, order, etc.
func (_m *PayrollEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBatch queries the "batch" edge of the PayrollEntry entity.
func (_m *PayrollEntry) QueryBatch() *PayrollBatchQuery {
	return NewPayrollEntryClient(_m.config).QueryBatch(_m)
}

// Update returns a builder for updating this PayrollEntry.
// Note that you need to call PayrollEntry.Unwrap() before calling this method if this PayrollEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PayrollEntry) Update() *PayrollEntryUpdateOne {
	return NewPayrollEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PayrollEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PayrollEntry) Unwrap() *PayrollEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PayrollEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PayrollEntry) String() string {
	var builder strings.Builder
	builder.WriteString("PayrollEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("batch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchID))
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	if v := _m.NationalID; v != nil {
		builder.WriteString("national_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BankAccountID; v != nil {
		builder.WriteString("bank_account_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteByte(')')
	return builder.String()
}

// PayrollEntries is a parsable slice of PayrollEntry.
type PayrollEntries []*PayrollEntry
