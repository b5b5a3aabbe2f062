// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/document"
	"github.com/sidepp-ar/docingest/gen/ent/transfer"
)

// Transfer is the model entity for the Transfer schema.
type Transfer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// SourceAccountID holds the value of the "source_account_id" field.
	SourceAccountID *string `json:"source_account_id,omitempty"`
	// DestAccountID holds the value of the "dest_account_id" field.
	DestAccountID *string `json:"dest_account_id,omitempty"`
	// Reference holds the value of the "reference" field.
	Reference *string `json:"reference,omitempty"`
	// OperationDate holds the value of the "operation_date" field.
	OperationDate time.Time `json:"operation_date,omitempty"`
	// DateFallback holds the value of the "date_fallback" field.
	DateFallback bool `json:"date_fallback,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TransferQuery when eager-loading is set.
	Edges        TransferEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TransferEdges holds the relations/edges for other nodes in the graph.
type TransferEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TransferEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Transfer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transfer.FieldDateFallback:
			values[i] = new(sql.NullBool)
		case transfer.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case transfer.FieldCurrency, transfer.FieldSourceAccountID, transfer.FieldDestAccountID, transfer.FieldReference:
			values[i] = new(sql.NullString)
		case transfer.FieldOperationDate:
			values[i] = new(sql.NullTime)
		case transfer.FieldID, transfer.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Transfer fields.
func (_m *Transfer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transfer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case transfer.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case transfer.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case transfer.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case transfer.FieldSourceAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_account_id", values[i])
			} else if value.Valid {
				_m.SourceAccountID = new(string)
				*_m.SourceAccountID = value.String
			}
		case transfer.FieldDestAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dest_account_id", values[i])
			} else if value.Valid {
				_m.DestAccountID = new(string)
				*_m.DestAccountID = value.String
			}
		case transfer.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = new(string)
				*_m.Reference = value.String
			}
		case transfer.FieldOperationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field operation_date", values[i])
			} else if value.Valid {
				_m.OperationDate = value.Time
			}
		case transfer.FieldDateFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field date_fallback", values[i])
			} else if value.Valid {
				_m.DateFallback = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Transfer.
// This includes values selected through modifiers, order, etc.
func (_m *Transfer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the Transfer entity.
func (_m *Transfer) QueryDocument() *DocumentQuery {
	return NewTransferClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this Transfer.
// Note that you need to call Transfer.Unwrap() before calling this method if this Transfer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Transfer) Update() *TransferUpdateOne {
	return NewTransferClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Transfer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Transfer) Unwrap() *Transfer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Transfer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Transfer) String() string {
	var builder strings.Builder
	builder.WriteString("Transfer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	if v := _m.SourceAccountID; v != nil {
		builder.WriteString("source_account_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DestAccountID; v != nil {
		builder.WriteString("dest_account_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Reference; v != nil {
		builder.WriteString("reference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("operation_date=")
	builder.WriteString(_m.OperationDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("date_fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.DateFallback))
	builder.WriteByte(')')
	return builder.String()
}

// Transfers is a parsable slice of Transfer.
type Transfers []*Transfer
