// Code generated by ent, DO NOT EDIT.

package transfer

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the transfer type in the database.
	Label = "transfer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldSourceAccountID holds the string denoting the source_account_id field in the database.
	FieldSourceAccountID = "source_account_id"
	// FieldDestAccountID holds the string denoting the dest_account_id field in the database.
	FieldDestAccountID = "dest_account_id"
	// FieldReference holds the string denoting the reference field in the database.
	FieldReference = "reference"
	// FieldOperationDate holds the string denoting the operation_date field in the database.
	FieldOperationDate = "operation_date"
	// FieldDateFallback holds the string denoting the date_fallback field in the database.
	FieldDateFallback = "date_fallback"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the transfer in the database.
	Table = "transfers"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "transfers"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for transfer fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldAmount,
	FieldCurrency,
	FieldSourceAccountID,
	FieldDestAccountID,
	FieldReference,
	FieldOperationDate,
	FieldDateFallback,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	AmountValidator func(float64) error
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// SourceAccountIDValidator is a validator for the "source_account_id" field. It is called by the builders before save.
	SourceAccountIDValidator func(string) error
	// DestAccountIDValidator is a validator for the "dest_account_id" field. It is called by the builders before save.
	DestAccountIDValidator func(string) error
	// DefaultDateFallback holds the default value on creation for the "date_fallback" field.
	DefaultDateFallback bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Transfer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// BySourceAccountID orders the results by the source_account_id field.
func BySourceAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceAccountID, opts...).ToFunc()
}

// ByDestAccountID orders the results by the dest_account_id field.
func ByDestAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestAccountID, opts...).ToFunc()
}

// ByReference orders the results by the reference field.
func ByReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReference, opts...).ToFunc()
}

// ByOperationDate orders the results by the operation_date field.
func ByOperationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationDate, opts...).ToFunc()
}

// ByDateFallback orders the results by the date_fallback field.
func ByDateFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateFallback, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
	)
}
