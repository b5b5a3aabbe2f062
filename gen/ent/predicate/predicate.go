// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// PayrollBatch is the predicate function for payrollbatch builders.
type PayrollBatch func(*sql.Selector)

// PayrollEntry is the predicate function for payrollentry builders.
type PayrollEntry func(*sql.Selector)

// Transfer is the predicate function for transfer builders.
type Transfer func(*sql.Selector)
