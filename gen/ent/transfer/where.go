// Code generated by ent, DO NOT EDIT.

package transfer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldDocumentID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldCurrency, v))
}

// SourceAccountID applies equality check predicate on the "source_account_id" field. It's identical to SourceAccountIDEQ.
func SourceAccountID(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldSourceAccountID, v))
}

// DestAccountID applies equality check predicate on the "dest_account_id" field. It's identical to DestAccountIDEQ.
func DestAccountID(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldDestAccountID, v))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldReference, v))
}

// OperationDate applies equality check predicate on the "operation_date" field. It's identical to OperationDateEQ.
func OperationDate(v time.Time) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldOperationDate, v))
}

// DateFallback applies equality check predicate on the "date_fallback" field. It's identical to DateFallbackEQ.
func DateFallback(v bool) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldDateFallback, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Transfer {
	return predicate.Transfer(sql.FieldNotIn(FieldDocumentID, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Transfer {
	return predicate.Transfer(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Transfer {
	return predicate.Transfer(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Transfer {
	return predicate.Transfer(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Transfer {
	return predicate.Transfer(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Transfer {
	return predicate.Transfer(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Transfer {
	return predicate.Transfer(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Transfer {
	return predicate.Transfer(sql.FieldLTE(FieldAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Transfer {
	return predicate.Transfer(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Transfer {
	return predicate.Transfer(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldContainsFold(FieldCurrency, v))
}

// SourceAccountIDEQ applies the EQ predicate on the "source_account_id" field.
func SourceAccountIDEQ(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldSourceAccountID, v))
}

// SourceAccountIDNEQ applies the NEQ predicate on the "source_account_id" field.
func SourceAccountIDNEQ(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldNEQ(FieldSourceAccountID, v))
}

// SourceAccountIDIn applies the In predicate on the "source_account_id" field.
func SourceAccountIDIn(vs ...string) predicate.Transfer {
	return predicate.Transfer(sql.FieldIn(FieldSourceAccountID, vs...))
}

// SourceAccountIDNotIn applies the NotIn predicate on the "source_account_id" field.
func SourceAccountIDNotIn(vs ...string) predicate.Transfer {
	return predicate.Transfer(sql.FieldNotIn(FieldSourceAccountID, vs...))
}

// SourceAccountIDGT applies the GT predicate on the "source_account_id" field.
func SourceAccountIDGT(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldGT(FieldSourceAccountID, v))
}

// SourceAccountIDGTE applies the GTE predicate on the "source_account_id" field.
func SourceAccountIDGTE(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldGTE(FieldSourceAccountID, v))
}

// SourceAccountIDLT applies the LT predicate on the "source_account_id" field.
func SourceAccountIDLT(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldLT(FieldSourceAccountID, v))
}

// SourceAccountIDLTE applies the LTE predicate on the "source_account_id" field.
func SourceAccountIDLTE(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldLTE(FieldSourceAccountID, v))
}

// SourceAccountIDContains applies the Contains predicate on the "source_account_id" field.
func SourceAccountIDContains(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldContains(FieldSourceAccountID, v))
}

// SourceAccountIDHasPrefix applies the HasPrefix predicate on the "source_account_id" field.
func SourceAccountIDHasPrefix(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldHasPrefix(FieldSourceAccountID, v))
}

// SourceAccountIDHasSuffix applies the HasSuffix predicate on the "source_account_id" field.
func SourceAccountIDHasSuffix(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldHasSuffix(FieldSourceAccountID, v))
}

// SourceAccountIDIsNil applies the IsNil predicate on the "source_account_id" field.
func SourceAccountIDIsNil() predicate.Transfer {
	return predicate.Transfer(sql.FieldIsNull(FieldSourceAccountID))
}

// SourceAccountIDNotNil applies the NotNil predicate on the "source_account_id" field.
func SourceAccountIDNotNil() predicate.Transfer {
	return predicate.Transfer(sql.FieldNotNull(FieldSourceAccountID))
}

// SourceAccountIDEqualFold applies the EqualFold predicate on the "source_account_id" field.
func SourceAccountIDEqualFold(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEqualFold(FieldSourceAccountID, v))
}

// SourceAccountIDContainsFold applies the ContainsFold predicate on the "source_account_id" field.
func SourceAccountIDContainsFold(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldContainsFold(FieldSourceAccountID, v))
}

// DestAccountIDEQ applies the EQ predicate on the "dest_account_id" field.
func DestAccountIDEQ(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldDestAccountID, v))
}

// DestAccountIDNEQ applies the NEQ predicate on the "dest_account_id" field.
func DestAccountIDNEQ(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldNEQ(FieldDestAccountID, v))
}

// DestAccountIDIn applies the In predicate on the "dest_account_id" field.
func DestAccountIDIn(vs ...string) predicate.Transfer {
	return predicate.Transfer(sql.FieldIn(FieldDestAccountID, vs...))
}

// DestAccountIDNotIn applies the NotIn predicate on the "dest_account_id" field.
func DestAccountIDNotIn(vs ...string) predicate.Transfer {
	return predicate.Transfer(sql.FieldNotIn(FieldDestAccountID, vs...))
}

// DestAccountIDGT applies the GT predicate on the "dest_account_id" field.
func DestAccountIDGT(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldGT(FieldDestAccountID, v))
}

// DestAccountIDGTE applies the GTE predicate on the "dest_account_id" field.
func DestAccountIDGTE(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldGTE(FieldDestAccountID, v))
}

// DestAccountIDLT applies the LT predicate on the "dest_account_id" field.
func DestAccountIDLT(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldLT(FieldDestAccountID, v))
}

// DestAccountIDLTE applies the LTE predicate on the "dest_account_id" field.
func DestAccountIDLTE(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldLTE(FieldDestAccountID, v))
}

// DestAccountIDContains applies the Contains predicate on the "dest_account_id" field.
func DestAccountIDContains(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldContains(FieldDestAccountID, v))
}

// DestAccountIDHasPrefix applies the HasPrefix predicate on the "dest_account_id" field.
func DestAccountIDHasPrefix(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldHasPrefix(FieldDestAccountID, v))
}

// DestAccountIDHasSuffix applies the HasSuffix predicate on the "dest_account_id" field.
func DestAccountIDHasSuffix(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldHasSuffix(FieldDestAccountID, v))
}

// DestAccountIDIsNil applies the IsNil predicate on the "dest_account_id" field.
func DestAccountIDIsNil() predicate.Transfer {
	return predicate.Transfer(sql.FieldIsNull(FieldDestAccountID))
}

// DestAccountIDNotNil applies the NotNil predicate on the "dest_account_id" field.
func DestAccountIDNotNil() predicate.Transfer {
	return predicate.Transfer(sql.FieldNotNull(FieldDestAccountID))
}

// DestAccountIDEqualFold applies the EqualFold predicate on the "dest_account_id" field.
func DestAccountIDEqualFold(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEqualFold(FieldDestAccountID, v))
}

// DestAccountIDContainsFold applies the ContainsFold predicate on the "dest_account_id" field.
func DestAccountIDContainsFold(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldContainsFold(FieldDestAccountID, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.Transfer {
	return predicate.Transfer(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.Transfer {
	return predicate.Transfer(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceIsNil applies the IsNil predicate on the "reference" field.
func ReferenceIsNil() predicate.Transfer {
	return predicate.Transfer(sql.FieldIsNull(FieldReference))
}

// ReferenceNotNil applies the NotNil predicate on the "reference" field.
func ReferenceNotNil() predicate.Transfer {
	return predicate.Transfer(sql.FieldNotNull(FieldReference))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.Transfer {
	return predicate.Transfer(sql.FieldContainsFold(FieldReference, v))
}

// OperationDateEQ applies the EQ predicate on the "operation_date" field.
func OperationDateEQ(v time.Time) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldOperationDate, v))
}

// OperationDateNEQ applies the NEQ predicate on the "operation_date" field.
func OperationDateNEQ(v time.Time) predicate.Transfer {
	return predicate.Transfer(sql.FieldNEQ(FieldOperationDate, v))
}

// OperationDateIn applies the In predicate on the "operation_date" field.
func OperationDateIn(vs ...time.Time) predicate.Transfer {
	return predicate.Transfer(sql.FieldIn(FieldOperationDate, vs...))
}

// OperationDateNotIn applies the NotIn predicate on the "operation_date" field.
func OperationDateNotIn(vs ...time.Time) predicate.Transfer {
	return predicate.Transfer(sql.FieldNotIn(FieldOperationDate, vs...))
}

// OperationDateGT applies the GT predicate on the "operation_date" field.
func OperationDateGT(v time.Time) predicate.Transfer {
	return predicate.Transfer(sql.FieldGT(FieldOperationDate, v))
}

// OperationDateGTE applies the GTE predicate on the "operation_date" field.
func OperationDateGTE(v time.Time) predicate.Transfer {
	return predicate.Transfer(sql.FieldGTE(FieldOperationDate, v))
}

// OperationDateLT applies the LT predicate on the "operation_date" field.
func OperationDateLT(v time.Time) predicate.Transfer {
	return predicate.Transfer(sql.FieldLT(FieldOperationDate, v))
}

// OperationDateLTE applies the LTE predicate on the "operation_date" field.
func OperationDateLTE(v time.Time) predicate.Transfer {
	return predicate.Transfer(sql.FieldLTE(FieldOperationDate, v))
}

// DateFallbackEQ applies the EQ predicate on the "date_fallback" field.
func DateFallbackEQ(v bool) predicate.Transfer {
	return predicate.Transfer(sql.FieldEQ(FieldDateFallback, v))
}

// DateFallbackNEQ applies the NEQ predicate on the "date_fallback" field.
func DateFallbackNEQ(v bool) predicate.Transfer {
	return predicate.Transfer(sql.FieldNEQ(FieldDateFallback, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Transfer {
	return predicate.Transfer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Transfer {
	return predicate.Transfer(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transfer) predicate.Transfer {
	return predicate.Transfer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transfer) predicate.Transfer {
	return predicate.Transfer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transfer) predicate.Transfer {
	return predicate.Transfer(sql.NotPredicates(p))
}
