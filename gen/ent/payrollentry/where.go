// Code generated by ent, DO NOT EDIT.

package payrollentry

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLTE(FieldID, id))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldBatchID, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldLastName, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldFirstName, v))
}

// NationalID applies equality check predicate on the "national_id" field. It's identical to NationalIDEQ.
func NationalID(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldNationalID, v))
}

// BankAccountID applies equality check predicate on the "bank_account_id" field. It's identical to BankAccountIDEQ.
func BankAccountID(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldBankAccountID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldAmount, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...uuid.UUID) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNotIn(FieldBatchID, vs...))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldContainsFold(FieldLastName, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldContainsFold(FieldFirstName, v))
}

// NationalIDEQ applies the EQ predicate on the "national_id" field.
func NationalIDEQ(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldNationalID, v))
}

// NationalIDNEQ applies the NEQ predicate on the "national_id" field.
func NationalIDNEQ(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNEQ(FieldNationalID, v))
}

// NationalIDIn applies the In predicate on the "national_id" field.
func NationalIDIn(vs ...string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldIn(FieldNationalID, vs...))
}

// NationalIDNotIn applies the NotIn predicate on the "national_id" field.
func NationalIDNotIn(vs ...string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNotIn(FieldNationalID, vs...))
}

// NationalIDGT applies the GT predicate on the "national_id" field.
func NationalIDGT(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGT(FieldNationalID, v))
}

// NationalIDGTE applies the GTE predicate on the "national_id" field.
func NationalIDGTE(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGTE(FieldNationalID, v))
}

// NationalIDLT applies the LT predicate on the "national_id" field.
func NationalIDLT(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLT(FieldNationalID, v))
}

// NationalIDLTE applies the LTE predicate on the "national_id" field.
func NationalIDLTE(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLTE(FieldNationalID, v))
}

// NationalIDContains applies the Contains predicate on the "national_id" field.
func NationalIDContains(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldContains(FieldNationalID, v))
}

// NationalIDHasPrefix applies the HasPrefix predicate on the "national_id" field.
func NationalIDHasPrefix(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldHasPrefix(FieldNationalID, v))
}

// NationalIDHasSuffix applies the HasSuffix predicate on the "national_id" field.
func NationalIDHasSuffix(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldHasSuffix(FieldNationalID, v))
}

// NationalIDIsNil applies the IsNil predicate on the "national_id" field.
func NationalIDIsNil() predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldIsNull(FieldNationalID))
}

// NationalIDNotNil applies the NotNil predicate on the "national_id" field.
func NationalIDNotNil() predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNotNull(FieldNationalID))
}

// NationalIDEqualFold applies the EqualFold predicate on the "national_id" field.
func NationalIDEqualFold(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEqualFold(FieldNationalID, v))
}

// NationalIDContainsFold applies the ContainsFold predicate on the "national_id" field.
func NationalIDContainsFold(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldContainsFold(FieldNationalID, v))
}

// BankAccountIDEQ applies the EQ predicate on the "bank_account_id" field.
func BankAccountIDEQ(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldBankAccountID, v))
}

// BankAccountIDNEQ applies the NEQ predicate on the "bank_account_id" field.
func BankAccountIDNEQ(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNEQ(FieldBankAccountID, v))
}

// BankAccountIDIn applies the In predicate on the "bank_account_id" field.
func BankAccountIDIn(vs ...string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldIn(FieldBankAccountID, vs...))
}

// BankAccountIDNotIn applies the NotIn predicate on the "bank_account_id" field.
func BankAccountIDNotIn(vs ...string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNotIn(FieldBankAccountID, vs...))
}

// BankAccountIDGT applies the GT predicate on the "bank_account_id" field.
func BankAccountIDGT(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGT(FieldBankAccountID, v))
}

// BankAccountIDGTE applies the GTE predicate on the "bank_account_id" field.
func BankAccountIDGTE(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGTE(FieldBankAccountID, v))
}

// BankAccountIDLT applies the LT predicate on the "bank_account_id" field.
func BankAccountIDLT(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLT(FieldBankAccountID, v))
}

// BankAccountIDLTE applies the LTE predicate on the "bank_account_id" field.
func BankAccountIDLTE(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLTE(FieldBankAccountID, v))
}

// BankAccountIDContains applies the Contains predicate on the "bank_account_id" field.
func BankAccountIDContains(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldContains(FieldBankAccountID, v))
}

// BankAccountIDHasPrefix applies the HasPrefix predicate on the "bank_account_id" field.
func BankAccountIDHasPrefix(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldHasPrefix(FieldBankAccountID, v))
}

// BankAccountIDHasSuffix applies the HasSuffix predicate on the "bank_account_id" field.
func BankAccountIDHasSuffix(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldHasSuffix(FieldBankAccountID, v))
}

// BankAccountIDIsNil applies the IsNil predicate on the "bank_account_id" field.
func BankAccountIDIsNil() predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldIsNull(FieldBankAccountID))
}

// BankAccountIDNotNil applies the NotNil predicate on the "bank_account_id" field.
func BankAccountIDNotNil() predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNotNull(FieldBankAccountID))
}

// BankAccountIDEqualFold applies the EqualFold predicate on the "bank_account_id" field.
func BankAccountIDEqualFold(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEqualFold(FieldBankAccountID, v))
}

// BankAccountIDContainsFold applies the ContainsFold predicate on the "bank_account_id" field.
func BankAccountIDContainsFold(v string) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldContainsFold(FieldBankAccountID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.FieldLTE(FieldAmount, v))
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.PayrollEntry {
	return predicate.PayrollEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.PayrollBatch) predicate.PayrollEntry {
	return predicate.PayrollEntry(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PayrollEntry) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PayrollEntry) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PayrollEntry) predicate.PayrollEntry {
	return predicate.PayrollEntry(sql.NotPredicates(p))
}
