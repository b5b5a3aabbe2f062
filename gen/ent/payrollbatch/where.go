// Code generated by ent, DO NOT EDIT.

package payrollbatch

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldDocumentID, v))
}

// Period applies equality check predicate on the "period" field. It's identical to PeriodEQ.
func Period(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldPeriod, v))
}

// PeriodFallback applies equality check predicate on the "period_fallback" field. It's identical to PeriodFallbackEQ.
func PeriodFallback(v bool) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldPeriodFallback, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldTotal, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodGT applies the GT predicate on the "period" field.
func PeriodGT(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldGT(FieldPeriod, v))
}

// PeriodGTE applies the GTE predicate on the "period" field.
func PeriodGTE(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldGTE(FieldPeriod, v))
}

// PeriodLT applies the LT predicate on the "period" field.
func PeriodLT(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldLT(FieldPeriod, v))
}

// PeriodLTE applies the LTE predicate on the "period" field.
func PeriodLTE(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldLTE(FieldPeriod, v))
}

// PeriodContains applies the Contains predicate on the "period" field.
func PeriodContains(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldContains(FieldPeriod, v))
}

// PeriodHasPrefix applies the HasPrefix predicate on the "period" field.
func PeriodHasPrefix(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldHasPrefix(FieldPeriod, v))
}

// PeriodHasSuffix applies the HasSuffix predicate on the "period" field.
func PeriodHasSuffix(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldHasSuffix(FieldPeriod, v))
}

// PeriodEqualFold applies the EqualFold predicate on the "period" field.
func PeriodEqualFold(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEqualFold(FieldPeriod, v))
}

// PeriodContainsFold applies the ContainsFold predicate on the "period" field.
func PeriodContainsFold(v string) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldContainsFold(FieldPeriod, v))
}

// PeriodFallbackEQ applies the EQ predicate on the "period_fallback" field.
func PeriodFallbackEQ(v bool) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldPeriodFallback, v))
}

// PeriodFallbackNEQ applies the NEQ predicate on the "period_fallback" field.
func PeriodFallbackNEQ(v bool) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldNEQ(FieldPeriodFallback, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.FieldLTE(FieldTotal, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.PayrollBatch {
	return predicate.PayrollBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.PayrollBatch {
	return predicate.PayrollBatch(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntries applies the HasEdge predicate on the "entries" edge.
func HasEntries() predicate.PayrollBatch {
	return predicate.PayrollBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntriesTable, EntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntriesWith applies the HasEdge predicate on the "entries" edge with a given conditions (other predicates).
func HasEntriesWith(preds ...predicate.PayrollEntry) predicate.PayrollBatch {
	return predicate.PayrollBatch(func(s *sql.Selector) {
		step := newEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PayrollBatch) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PayrollBatch) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PayrollBatch) predicate.PayrollBatch {
	return predicate.PayrollBatch(sql.NotPredicates(p))
}
