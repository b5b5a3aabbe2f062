// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/document"
	"github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	"github.com/sidepp-ar/docingest/gen/ent/payrollentry"
	"github.com/sidepp-ar/docingest/gen/ent/predicate"
)

// PayrollBatchUpdate is the builder for updating PayrollBatch entities.
type PayrollBatchUpdate struct {
	config
	hooks    []Hook
	mutation *PayrollBatchMutation
}

// Where appends a list predicates to the PayrollBatchUpdate builder.
func (_u *PayrollBatchUpdate) Where(ps ...predicate.PayrollBatch) *PayrollBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *PayrollBatchUpdate) SetDocumentID(v uuid.UUID) *PayrollBatchUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PayrollBatchUpdate) SetNillableDocumentID(v *uuid.UUID) *PayrollBatchUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *PayrollBatchUpdate) SetPeriod(v string) *PayrollBatchUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *PayrollBatchUpdate) SetNillablePeriod(v *string) *PayrollBatchUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetPeriodFallback sets the "period_fallback" field.
func (_u *PayrollBatchUpdate) SetPeriodFallback(v bool) *PayrollBatchUpdate {
	_u.mutation.SetPeriodFallback(v)
	return _u
}

// SetNillablePeriodFallback sets the "period_fallback" field if the given value is not nil.
func (_u *PayrollBatchUpdate) SetNillablePeriodFallback(v *bool) *PayrollBatchUpdate {
	if v != nil {
		_u.SetPeriodFallback(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *PayrollBatchUpdate) SetTotal(v float64) *PayrollBatchUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *PayrollBatchUpdate) SetNillableTotal(v *float64) *PayrollBatchUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *PayrollBatchUpdate) AddTotal(v float64) *PayrollBatchUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PayrollBatchUpdate) SetDocument(v *Document) *PayrollBatchUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the PayrollEntry entity by IDs.
func (_u *PayrollBatchUpdate) AddEntryIDs(ids ...uuid.UUID) *PayrollBatchUpdate {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the PayrollEntry entity.
func (_u *PayrollBatchUpdate) AddEntries(v ...*PayrollEntry) *PayrollBatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the PayrollBatchMutation object of the builder.
func (_u *PayrollBatchUpdate) Mutation() *PayrollBatchMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PayrollBatchUpdate) ClearDocument() *PayrollBatchUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearEntries clears all "entries" edges to the PayrollEntry entity.
func (_u *PayrollBatchUpdate) ClearEntries() *PayrollBatchUpdate {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to PayrollEntry entities by IDs.
func (_u *PayrollBatchUpdate) RemoveEntryIDs(ids ...uuid.UUID) *PayrollBatchUpdate {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to PayrollEntry entities.
func (_u *PayrollBatchUpdate) RemoveEntries(v ...*PayrollEntry) *PayrollBatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PayrollBatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayrollBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PayrollBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayrollBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayrollBatchUpdate) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := payrollbatch.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "PayrollBatch.period": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PayrollBatch.document"`)
	}
	return nil
}

func (_u *PayrollBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payrollbatch.Table, payrollbatch.Columns, sqlgraph.NewFieldSpec(payrollbatch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(payrollbatch.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeriodFallback(); ok {
		_spec.SetField(payrollbatch.FieldPeriodFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(payrollbatch.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(payrollbatch.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payrollbatch.DocumentTable,
			Columns: []string{payrollbatch.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payrollbatch.DocumentTable,
			Columns: []string{payrollbatch.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   payrollbatch.EntriesTable,
			Columns: []string{payrollbatch.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payrollentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   payrollbatch.EntriesTable,
			Columns: []string{payrollbatch.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payrollentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   payrollbatch.EntriesTable,
			Columns: []string{payrollbatch.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payrollentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payrollbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PayrollBatchUpdateOne is the builder for updating a single PayrollBatch entity.
type PayrollBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PayrollBatchMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *PayrollBatchUpdateOne) SetDocumentID(v uuid.UUID) *PayrollBatchUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PayrollBatchUpdateOne) SetNillableDocumentID(v *uuid.UUID) *PayrollBatchUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *PayrollBatchUpdateOne) SetPeriod(v string) *PayrollBatchUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *PayrollBatchUpdateOne) SetNillablePeriod(v *string) *PayrollBatchUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetPeriodFallback sets the "period_fallback" field.
func (_u *PayrollBatchUpdateOne) SetPeriodFallback(v bool) *PayrollBatchUpdateOne {
	_u.mutation.SetPeriodFallback(v)
	return _u
}

// SetNillablePeriodFallback sets the "period_fallback" field if the given value is not nil.
func (_u *PayrollBatchUpdateOne) SetNillablePeriodFallback(v *bool) *PayrollBatchUpdateOne {
	if v != nil {
		_u.SetPeriodFallback(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *PayrollBatchUpdateOne) SetTotal(v float64) *PayrollBatchUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *PayrollBatchUpdateOne) SetNillableTotal(v *float64) *PayrollBatchUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *PayrollBatchUpdateOne) AddTotal(v float64) *PayrollBatchUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PayrollBatchUpdateOne) SetDocument(v *Document) *PayrollBatchUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the PayrollEntry entity by IDs.
func (_u *PayrollBatchUpdateOne) AddEntryIDs(ids ...uuid.UUID) *PayrollBatchUpdateOne {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the PayrollEntry entity.
func (_u *PayrollBatchUpdateOne) AddEntries(v ...*PayrollEntry) *PayrollBatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the PayrollBatchMutation object of the builder.
func (_u *PayrollBatchUpdateOne) Mutation() *PayrollBatchMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PayrollBatchUpdateOne) ClearDocument() *PayrollBatchUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearEntries clears all "entries" edges to the PayrollEntry entity.
func (_u *PayrollBatchUpdateOne) ClearEntries() *PayrollBatchUpdateOne {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to PayrollEntry entities by IDs.
func (_u *PayrollBatchUpdateOne) RemoveEntryIDs(ids ...uuid.UUID) *PayrollBatchUpdateOne {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to PayrollEntry entities.
func (_u *PayrollBatchUpdateOne) RemoveEntries(v ...*PayrollEntry) *PayrollBatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Where appends a list predicates to the PayrollBatchUpdate builder.
func (_u *PayrollBatchUpdateOne) Where(ps ...predicate.PayrollBatch) *PayrollBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PayrollBatchUpdateOne) Select(field string, fields ...string) *PayrollBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PayrollBatch entity.
func (_u *PayrollBatchUpdateOne) Save(ctx context.Context) (*PayrollBatch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayrollBatchUpdateOne) SaveX(ctx context.Context) *PayrollBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PayrollBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayrollBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayrollBatchUpdateOne) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := payrollbatch.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "PayrollBatch.period": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PayrollBatch.document"`)
	}
	return nil
}

func (_u *PayrollBatchUpdateOne) sqlSave(ctx context.Context) (_node *PayrollBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payrollbatch.Table, payrollbatch.Columns, sqlgraph.NewFieldSpec(payrollbatch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PayrollBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payrollbatch.FieldID)
		for _, f := range fields {
			if !payrollbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != payrollbatch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(payrollbatch.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeriodFallback(); ok {
		_spec.SetField(payrollbatch.FieldPeriodFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(payrollbatch.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(payrollbatch.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payrollbatch.DocumentTable,
			Columns: []string{payrollbatch.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payrollbatch.DocumentTable,
			Columns: []string{payrollbatch.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   payrollbatch.EntriesTable,
			Columns: []string{payrollbatch.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payrollentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   payrollbatch.EntriesTable,
			Columns: []string{payrollbatch.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payrollentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   payrollbatch.EntriesTable,
			Columns: []string{payrollbatch.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payrollentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PayrollBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payrollbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
