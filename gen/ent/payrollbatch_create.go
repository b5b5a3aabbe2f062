// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/document"
	"github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	"github.com/sidepp-ar/docingest/gen/ent/payrollentry"
)

// PayrollBatchCreate is the builder for creating a PayrollBatch entity.
type PayrollBatchCreate struct {
	config
	mutation *PayrollBatchMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *PayrollBatchCreate) SetDocumentID(v uuid.UUID) *PayrollBatchCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *PayrollBatchCreate) SetPeriod(v string) *PayrollBatchCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetPeriodFallback sets the "period_fallback" field.
func (_c *PayrollBatchCreate) SetPeriodFallback(v bool) *PayrollBatchCreate {
	_c.mutation.SetPeriodFallback(v)
	return _c
}

// SetNillablePeriodFallback sets the "period_fallback" field if the given value is not nil.
func (_c *PayrollBatchCreate) SetNillablePeriodFallback(v *bool) *PayrollBatchCreate {
	if v != nil {
		_c.SetPeriodFallback(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *PayrollBatchCreate) SetTotal(v float64) *PayrollBatchCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PayrollBatchCreate) SetID(v uuid.UUID) *PayrollBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PayrollBatchCreate) SetNillableID(v *uuid.UUID) *PayrollBatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *PayrollBatchCreate) SetDocument(v *Document) *PayrollBatchCreate {
	return _c.SetDocumentID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the PayrollEntry entity by IDs.
func (_c *PayrollBatchCreate) AddEntryIDs(ids ...uuid.UUID) *PayrollBatchCreate {
	_c.mutation.AddEntryIDs(ids...)
	return _c
}

// AddEntries adds the "entries" edges to the PayrollEntry entity.
func (_c *PayrollBatchCreate) AddEntries(v ...*PayrollEntry) *PayrollBatchCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntryIDs(ids...)
}

// Mutation returns the PayrollBatchMutation object of the builder.
func (_c *PayrollBatchCreate) Mutation() *PayrollBatchMutation {
	return _c.mutation
}

// Save creates the PayrollBatch in the database.
func (_c *PayrollBatchCreate) Save(ctx context.Context) (*PayrollBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PayrollBatchCreate) SaveX(ctx context.Context) *PayrollBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayrollBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayrollBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PayrollBatchCreate) defaults() {
	if _, ok := _c.mutation.PeriodFallback(); !ok {
		v := payrollbatch.DefaultPeriodFallback
		_c.mutation.SetPeriodFallback(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := payrollbatch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PayrollBatchCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "PayrollBatch.document_id"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "PayrollBatch.period"`)}
	}
	if v, ok := _c.mutation.Period(); ok {
		if err := payrollbatch.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "PayrollBatch.period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PeriodFallback(); !ok {
		return &ValidationError{Name: "period_fallback", err: errors.New(`ent: missing required field "PayrollBatch.period_fallback"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "PayrollBatch.total"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "PayrollBatch.document"`)}
	}
	return nil
}

func (_c *PayrollBatchCreate) sqlSave(ctx context.Context) (*PayrollBatch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PayrollBatchCreate) createSpec() (*PayrollBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &PayrollBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payrollbatch.Table, sqlgraph.NewFieldSpec(payrollbatch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(payrollbatch.FieldPeriod, field.TypeString, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.PeriodFallback(); ok {
		_spec.SetField(payrollbatch.FieldPeriodFallback, field.TypeBool, value)
		_node.PeriodFallback = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(payrollbatch.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PayrollBatchCreateBulk is the builder for creating many PayrollBatch entities in bulk.
type PayrollBatchCreateBulk struct {
	config
	err      error
	builders []*PayrollBatchCreate
}

// Save creates the PayrollBatch entities in the database.
func (_c *PayrollBatchCreateBulk) Save(ctx context.Context) ([]*PayrollBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PayrollBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PayrollBatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PayrollBatchCreateBulk) SaveX(ctx context.Context) []*PayrollBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayrollBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayrollBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
