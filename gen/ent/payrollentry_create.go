// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	"github.com/sidepp-ar/docingest/gen/ent/payrollentry"
)

// PayrollEntryCreate is the builder for creating a PayrollEntry entity.
type PayrollEntryCreate struct {
	config
	mutation *PayrollEntryMutation
	hooks    []Hook
}

// SetBatchID sets the "batch_id" field.
func (_c *PayrollEntryCreate) SetBatchID(v uuid.UUID) *PayrollEntryCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PayrollEntryCreate) SetLastName(v string) *PayrollEntryCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PayrollEntryCreate) SetFirstName(v string) *PayrollEntryCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNationalID sets the "national_id" field.
func (_c *PayrollEntryCreate) SetNationalID(v string) *PayrollEntryCreate {
	_c.mutation.SetNationalID(v)
	return _c
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_c *PayrollEntryCreate) SetNillableNationalID(v *string) *PayrollEntryCreate {
	if v != nil {
		_c.SetNationalID(*v)
	}
	return _c
}

// SetBankAccountID sets the "bank_account_id" field.
func (_c *PayrollEntryCreate) SetBankAccountID(v string) *PayrollEntryCreate {
	_c.mutation.SetBankAccountID(v)
	return _c
}

// SetNillableBankAccountID sets the "bank_account_id" field if the given value is not nil.
func (_c *PayrollEntryCreate) SetNillableBankAccountID(v *string) *PayrollEntryCreate {
	if v != nil {
		_c.SetBankAccountID(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PayrollEntryCreate) SetAmount(v float64) *PayrollEntryCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PayrollEntryCreate) SetID(v uuid.UUID) *PayrollEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PayrollEntryCreate) SetNillableID(v *uuid.UUID) *PayrollEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBatch sets the "batch" edge to the PayrollBatch entity.
func (_c *PayrollEntryCreate) SetBatch(v *PayrollBatch) *PayrollEntryCreate {
	return _c.SetBatchID(v.ID)
}

// Mutation returns the PayrollEntryMutation object of the builder.
func (_c *PayrollEntryCreate) Mutation() *PayrollEntryMutation {
	return _c.mutation
}

// Save creates the PayrollEntry in the database.
func (_c *PayrollEntryCreate) Save(ctx context.Context) (*PayrollEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PayrollEntryCreate) SaveX(ctx context.Context) *PayrollEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayrollEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayrollEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PayrollEntryCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := payrollentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PayrollEntryCreate) check() error {
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "PayrollEntry.batch_id"`)}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`ent: missing required field "PayrollEntry.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := payrollentry.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "PayrollEntry.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := payrollentry.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.first_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NationalID(); ok {
		if err := payrollentry.NationalIDValidator(v); err != nil {
			return &ValidationError{Name: "national_id", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.national_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BankAccountID(); ok {
		if err := payrollentry.BankAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "bank_account_id", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.bank_account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "PayrollEntry.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := payrollentry.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.amount": %w`, err)}
		}
	}
	if len(_c.mutation.BatchIDs()) == 0 {
		return &ValidationError{Name: "batch", err: errors.New(`ent: missing required edge "PayrollEntry.batch"`)}
	}
	return nil
}

func (_c *PayrollEntryCreate) sqlSave(ctx context.Context) (*PayrollEntry, error) {
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

func (_c *PayrollEntryCreate) createSpec() (*PayrollEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &PayrollEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payrollentry.Table, sqlgraph.NewFieldSpec(payrollentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(payrollentry.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(payrollentry.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.NationalID(); ok {
		_spec.SetField(payrollentry.FieldNationalID, field.TypeString, value)
		_node.NationalID = &value
	}
	if value, ok := _c.mutation.BankAccountID(); ok {
		_spec.SetField(payrollentry.FieldBankAccountID, field.TypeString, value)
		_node.BankAccountID = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(payrollentry.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payrollentry.BatchTable,
			Columns: []string{payrollentry.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payrollbatch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BatchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PayrollEntryCreateBulk is the builder for creating many PayrollEntry entities in bulk.
type PayrollEntryCreateBulk struct {
	config
	err      error
	builders []*PayrollEntryCreate
}

// Save creates the PayrollEntry entities in the database.
func (_c *PayrollEntryCreateBulk) Save(ctx context.Context) ([]*PayrollEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PayrollEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PayrollEntryMutation)
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
func (_c *PayrollEntryCreateBulk) SaveX(ctx context.Context) []*PayrollEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayrollEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayrollEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
