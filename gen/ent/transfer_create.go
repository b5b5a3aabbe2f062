// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/document"
	"github.com/sidepp-ar/docingest/gen/ent/transfer"
)

// TransferCreate is the builder for creating a Transfer entity.
type TransferCreate struct {
	config
	mutation *TransferMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *TransferCreate) SetDocumentID(v uuid.UUID) *TransferCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *TransferCreate) SetAmount(v float64) *TransferCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *TransferCreate) SetCurrency(v string) *TransferCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetSourceAccountID sets the "source_account_id" field.
func (_c *TransferCreate) SetSourceAccountID(v string) *TransferCreate {
	_c.mutation.SetSourceAccountID(v)
	return _c
}

// SetNillableSourceAccountID sets the "source_account_id" field if the given value is not nil.
func (_c *TransferCreate) SetNillableSourceAccountID(v *string) *TransferCreate {
	if v != nil {
		_c.SetSourceAccountID(*v)
	}
	return _c
}

// SetDestAccountID sets the "dest_account_id" field.
func (_c *TransferCreate) SetDestAccountID(v string) *TransferCreate {
	_c.mutation.SetDestAccountID(v)
	return _c
}

// SetNillableDestAccountID sets the "dest_account_id" field if the given value is not nil.
func (_c *TransferCreate) SetNillableDestAccountID(v *string) *TransferCreate {
	if v != nil {
		_c.SetDestAccountID(*v)
	}
	return _c
}

// SetReference sets the "reference" field.
func (_c *TransferCreate) SetReference(v string) *TransferCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_c *TransferCreate) SetNillableReference(v *string) *TransferCreate {
	if v != nil {
		_c.SetReference(*v)
	}
	return _c
}

// SetOperationDate sets the "operation_date" field.
func (_c *TransferCreate) SetOperationDate(v time.Time) *TransferCreate {
	_c.mutation.SetOperationDate(v)
	return _c
}

// SetDateFallback sets the "date_fallback" field.
func (_c *TransferCreate) SetDateFallback(v bool) *TransferCreate {
	_c.mutation.SetDateFallback(v)
	return _c
}

// SetNillableDateFallback sets the "date_fallback" field if the given value is not nil.
func (_c *TransferCreate) SetNillableDateFallback(v *bool) *TransferCreate {
	if v != nil {
		_c.SetDateFallback(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransferCreate) SetID(v uuid.UUID) *TransferCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TransferCreate) SetNillableID(v *uuid.UUID) *TransferCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *TransferCreate) SetDocument(v *Document) *TransferCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the TransferMutation object of the builder.
func (_c *TransferCreate) Mutation() *TransferMutation {
	return _c.mutation
}

// Save creates the Transfer in the database.
func (_c *TransferCreate) Save(ctx context.Context) (*Transfer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransferCreate) SaveX(ctx context.Context) *Transfer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransferCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransferCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransferCreate) defaults() {
	if _, ok := _c.mutation.DateFallback(); !ok {
		v := transfer.DefaultDateFallback
		_c.mutation.SetDateFallback(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := transfer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransferCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Transfer.document_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Transfer.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := transfer.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Transfer.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Transfer.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := transfer.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Transfer.currency": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SourceAccountID(); ok {
		if err := transfer.SourceAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "source_account_id", err: fmt.Errorf(`ent: validator failed for field "Transfer.source_account_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DestAccountID(); ok {
		if err := transfer.DestAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "dest_account_id", err: fmt.Errorf(`ent: validator failed for field "Transfer.dest_account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OperationDate(); !ok {
		return &ValidationError{Name: "operation_date", err: errors.New(`ent: missing required field "Transfer.operation_date"`)}
	}
	if _, ok := _c.mutation.DateFallback(); !ok {
		return &ValidationError{Name: "date_fallback", err: errors.New(`ent: missing required field "Transfer.date_fallback"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Transfer.document"`)}
	}
	return nil
}

func (_c *TransferCreate) sqlSave(ctx context.Context) (*Transfer, error) {
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

func (_c *TransferCreate) createSpec() (*Transfer, *sqlgraph.CreateSpec) {
	var (
		_node = &Transfer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transfer.Table, sqlgraph.NewFieldSpec(transfer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(transfer.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(transfer.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.SourceAccountID(); ok {
		_spec.SetField(transfer.FieldSourceAccountID, field.TypeString, value)
		_node.SourceAccountID = &value
	}
	if value, ok := _c.mutation.DestAccountID(); ok {
		_spec.SetField(transfer.FieldDestAccountID, field.TypeString, value)
		_node.DestAccountID = &value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(transfer.FieldReference, field.TypeString, value)
		_node.Reference = &value
	}
	if value, ok := _c.mutation.OperationDate(); ok {
		_spec.SetField(transfer.FieldOperationDate, field.TypeTime, value)
		_node.OperationDate = value
	}
	if value, ok := _c.mutation.DateFallback(); ok {
		_spec.SetField(transfer.FieldDateFallback, field.TypeBool, value)
		_node.DateFallback = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   transfer.DocumentTable,
			Columns: []string{transfer.DocumentColumn},
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
	return _node, _spec
}

// TransferCreateBulk is the builder for creating many Transfer entities in bulk.
type TransferCreateBulk struct {
	config
	err      error
	builders []*TransferCreate
}

// Save creates the Transfer entities in the database.
func (_c *TransferCreateBulk) Save(ctx context.Context) ([]*Transfer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transfer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransferMutation)
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
func (_c *TransferCreateBulk) SaveX(ctx context.Context) []*Transfer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransferCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransferCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
