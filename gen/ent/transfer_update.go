// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/document"
	"github.com/sidepp-ar/docingest/gen/ent/predicate"
	"github.com/sidepp-ar/docingest/gen/ent/transfer"
)

// TransferUpdate is the builder for updating Transfer entities.
type TransferUpdate struct {
	config
	hooks    []Hook
	mutation *TransferMutation
}

// Where appends a list predicates to the TransferUpdate builder.
func (_u *TransferUpdate) Where(ps ...predicate.Transfer) *TransferUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *TransferUpdate) SetDocumentID(v uuid.UUID) *TransferUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TransferUpdate) SetNillableDocumentID(v *uuid.UUID) *TransferUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransferUpdate) SetAmount(v float64) *TransferUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransferUpdate) SetNillableAmount(v *float64) *TransferUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransferUpdate) AddAmount(v float64) *TransferUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TransferUpdate) SetCurrency(v string) *TransferUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TransferUpdate) SetNillableCurrency(v *string) *TransferUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetSourceAccountID sets the "source_account_id" field.
func (_u *TransferUpdate) SetSourceAccountID(v string) *TransferUpdate {
	_u.mutation.SetSourceAccountID(v)
	return _u
}

// SetNillableSourceAccountID sets the "source_account_id" field if the given value is not nil.
func (_u *TransferUpdate) SetNillableSourceAccountID(v *string) *TransferUpdate {
	if v != nil {
		_u.SetSourceAccountID(*v)
	}
	return _u
}

// ClearSourceAccountID clears the value of the "source_account_id" field.
func (_u *TransferUpdate) ClearSourceAccountID() *TransferUpdate {
	_u.mutation.ClearSourceAccountID()
	return _u
}

// SetDestAccountID sets the "dest_account_id" field.
func (_u *TransferUpdate) SetDestAccountID(v string) *TransferUpdate {
	_u.mutation.SetDestAccountID(v)
	return _u
}

// SetNillableDestAccountID sets the "dest_account_id" field if the given value is not nil.
func (_u *TransferUpdate) SetNillableDestAccountID(v *string) *TransferUpdate {
	if v != nil {
		_u.SetDestAccountID(*v)
	}
	return _u
}

// ClearDestAccountID clears the value of the "dest_account_id" field.
func (_u *TransferUpdate) ClearDestAccountID() *TransferUpdate {
	_u.mutation.ClearDestAccountID()
	return _u
}

// SetReference sets the "reference" field.
func (_u *TransferUpdate) SetReference(v string) *TransferUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *TransferUpdate) SetNillableReference(v *string) *TransferUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *TransferUpdate) ClearReference() *TransferUpdate {
	_u.mutation.ClearReference()
	return _u
}

// SetOperationDate sets the "operation_date" field.
func (_u *TransferUpdate) SetOperationDate(v time.Time) *TransferUpdate {
	_u.mutation.SetOperationDate(v)
	return _u
}

// SetNillableOperationDate sets the "operation_date" field if the given value is not nil.
func (_u *TransferUpdate) SetNillableOperationDate(v *time.Time) *TransferUpdate {
	if v != nil {
		_u.SetOperationDate(*v)
	}
	return _u
}

// SetDateFallback sets the "date_fallback" field.
func (_u *TransferUpdate) SetDateFallback(v bool) *TransferUpdate {
	_u.mutation.SetDateFallback(v)
	return _u
}

// SetNillableDateFallback sets the "date_fallback" field if the given value is not nil.
func (_u *TransferUpdate) SetNillableDateFallback(v *bool) *TransferUpdate {
	if v != nil {
		_u.SetDateFallback(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *TransferUpdate) SetDocument(v *Document) *TransferUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the TransferMutation object of the builder.
func (_u *TransferUpdate) Mutation() *TransferMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *TransferUpdate) ClearDocument() *TransferUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransferUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransferUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransferUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransferUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransferUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := transfer.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Transfer.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := transfer.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Transfer.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceAccountID(); ok {
		if err := transfer.SourceAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "source_account_id", err: fmt.Errorf(`ent: validator failed for field "Transfer.source_account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DestAccountID(); ok {
		if err := transfer.DestAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "dest_account_id", err: fmt.Errorf(`ent: validator failed for field "Transfer.dest_account_id": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transfer.document"`)
	}
	return nil
}

func (_u *TransferUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transfer.Table, transfer.Columns, sqlgraph.NewFieldSpec(transfer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transfer.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transfer.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(transfer.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAccountID(); ok {
		_spec.SetField(transfer.FieldSourceAccountID, field.TypeString, value)
	}
	if _u.mutation.SourceAccountIDCleared() {
		_spec.ClearField(transfer.FieldSourceAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.DestAccountID(); ok {
		_spec.SetField(transfer.FieldDestAccountID, field.TypeString, value)
	}
	if _u.mutation.DestAccountIDCleared() {
		_spec.ClearField(transfer.FieldDestAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(transfer.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(transfer.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.OperationDate(); ok {
		_spec.SetField(transfer.FieldOperationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DateFallback(); ok {
		_spec.SetField(transfer.FieldDateFallback, field.TypeBool, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transfer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransferUpdateOne is the builder for updating a single Transfer entity.
type TransferUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransferMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *TransferUpdateOne) SetDocumentID(v uuid.UUID) *TransferUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TransferUpdateOne) SetNillableDocumentID(v *uuid.UUID) *TransferUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransferUpdateOne) SetAmount(v float64) *TransferUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransferUpdateOne) SetNillableAmount(v *float64) *TransferUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransferUpdateOne) AddAmount(v float64) *TransferUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TransferUpdateOne) SetCurrency(v string) *TransferUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TransferUpdateOne) SetNillableCurrency(v *string) *TransferUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetSourceAccountID sets the "source_account_id" field.
func (_u *TransferUpdateOne) SetSourceAccountID(v string) *TransferUpdateOne {
	_u.mutation.SetSourceAccountID(v)
	return _u
}

// SetNillableSourceAccountID sets the "source_account_id" field if the given value is not nil.
func (_u *TransferUpdateOne) SetNillableSourceAccountID(v *string) *TransferUpdateOne {
	if v != nil {
		_u.SetSourceAccountID(*v)
	}
	return _u
}

// ClearSourceAccountID clears the value of the "source_account_id" field.
func (_u *TransferUpdateOne) ClearSourceAccountID() *TransferUpdateOne {
	_u.mutation.ClearSourceAccountID()
	return _u
}

// SetDestAccountID sets the "dest_account_id" field.
func (_u *TransferUpdateOne) SetDestAccountID(v string) *TransferUpdateOne {
	_u.mutation.SetDestAccountID(v)
	return _u
}

// SetNillableDestAccountID sets the "dest_account_id" field if the given value is not nil.
func (_u *TransferUpdateOne) SetNillableDestAccountID(v *string) *TransferUpdateOne {
	if v != nil {
		_u.SetDestAccountID(*v)
	}
	return _u
}

// ClearDestAccountID clears the value of the "dest_account_id" field.
func (_u *TransferUpdateOne) ClearDestAccountID() *TransferUpdateOne {
	_u.mutation.ClearDestAccountID()
	return _u
}

// SetReference sets the "reference" field.
func (_u *TransferUpdateOne) SetReference(v string) *TransferUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *TransferUpdateOne) SetNillableReference(v *string) *TransferUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *TransferUpdateOne) ClearReference() *TransferUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// SetOperationDate sets the "operation_date" field.
func (_u *TransferUpdateOne) SetOperationDate(v time.Time) *TransferUpdateOne {
	_u.mutation.SetOperationDate(v)
	return _u
}

// SetNillableOperationDate sets the "operation_date" field if the given value is not nil.
func (_u *TransferUpdateOne) SetNillableOperationDate(v *time.Time) *TransferUpdateOne {
	if v != nil {
		_u.SetOperationDate(*v)
	}
	return _u
}

// SetDateFallback sets the "date_fallback" field.
func (_u *TransferUpdateOne) SetDateFallback(v bool) *TransferUpdateOne {
	_u.mutation.SetDateFallback(v)
	return _u
}

// SetNillableDateFallback sets the "date_fallback" field if the given value is not nil.
func (_u *TransferUpdateOne) SetNillableDateFallback(v *bool) *TransferUpdateOne {
	if v != nil {
		_u.SetDateFallback(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *TransferUpdateOne) SetDocument(v *Document) *TransferUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the TransferMutation object of the builder.
func (_u *TransferUpdateOne) Mutation() *TransferMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *TransferUpdateOne) ClearDocument() *TransferUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the TransferUpdate builder.
func (_u *TransferUpdateOne) Where(ps ...predicate.Transfer) *TransferUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransferUpdateOne) Select(field string, fields ...string) *TransferUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transfer entity.
func (_u *TransferUpdateOne) Save(ctx context.Context) (*Transfer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransferUpdateOne) SaveX(ctx context.Context) *Transfer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransferUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransferUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransferUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := transfer.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Transfer.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := transfer.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Transfer.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceAccountID(); ok {
		if err := transfer.SourceAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "source_account_id", err: fmt.Errorf(`ent: validator failed for field "Transfer.source_account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DestAccountID(); ok {
		if err := transfer.DestAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "dest_account_id", err: fmt.Errorf(`ent: validator failed for field "Transfer.dest_account_id": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transfer.document"`)
	}
	return nil
}

func (_u *TransferUpdateOne) sqlSave(ctx context.Context) (_node *Transfer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transfer.Table, transfer.Columns, sqlgraph.NewFieldSpec(transfer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transfer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transfer.FieldID)
		for _, f := range fields {
			if !transfer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transfer.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transfer.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transfer.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(transfer.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAccountID(); ok {
		_spec.SetField(transfer.FieldSourceAccountID, field.TypeString, value)
	}
	if _u.mutation.SourceAccountIDCleared() {
		_spec.ClearField(transfer.FieldSourceAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.DestAccountID(); ok {
		_spec.SetField(transfer.FieldDestAccountID, field.TypeString, value)
	}
	if _u.mutation.DestAccountIDCleared() {
		_spec.ClearField(transfer.FieldDestAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(transfer.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(transfer.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.OperationDate(); ok {
		_spec.SetField(transfer.FieldOperationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DateFallback(); ok {
		_spec.SetField(transfer.FieldDateFallback, field.TypeBool, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transfer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transfer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
