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
	"github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	"github.com/sidepp-ar/docingest/gen/ent/payrollentry"
	"github.com/sidepp-ar/docingest/gen/ent/predicate"
)

// PayrollEntryUpdate is the builder for updating PayrollEntry entities.
type PayrollEntryUpdate struct {
	config
	hooks    []Hook
	mutation *PayrollEntryMutation
}

// Where appends a list predicates to the PayrollEntryUpdate builder.
func (_u *PayrollEntryUpdate) Where(ps ...predicate.PayrollEntry) *PayrollEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *PayrollEntryUpdate) SetBatchID(v uuid.UUID) *PayrollEntryUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *PayrollEntryUpdate) SetNillableBatchID(v *uuid.UUID) *PayrollEntryUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PayrollEntryUpdate) SetLastName(v string) *PayrollEntryUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PayrollEntryUpdate) SetNillableLastName(v *string) *PayrollEntryUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PayrollEntryUpdate) SetFirstName(v string) *PayrollEntryUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PayrollEntryUpdate) SetNillableFirstName(v *string) *PayrollEntryUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *PayrollEntryUpdate) SetNationalID(v string) *PayrollEntryUpdate {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *PayrollEntryUpdate) SetNillableNationalID(v *string) *PayrollEntryUpdate {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *PayrollEntryUpdate) ClearNationalID() *PayrollEntryUpdate {
	_u.mutation.ClearNationalID()
	return _u
}

// SetBankAccountID sets the "bank_account_id" field.
func (_u *PayrollEntryUpdate) SetBankAccountID(v string) *PayrollEntryUpdate {
	_u.mutation.SetBankAccountID(v)
	return _u
}

// SetNillableBankAccountID sets the "bank_account_id" field if the given value is not nil.
func (_u *PayrollEntryUpdate) SetNillableBankAccountID(v *string) *PayrollEntryUpdate {
	if v != nil {
		_u.SetBankAccountID(*v)
	}
	return _u
}

// ClearBankAccountID clears the value of the "bank_account_id" field.
func (_u *PayrollEntryUpdate) ClearBankAccountID() *PayrollEntryUpdate {
	_u.mutation.ClearBankAccountID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PayrollEntryUpdate) SetAmount(v float64) *PayrollEntryUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PayrollEntryUpdate) SetNillableAmount(v *float64) *PayrollEntryUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PayrollEntryUpdate) AddAmount(v float64) *PayrollEntryUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetBatch sets the "batch" edge to the PayrollBatch entity.
func (_u *PayrollEntryUpdate) SetBatch(v *PayrollBatch) *PayrollEntryUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the PayrollEntryMutation object of the builder.
func (_u *PayrollEntryUpdate) Mutation() *PayrollEntryMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the PayrollBatch entity.
func (_u *PayrollEntryUpdate) ClearBatch() *PayrollEntryUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PayrollEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayrollEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PayrollEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayrollEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayrollEntryUpdate) check() error {
	if v, ok := _u.mutation.LastName(); ok {
		if err := payrollentry.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := payrollentry.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NationalID(); ok {
		if err := payrollentry.NationalIDValidator(v); err != nil {
			return &ValidationError{Name: "national_id", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.national_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankAccountID(); ok {
		if err := payrollentry.BankAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "bank_account_id", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.bank_account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := payrollentry.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.amount": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PayrollEntry.batch"`)
	}
	return nil
}

func (_u *PayrollEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payrollentry.Table, payrollentry.Columns, sqlgraph.NewFieldSpec(payrollentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(payrollentry.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(payrollentry.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(payrollentry.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(payrollentry.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccountID(); ok {
		_spec.SetField(payrollentry.FieldBankAccountID, field.TypeString, value)
	}
	if _u.mutation.BankAccountIDCleared() {
		_spec.ClearField(payrollentry.FieldBankAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(payrollentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(payrollentry.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.BatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payrollentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PayrollEntryUpdateOne is the builder for updating a single PayrollEntry entity.
type PayrollEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PayrollEntryMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *PayrollEntryUpdateOne) SetBatchID(v uuid.UUID) *PayrollEntryUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *PayrollEntryUpdateOne) SetNillableBatchID(v *uuid.UUID) *PayrollEntryUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PayrollEntryUpdateOne) SetLastName(v string) *PayrollEntryUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PayrollEntryUpdateOne) SetNillableLastName(v *string) *PayrollEntryUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PayrollEntryUpdateOne) SetFirstName(v string) *PayrollEntryUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PayrollEntryUpdateOne) SetNillableFirstName(v *string) *PayrollEntryUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *PayrollEntryUpdateOne) SetNationalID(v string) *PayrollEntryUpdateOne {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *PayrollEntryUpdateOne) SetNillableNationalID(v *string) *PayrollEntryUpdateOne {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *PayrollEntryUpdateOne) ClearNationalID() *PayrollEntryUpdateOne {
	_u.mutation.ClearNationalID()
	return _u
}

// SetBankAccountID sets the "bank_account_id" field.
func (_u *PayrollEntryUpdateOne) SetBankAccountID(v string) *PayrollEntryUpdateOne {
	_u.mutation.SetBankAccountID(v)
	return _u
}

// SetNillableBankAccountID sets the "bank_account_id" field if the given value is not nil.
func (_u *PayrollEntryUpdateOne) SetNillableBankAccountID(v *string) *PayrollEntryUpdateOne {
	if v != nil {
		_u.SetBankAccountID(*v)
	}
	return _u
}

// ClearBankAccountID clears the value of the "bank_account_id" field.
func (_u *PayrollEntryUpdateOne) ClearBankAccountID() *PayrollEntryUpdateOne {
	_u.mutation.ClearBankAccountID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PayrollEntryUpdateOne) SetAmount(v float64) *PayrollEntryUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PayrollEntryUpdateOne) SetNillableAmount(v *float64) *PayrollEntryUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PayrollEntryUpdateOne) AddAmount(v float64) *PayrollEntryUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetBatch sets the "batch" edge to the PayrollBatch entity.
func (_u *PayrollEntryUpdateOne) SetBatch(v *PayrollBatch) *PayrollEntryUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the PayrollEntryMutation object of the builder.
func (_u *PayrollEntryUpdateOne) Mutation() *PayrollEntryMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the PayrollBatch entity.
func (_u *PayrollEntryUpdateOne) ClearBatch() *PayrollEntryUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the PayrollEntryUpdate builder.
func (_u *PayrollEntryUpdateOne) Where(ps ...predicate.PayrollEntry) *PayrollEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PayrollEntryUpdateOne) Select(field string, fields ...string) *PayrollEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PayrollEntry entity.
func (_u *PayrollEntryUpdateOne) Save(ctx context.Context) (*PayrollEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayrollEntryUpdateOne) SaveX(ctx context.Context) *PayrollEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PayrollEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayrollEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayrollEntryUpdateOne) check() error {
	if v, ok := _u.mutation.LastName(); ok {
		if err := payrollentry.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := payrollentry.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NationalID(); ok {
		if err := payrollentry.NationalIDValidator(v); err != nil {
			return &ValidationError{Name: "national_id", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.national_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankAccountID(); ok {
		if err := payrollentry.BankAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "bank_account_id", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.bank_account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := payrollentry.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "PayrollEntry.amount": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PayrollEntry.batch"`)
	}
	return nil
}

func (_u *PayrollEntryUpdateOne) sqlSave(ctx context.Context) (_node *PayrollEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payrollentry.Table, payrollentry.Columns, sqlgraph.NewFieldSpec(payrollentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PayrollEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payrollentry.FieldID)
		for _, f := range fields {
			if !payrollentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != payrollentry.FieldID {
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
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(payrollentry.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(payrollentry.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(payrollentry.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(payrollentry.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccountID(); ok {
		_spec.SetField(payrollentry.FieldBankAccountID, field.TypeString, value)
	}
	if _u.mutation.BankAccountIDCleared() {
		_spec.ClearField(payrollentry.FieldBankAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(payrollentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(payrollentry.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.BatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PayrollEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payrollentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
