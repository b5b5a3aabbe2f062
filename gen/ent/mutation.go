// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/document"
	"github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	"github.com/sidepp-ar/docingest/gen/ent/payrollentry"
	"github.com/sidepp-ar/docingest/gen/ent/predicate"
	"github.com/sidepp-ar/docingest/gen/ent/transfer"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument     = "Document"
	TypePayrollBatch = "PayrollBatch"
	TypePayrollEntry = "PayrollEntry"
	TypeTransfer     = "Transfer"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	filename             *string
	natural_key          *string
	doc_type             *string
	status               *string
	error_message        *string
	processed_at         *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	payroll_batch        *uuid.UUID
	clearedpayroll_batch bool
	transfer             *uuid.UUID
	clearedtransfer      bool
	done                 bool
	oldValue             func(context.Context) (*Document, error)
	predicates           []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetNaturalKey sets the "natural_key" field.
func (m *DocumentMutation) SetNaturalKey(s string) {
	m.natural_key = &s
}

// NaturalKey returns the value of the "natural_key" field in the mutation.
func (m *DocumentMutation) NaturalKey() (r string, exists bool) {
	v := m.natural_key
	if v == nil {
		return
	}
	return *v, true
}

// OldNaturalKey returns the old "natural_key" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldNaturalKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNaturalKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNaturalKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNaturalKey: %w", err)
	}
	return oldValue.NaturalKey, nil
}

// ResetNaturalKey resets all changes to the "natural_key" field.
func (m *DocumentMutation) ResetNaturalKey() {
	m.natural_key = nil
}

// SetDocType sets the "doc_type" field.
func (m *DocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *DocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *DocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[document.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, document.FieldErrorMessage)
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPayrollBatchID sets the "payroll_batch" edge to the PayrollBatch entity by id.
func (m *DocumentMutation) SetPayrollBatchID(id uuid.UUID) {
	m.payroll_batch = &id
}

// ClearPayrollBatch clears the "payroll_batch" edge to the PayrollBatch entity.
func (m *DocumentMutation) ClearPayrollBatch() {
	m.clearedpayroll_batch = true
}

// PayrollBatchCleared reports if the "payroll_batch" edge to the PayrollBatch entity was cleared.
func (m *DocumentMutation) PayrollBatchCleared() bool {
	return m.clearedpayroll_batch
}

// PayrollBatchID returns the "payroll_batch" edge ID in the mutation.
func (m *DocumentMutation) PayrollBatchID() (id uuid.UUID, exists bool) {
	if m.payroll_batch != nil {
		return *m.payroll_batch, true
	}
	return
}

// PayrollBatchIDs returns the "payroll_batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PayrollBatchID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) PayrollBatchIDs() (ids []uuid.UUID) {
	if id := m.payroll_batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPayrollBatch resets all changes to the "payroll_batch" edge.
func (m *DocumentMutation) ResetPayrollBatch() {
	m.payroll_batch = nil
	m.clearedpayroll_batch = false
}

// SetTransferID sets the "transfer" edge to the Transfer entity by id.
func (m *DocumentMutation) SetTransferID(id uuid.UUID) {
	m.transfer = &id
}

// ClearTransfer clears the "transfer" edge to the Transfer entity.
func (m *DocumentMutation) ClearTransfer() {
	m.clearedtransfer = true
}

// TransferCleared reports if the "transfer" edge to the Transfer entity was cleared.
func (m *DocumentMutation) TransferCleared() bool {
	return m.clearedtransfer
}

// TransferID returns the "transfer" edge ID in the mutation.
func (m *DocumentMutation) TransferID() (id uuid.UUID, exists bool) {
	if m.transfer != nil {
		return *m.transfer, true
	}
	return
}

// TransferIDs returns the "transfer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TransferID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) TransferIDs() (ids []uuid.UUID) {
	if id := m.transfer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTransfer resets all changes to the "transfer" edge.
func (m *DocumentMutation) ResetTransfer() {
	m.transfer = nil
	m.clearedtransfer = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.natural_key != nil {
		fields = append(fields, document.FieldNaturalKey)
	}
	if m.doc_type != nil {
		fields = append(fields, document.FieldDocType)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldNaturalKey:
		return m.NaturalKey()
	case document.FieldDocType:
		return m.DocType()
	case document.FieldStatus:
		return m.Status()
	case document.FieldErrorMessage:
		return m.ErrorMessage()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldNaturalKey:
		return m.OldNaturalKey(ctx)
	case document.FieldDocType:
		return m.OldDocType(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldNaturalKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNaturalKey(v)
		return nil
	case document.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldErrorMessage) {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldNaturalKey:
		m.ResetNaturalKey()
		return nil
	case document.FieldDocType:
		m.ResetDocType()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.payroll_batch != nil {
		edges = append(edges, document.EdgePayrollBatch)
	}
	if m.transfer != nil {
		edges = append(edges, document.EdgeTransfer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePayrollBatch:
		if id := m.payroll_batch; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeTransfer:
		if id := m.transfer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpayroll_batch {
		edges = append(edges, document.EdgePayrollBatch)
	}
	if m.clearedtransfer {
		edges = append(edges, document.EdgeTransfer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgePayrollBatch:
		return m.clearedpayroll_batch
	case document.EdgeTransfer:
		return m.clearedtransfer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgePayrollBatch:
		m.ClearPayrollBatch()
		return nil
	case document.EdgeTransfer:
		m.ClearTransfer()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgePayrollBatch:
		m.ResetPayrollBatch()
		return nil
	case document.EdgeTransfer:
		m.ResetTransfer()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// PayrollBatchMutation represents an operation that mutates the PayrollBatch nodes in the graph.
type PayrollBatchMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	period          *string
	period_fallback *bool
	total           *float64
	addtotal        *float64
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	entries         map[uuid.UUID]struct{}
	removedentries  map[uuid.UUID]struct{}
	clearedentries  bool
	done            bool
	oldValue        func(context.Context) (*PayrollBatch, error)
	predicates      []predicate.PayrollBatch
}

var _ ent.Mutation = (*PayrollBatchMutation)(nil)

// payrollbatchOption allows management of the mutation configuration using functional options.
type payrollbatchOption func(*PayrollBatchMutation)

// newPayrollBatchMutation creates new mutation for the PayrollBatch entity.
func newPayrollBatchMutation(c config, op Op, opts ...payrollbatchOption) *PayrollBatchMutation {
	m := &PayrollBatchMutation{
		config:        c,
		op:            op,
		typ:           TypePayrollBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPayrollBatchID sets the ID field of the mutation.
func withPayrollBatchID(id uuid.UUID) payrollbatchOption {
	return func(m *PayrollBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *PayrollBatch
		)
		m.oldValue = func(ctx context.Context) (*PayrollBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PayrollBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPayrollBatch sets the old PayrollBatch of the mutation.
func withPayrollBatch(node *PayrollBatch) payrollbatchOption {
	return func(m *PayrollBatchMutation) {
		m.oldValue = func(context.Context) (*PayrollBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PayrollBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PayrollBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PayrollBatch entities.
func (m *PayrollBatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PayrollBatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PayrollBatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PayrollBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *PayrollBatchMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *PayrollBatchMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the PayrollBatch entity.
// If the PayrollBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollBatchMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *PayrollBatchMutation) ResetDocumentID() {
	m.document = nil
}

// SetPeriod sets the "period" field.
func (m *PayrollBatchMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *PayrollBatchMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the PayrollBatch entity.
// If the PayrollBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollBatchMutation) OldPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *PayrollBatchMutation) ResetPeriod() {
	m.period = nil
}

// SetPeriodFallback sets the "period_fallback" field.
func (m *PayrollBatchMutation) SetPeriodFallback(b bool) {
	m.period_fallback = &b
}

// PeriodFallback returns the value of the "period_fallback" field in the mutation.
func (m *PayrollBatchMutation) PeriodFallback() (r bool, exists bool) {
	v := m.period_fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodFallback returns the old "period_fallback" field's value of the PayrollBatch entity.
// If the PayrollBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollBatchMutation) OldPeriodFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodFallback: %w", err)
	}
	return oldValue.PeriodFallback, nil
}

// ResetPeriodFallback resets all changes to the "period_fallback" field.
func (m *PayrollBatchMutation) ResetPeriodFallback() {
	m.period_fallback = nil
}

// SetTotal sets the "total" field.
func (m *PayrollBatchMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *PayrollBatchMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the PayrollBatch entity.
// If the PayrollBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollBatchMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *PayrollBatchMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *PayrollBatchMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *PayrollBatchMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *PayrollBatchMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[payrollbatch.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *PayrollBatchMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *PayrollBatchMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *PayrollBatchMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddEntryIDs adds the "entries" edge to the PayrollEntry entity by ids.
func (m *PayrollBatchMutation) AddEntryIDs(ids ...uuid.UUID) {
	if m.entries == nil {
		m.entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the PayrollEntry entity.
func (m *PayrollBatchMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the PayrollEntry entity was cleared.
func (m *PayrollBatchMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the PayrollEntry entity by IDs.
func (m *PayrollBatchMutation) RemoveEntryIDs(ids ...uuid.UUID) {
	if m.removedentries == nil {
		m.removedentries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the PayrollEntry entity.
func (m *PayrollBatchMutation) RemovedEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *PayrollBatchMutation) EntriesIDs() (ids []uuid.UUID) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *PayrollBatchMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// Where appends a list predicates to the PayrollBatchMutation builder.
func (m *PayrollBatchMutation) Where(ps ...predicate.PayrollBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PayrollBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PayrollBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PayrollBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PayrollBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PayrollBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PayrollBatch).
func (m *PayrollBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PayrollBatchMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.document != nil {
		fields = append(fields, payrollbatch.FieldDocumentID)
	}
	if m.period != nil {
		fields = append(fields, payrollbatch.FieldPeriod)
	}
	if m.period_fallback != nil {
		fields = append(fields, payrollbatch.FieldPeriodFallback)
	}
	if m.total != nil {
		fields = append(fields, payrollbatch.FieldTotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PayrollBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case payrollbatch.FieldDocumentID:
		return m.DocumentID()
	case payrollbatch.FieldPeriod:
		return m.Period()
	case payrollbatch.FieldPeriodFallback:
		return m.PeriodFallback()
	case payrollbatch.FieldTotal:
		return m.Total()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PayrollBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case payrollbatch.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case payrollbatch.FieldPeriod:
		return m.OldPeriod(ctx)
	case payrollbatch.FieldPeriodFallback:
		return m.OldPeriodFallback(ctx)
	case payrollbatch.FieldTotal:
		return m.OldTotal(ctx)
	}
	return nil, fmt.Errorf("unknown PayrollBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayrollBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case payrollbatch.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case payrollbatch.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case payrollbatch.FieldPeriodFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodFallback(v)
		return nil
	case payrollbatch.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	}
	return fmt.Errorf("unknown PayrollBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PayrollBatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, payrollbatch.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PayrollBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case payrollbatch.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayrollBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case payrollbatch.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown PayrollBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PayrollBatchMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PayrollBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PayrollBatchMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PayrollBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PayrollBatchMutation) ResetField(name string) error {
	switch name {
	case payrollbatch.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case payrollbatch.FieldPeriod:
		m.ResetPeriod()
		return nil
	case payrollbatch.FieldPeriodFallback:
		m.ResetPeriodFallback()
		return nil
	case payrollbatch.FieldTotal:
		m.ResetTotal()
		return nil
	}
	return fmt.Errorf("unknown PayrollBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PayrollBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, payrollbatch.EdgeDocument)
	}
	if m.entries != nil {
		edges = append(edges, payrollbatch.EdgeEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PayrollBatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case payrollbatch.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case payrollbatch.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PayrollBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedentries != nil {
		edges = append(edges, payrollbatch.EdgeEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PayrollBatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case payrollbatch.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PayrollBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, payrollbatch.EdgeDocument)
	}
	if m.clearedentries {
		edges = append(edges, payrollbatch.EdgeEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PayrollBatchMutation) EdgeCleared(name string) bool {
	switch name {
	case payrollbatch.EdgeDocument:
		return m.cleareddocument
	case payrollbatch.EdgeEntries:
		return m.clearedentries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PayrollBatchMutation) ClearEdge(name string) error {
	switch name {
	case payrollbatch.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown PayrollBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PayrollBatchMutation) ResetEdge(name string) error {
	switch name {
	case payrollbatch.EdgeDocument:
		m.ResetDocument()
		return nil
	case payrollbatch.EdgeEntries:
		m.ResetEntries()
		return nil
	}
	return fmt.Errorf("unknown PayrollBatch edge %s", name)
}

// PayrollEntryMutation represents an operation that mutates the PayrollEntry nodes in the graph.
type PayrollEntryMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	last_name       *string
	first_name      *string
	national_id     *string
	bank_account_id *string
	amount          *float64
	addamount       *float64
	clearedFields   map[string]struct{}
	batch           *uuid.UUID
	clearedbatch    bool
	done            bool
	oldValue        func(context.Context) (*PayrollEntry, error)
	predicates      []predicate.PayrollEntry
}

var _ ent.Mutation = (*PayrollEntryMutation)(nil)

// payrollentryOption allows management of the mutation configuration using functional options.
type payrollentryOption func(*PayrollEntryMutation)

// newPayrollEntryMutation creates new mutation for the PayrollEntry entity.
func newPayrollEntryMutation(c config, op Op, opts ...payrollentryOption) *PayrollEntryMutation {
	m := &PayrollEntryMutation{
		config:        c,
		op:            op,
		typ:           TypePayrollEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPayrollEntryID sets the ID field of the mutation.
func withPayrollEntryID(id uuid.UUID) payrollentryOption {
	return func(m *PayrollEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *PayrollEntry
		)
		m.oldValue = func(ctx context.Context) (*PayrollEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PayrollEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPayrollEntry sets the old PayrollEntry of the mutation.
func withPayrollEntry(node *PayrollEntry) payrollentryOption {
	return func(m *PayrollEntryMutation) {
		m.oldValue = func(context.Context) (*PayrollEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PayrollEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PayrollEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PayrollEntry entities.
func (m *PayrollEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PayrollEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PayrollEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PayrollEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchID sets the "batch_id" field.
func (m *PayrollEntryMutation) SetBatchID(u uuid.UUID) {
	m.batch = &u
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *PayrollEntryMutation) BatchID() (r uuid.UUID, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the PayrollEntry entity.
// If the PayrollEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollEntryMutation) OldBatchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *PayrollEntryMutation) ResetBatchID() {
	m.batch = nil
}

// SetLastName sets the "last_name" field.
func (m *PayrollEntryMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PayrollEntryMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the PayrollEntry entity.
// If the PayrollEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollEntryMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PayrollEntryMutation) ResetLastName() {
	m.last_name = nil
}

// SetFirstName sets the "first_name" field.
func (m *PayrollEntryMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PayrollEntryMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the PayrollEntry entity.
// If the PayrollEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollEntryMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PayrollEntryMutation) ResetFirstName() {
	m.first_name = nil
}

// SetNationalID sets the "national_id" field.
func (m *PayrollEntryMutation) SetNationalID(s string) {
	m.national_id = &s
}

// NationalID returns the value of the "national_id" field in the mutation.
func (m *PayrollEntryMutation) NationalID() (r string, exists bool) {
	v := m.national_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalID returns the old "national_id" field's value of the PayrollEntry entity.
// If the PayrollEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollEntryMutation) OldNationalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalID: %w", err)
	}
	return oldValue.NationalID, nil
}

// ClearNationalID clears the value of the "national_id" field.
func (m *PayrollEntryMutation) ClearNationalID() {
	m.national_id = nil
	m.clearedFields[payrollentry.FieldNationalID] = struct{}{}
}

// NationalIDCleared returns if the "national_id" field was cleared in this mutation.
func (m *PayrollEntryMutation) NationalIDCleared() bool {
	_, ok := m.clearedFields[payrollentry.FieldNationalID]
	return ok
}

// ResetNationalID resets all changes to the "national_id" field.
func (m *PayrollEntryMutation) ResetNationalID() {
	m.national_id = nil
	delete(m.clearedFields, payrollentry.FieldNationalID)
}

// SetBankAccountID sets the "bank_account_id" field.
func (m *PayrollEntryMutation) SetBankAccountID(s string) {
	m.bank_account_id = &s
}

// BankAccountID returns the value of the "bank_account_id" field in the mutation.
func (m *PayrollEntryMutation) BankAccountID() (r string, exists bool) {
	v := m.bank_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBankAccountID returns the old "bank_account_id" field's value of the PayrollEntry entity.
// If the PayrollEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollEntryMutation) OldBankAccountID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankAccountID: %w", err)
	}
	return oldValue.BankAccountID, nil
}

// ClearBankAccountID clears the value of the "bank_account_id" field.
func (m *PayrollEntryMutation) ClearBankAccountID() {
	m.bank_account_id = nil
	m.clearedFields[payrollentry.FieldBankAccountID] = struct{}{}
}

// BankAccountIDCleared returns if the "bank_account_id" field was cleared in this mutation.
func (m *PayrollEntryMutation) BankAccountIDCleared() bool {
	_, ok := m.clearedFields[payrollentry.FieldBankAccountID]
	return ok
}

// ResetBankAccountID resets all changes to the "bank_account_id" field.
func (m *PayrollEntryMutation) ResetBankAccountID() {
	m.bank_account_id = nil
	delete(m.clearedFields, payrollentry.FieldBankAccountID)
}

// SetAmount sets the "amount" field.
func (m *PayrollEntryMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *PayrollEntryMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the PayrollEntry entity.
// If the PayrollEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayrollEntryMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *PayrollEntryMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *PayrollEntryMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *PayrollEntryMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// ClearBatch clears the "batch" edge to the PayrollBatch entity.
func (m *PayrollEntryMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[payrollentry.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the PayrollBatch entity was cleared.
func (m *PayrollEntryMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *PayrollEntryMutation) BatchIDs() (ids []uuid.UUID) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *PayrollEntryMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the PayrollEntryMutation builder.
func (m *PayrollEntryMutation) Where(ps ...predicate.PayrollEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PayrollEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PayrollEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PayrollEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PayrollEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PayrollEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PayrollEntry).
func (m *PayrollEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PayrollEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.batch != nil {
		fields = append(fields, payrollentry.FieldBatchID)
	}
	if m.last_name != nil {
		fields = append(fields, payrollentry.FieldLastName)
	}
	if m.first_name != nil {
		fields = append(fields, payrollentry.FieldFirstName)
	}
	if m.national_id != nil {
		fields = append(fields, payrollentry.FieldNationalID)
	}
	if m.bank_account_id != nil {
		fields = append(fields, payrollentry.FieldBankAccountID)
	}
	if m.amount != nil {
		fields = append(fields, payrollentry.FieldAmount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PayrollEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case payrollentry.FieldBatchID:
		return m.BatchID()
	case payrollentry.FieldLastName:
		return m.LastName()
	case payrollentry.FieldFirstName:
		return m.FirstName()
	case payrollentry.FieldNationalID:
		return m.NationalID()
	case payrollentry.FieldBankAccountID:
		return m.BankAccountID()
	case payrollentry.FieldAmount:
		return m.Amount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PayrollEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case payrollentry.FieldBatchID:
		return m.OldBatchID(ctx)
	case payrollentry.FieldLastName:
		return m.OldLastName(ctx)
	case payrollentry.FieldFirstName:
		return m.OldFirstName(ctx)
	case payrollentry.FieldNationalID:
		return m.OldNationalID(ctx)
	case payrollentry.FieldBankAccountID:
		return m.OldBankAccountID(ctx)
	case payrollentry.FieldAmount:
		return m.OldAmount(ctx)
	}
	return nil, fmt.Errorf("unknown PayrollEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayrollEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case payrollentry.FieldBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case payrollentry.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case payrollentry.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case payrollentry.FieldNationalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalID(v)
		return nil
	case payrollentry.FieldBankAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankAccountID(v)
		return nil
	case payrollentry.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	}
	return fmt.Errorf("unknown PayrollEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PayrollEntryMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, payrollentry.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PayrollEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case payrollentry.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayrollEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case payrollentry.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown PayrollEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PayrollEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(payrollentry.FieldNationalID) {
		fields = append(fields, payrollentry.FieldNationalID)
	}
	if m.FieldCleared(payrollentry.FieldBankAccountID) {
		fields = append(fields, payrollentry.FieldBankAccountID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PayrollEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PayrollEntryMutation) ClearField(name string) error {
	switch name {
	case payrollentry.FieldNationalID:
		m.ClearNationalID()
		return nil
	case payrollentry.FieldBankAccountID:
		m.ClearBankAccountID()
		return nil
	}
	return fmt.Errorf("unknown PayrollEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PayrollEntryMutation) ResetField(name string) error {
	switch name {
	case payrollentry.FieldBatchID:
		m.ResetBatchID()
		return nil
	case payrollentry.FieldLastName:
		m.ResetLastName()
		return nil
	case payrollentry.FieldFirstName:
		m.ResetFirstName()
		return nil
	case payrollentry.FieldNationalID:
		m.ResetNationalID()
		return nil
	case payrollentry.FieldBankAccountID:
		m.ResetBankAccountID()
		return nil
	case payrollentry.FieldAmount:
		m.ResetAmount()
		return nil
	}
	return fmt.Errorf("unknown PayrollEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PayrollEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batch != nil {
		edges = append(edges, payrollentry.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PayrollEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case payrollentry.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PayrollEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PayrollEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PayrollEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatch {
		edges = append(edges, payrollentry.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PayrollEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case payrollentry.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PayrollEntryMutation) ClearEdge(name string) error {
	switch name {
	case payrollentry.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown PayrollEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PayrollEntryMutation) ResetEdge(name string) error {
	switch name {
	case payrollentry.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown PayrollEntry edge %s", name)
}

// TransferMutation represents an operation that mutates the Transfer nodes in the graph.
type TransferMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	amount            *float64
	addamount         *float64
	currency          *string
	source_account_id *string
	dest_account_id   *string
	reference         *string
	operation_date    *time.Time
	date_fallback     *bool
	clearedFields     map[string]struct{}
	document          *uuid.UUID
	cleareddocument   bool
	done              bool
	oldValue          func(context.Context) (*Transfer, error)
	predicates        []predicate.Transfer
}

var _ ent.Mutation = (*TransferMutation)(nil)

// transferOption allows management of the mutation configuration using functional options.
type transferOption func(*TransferMutation)

// newTransferMutation creates new mutation for the Transfer entity.
func newTransferMutation(c config, op Op, opts ...transferOption) *TransferMutation {
	m := &TransferMutation{
		config:        c,
		op:            op,
		typ:           TypeTransfer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransferID sets the ID field of the mutation.
func withTransferID(id uuid.UUID) transferOption {
	return func(m *TransferMutation) {
		var (
			err   error
			once  sync.Once
			value *Transfer
		)
		m.oldValue = func(ctx context.Context) (*Transfer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transfer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransfer sets the old Transfer of the mutation.
func withTransfer(node *Transfer) transferOption {
	return func(m *TransferMutation) {
		m.oldValue = func(context.Context) (*Transfer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransferMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransferMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transfer entities.
func (m *TransferMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransferMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransferMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transfer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *TransferMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *TransferMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Transfer entity.
// If the Transfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *TransferMutation) ResetDocumentID() {
	m.document = nil
}

// SetAmount sets the "amount" field.
func (m *TransferMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *TransferMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Transfer entity.
// If the Transfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *TransferMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *TransferMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *TransferMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrency sets the "currency" field.
func (m *TransferMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *TransferMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Transfer entity.
// If the Transfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *TransferMutation) ResetCurrency() {
	m.currency = nil
}

// SetSourceAccountID sets the "source_account_id" field.
func (m *TransferMutation) SetSourceAccountID(s string) {
	m.source_account_id = &s
}

// SourceAccountID returns the value of the "source_account_id" field in the mutation.
func (m *TransferMutation) SourceAccountID() (r string, exists bool) {
	v := m.source_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAccountID returns the old "source_account_id" field's value of the Transfer entity.
// If the Transfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferMutation) OldSourceAccountID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAccountID: %w", err)
	}
	return oldValue.SourceAccountID, nil
}

// ClearSourceAccountID clears the value of the "source_account_id" field.
func (m *TransferMutation) ClearSourceAccountID() {
	m.source_account_id = nil
	m.clearedFields[transfer.FieldSourceAccountID] = struct{}{}
}

// SourceAccountIDCleared returns if the "source_account_id" field was cleared in this mutation.
func (m *TransferMutation) SourceAccountIDCleared() bool {
	_, ok := m.clearedFields[transfer.FieldSourceAccountID]
	return ok
}

// ResetSourceAccountID resets all changes to the "source_account_id" field.
func (m *TransferMutation) ResetSourceAccountID() {
	m.source_account_id = nil
	delete(m.clearedFields, transfer.FieldSourceAccountID)
}

// SetDestAccountID sets the "dest_account_id" field.
func (m *TransferMutation) SetDestAccountID(s string) {
	m.dest_account_id = &s
}

// DestAccountID returns the value of the "dest_account_id" field in the mutation.
func (m *TransferMutation) DestAccountID() (r string, exists bool) {
	v := m.dest_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDestAccountID returns the old "dest_account_id" field's value of the Transfer entity.
// If the Transfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferMutation) OldDestAccountID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestAccountID: %w", err)
	}
	return oldValue.DestAccountID, nil
}

// ClearDestAccountID clears the value of the "dest_account_id" field.
func (m *TransferMutation) ClearDestAccountID() {
	m.dest_account_id = nil
	m.clearedFields[transfer.FieldDestAccountID] = struct{}{}
}

// DestAccountIDCleared returns if the "dest_account_id" field was cleared in this mutation.
func (m *TransferMutation) DestAccountIDCleared() bool {
	_, ok := m.clearedFields[transfer.FieldDestAccountID]
	return ok
}

// ResetDestAccountID resets all changes to the "dest_account_id" field.
func (m *TransferMutation) ResetDestAccountID() {
	m.dest_account_id = nil
	delete(m.clearedFields, transfer.FieldDestAccountID)
}

// SetReference sets the "reference" field.
func (m *TransferMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *TransferMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the Transfer entity.
// If the Transfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferMutation) OldReference(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ClearReference clears the value of the "reference" field.
func (m *TransferMutation) ClearReference() {
	m.reference = nil
	m.clearedFields[transfer.FieldReference] = struct{}{}
}

// ReferenceCleared returns if the "reference" field was cleared in this mutation.
func (m *TransferMutation) ReferenceCleared() bool {
	_, ok := m.clearedFields[transfer.FieldReference]
	return ok
}

// ResetReference resets all changes to the "reference" field.
func (m *TransferMutation) ResetReference() {
	m.reference = nil
	delete(m.clearedFields, transfer.FieldReference)
}

// SetOperationDate sets the "operation_date" field.
func (m *TransferMutation) SetOperationDate(t time.Time) {
	m.operation_date = &t
}

// OperationDate returns the value of the "operation_date" field in the mutation.
func (m *TransferMutation) OperationDate() (r time.Time, exists bool) {
	v := m.operation_date
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationDate returns the old "operation_date" field's value of the Transfer entity.
// If the Transfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferMutation) OldOperationDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationDate: %w", err)
	}
	return oldValue.OperationDate, nil
}

// ResetOperationDate resets all changes to the "operation_date" field.
func (m *TransferMutation) ResetOperationDate() {
	m.operation_date = nil
}

// SetDateFallback sets the "date_fallback" field.
func (m *TransferMutation) SetDateFallback(b bool) {
	m.date_fallback = &b
}

// DateFallback returns the value of the "date_fallback" field in the mutation.
func (m *TransferMutation) DateFallback() (r bool, exists bool) {
	v := m.date_fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldDateFallback returns the old "date_fallback" field's value of the Transfer entity.
// If the Transfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransferMutation) OldDateFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateFallback: %w", err)
	}
	return oldValue.DateFallback, nil
}

// ResetDateFallback resets all changes to the "date_fallback" field.
func (m *TransferMutation) ResetDateFallback() {
	m.date_fallback = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *TransferMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[transfer.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *TransferMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *TransferMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *TransferMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the TransferMutation builder.
func (m *TransferMutation) Where(ps ...predicate.Transfer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransferMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransferMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transfer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransferMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransferMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transfer).
func (m *TransferMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransferMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, transfer.FieldDocumentID)
	}
	if m.amount != nil {
		fields = append(fields, transfer.FieldAmount)
	}
	if m.currency != nil {
		fields = append(fields, transfer.FieldCurrency)
	}
	if m.source_account_id != nil {
		fields = append(fields, transfer.FieldSourceAccountID)
	}
	if m.dest_account_id != nil {
		fields = append(fields, transfer.FieldDestAccountID)
	}
	if m.reference != nil {
		fields = append(fields, transfer.FieldReference)
	}
	if m.operation_date != nil {
		fields = append(fields, transfer.FieldOperationDate)
	}
	if m.date_fallback != nil {
		fields = append(fields, transfer.FieldDateFallback)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransferMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transfer.FieldDocumentID:
		return m.DocumentID()
	case transfer.FieldAmount:
		return m.Amount()
	case transfer.FieldCurrency:
		return m.Currency()
	case transfer.FieldSourceAccountID:
		return m.SourceAccountID()
	case transfer.FieldDestAccountID:
		return m.DestAccountID()
	case transfer.FieldReference:
		return m.Reference()
	case transfer.FieldOperationDate:
		return m.OperationDate()
	case transfer.FieldDateFallback:
		return m.DateFallback()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransferMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transfer.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case transfer.FieldAmount:
		return m.OldAmount(ctx)
	case transfer.FieldCurrency:
		return m.OldCurrency(ctx)
	case transfer.FieldSourceAccountID:
		return m.OldSourceAccountID(ctx)
	case transfer.FieldDestAccountID:
		return m.OldDestAccountID(ctx)
	case transfer.FieldReference:
		return m.OldReference(ctx)
	case transfer.FieldOperationDate:
		return m.OldOperationDate(ctx)
	case transfer.FieldDateFallback:
		return m.OldDateFallback(ctx)
	}
	return nil, fmt.Errorf("unknown Transfer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransferMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transfer.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case transfer.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case transfer.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case transfer.FieldSourceAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAccountID(v)
		return nil
	case transfer.FieldDestAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestAccountID(v)
		return nil
	case transfer.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	case transfer.FieldOperationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationDate(v)
		return nil
	case transfer.FieldDateFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateFallback(v)
		return nil
	}
	return fmt.Errorf("unknown Transfer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransferMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, transfer.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransferMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transfer.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransferMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transfer.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Transfer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransferMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transfer.FieldSourceAccountID) {
		fields = append(fields, transfer.FieldSourceAccountID)
	}
	if m.FieldCleared(transfer.FieldDestAccountID) {
		fields = append(fields, transfer.FieldDestAccountID)
	}
	if m.FieldCleared(transfer.FieldReference) {
		fields = append(fields, transfer.FieldReference)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransferMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransferMutation) ClearField(name string) error {
	switch name {
	case transfer.FieldSourceAccountID:
		m.ClearSourceAccountID()
		return nil
	case transfer.FieldDestAccountID:
		m.ClearDestAccountID()
		return nil
	case transfer.FieldReference:
		m.ClearReference()
		return nil
	}
	return fmt.Errorf("unknown Transfer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransferMutation) ResetField(name string) error {
	switch name {
	case transfer.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case transfer.FieldAmount:
		m.ResetAmount()
		return nil
	case transfer.FieldCurrency:
		m.ResetCurrency()
		return nil
	case transfer.FieldSourceAccountID:
		m.ResetSourceAccountID()
		return nil
	case transfer.FieldDestAccountID:
		m.ResetDestAccountID()
		return nil
	case transfer.FieldReference:
		m.ResetReference()
		return nil
	case transfer.FieldOperationDate:
		m.ResetOperationDate()
		return nil
	case transfer.FieldDateFallback:
		m.ResetDateFallback()
		return nil
	}
	return fmt.Errorf("unknown Transfer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransferMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, transfer.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransferMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transfer.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransferMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransferMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransferMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, transfer.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransferMutation) EdgeCleared(name string) bool {
	switch name {
	case transfer.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransferMutation) ClearEdge(name string) error {
	switch name {
	case transfer.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Transfer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransferMutation) ResetEdge(name string) error {
	switch name {
	case transfer.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Transfer edge %s", name)
}
