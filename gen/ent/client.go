// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sidepp-ar/docingest/gen/ent/document"
	"github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	"github.com/sidepp-ar/docingest/gen/ent/payrollentry"
	"github.com/sidepp-ar/docingest/gen/ent/transfer"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// PayrollBatch is the client for interacting with the PayrollBatch builders.
	PayrollBatch *PayrollBatchClient
	// PayrollEntry is the client for interacting with the PayrollEntry builders.
	PayrollEntry *PayrollEntryClient
	// Transfer is the client for interacting with the Transfer builders.
	Transfer *TransferClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.PayrollBatch = NewPayrollBatchClient(c.config)
	c.PayrollEntry = NewPayrollEntryClient(c.config)
	c.Transfer = NewTransferClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Document:     NewDocumentClient(cfg),
		PayrollBatch: NewPayrollBatchClient(cfg),
		PayrollEntry: NewPayrollEntryClient(cfg),
		Transfer:     NewTransferClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Document:     NewDocumentClient(cfg),
		PayrollBatch: NewPayrollBatchClient(cfg),
		PayrollEntry: NewPayrollEntryClient(cfg),
		Transfer:     NewTransferClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Document.Use(hooks...)
	c.PayrollBatch.Use(hooks...)
	c.PayrollEntry.Use(hooks...)
	c.Transfer.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.PayrollBatch.Intercept(interceptors...)
	c.PayrollEntry.Intercept(interceptors...)
	c.Transfer.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *PayrollBatchMutation:
		return c.PayrollBatch.mutate(ctx, m)
	case *PayrollEntryMutation:
		return c.PayrollEntry.mutate(ctx, m)
	case *TransferMutation:
		return c.Transfer.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPayrollBatch queries the payroll_batch edge of a Document.
func (c *DocumentClient) QueryPayrollBatch(_m *Document) *PayrollBatchQuery {
	query := (&PayrollBatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(payrollbatch.Table, payrollbatch.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, document.PayrollBatchTable, document.PayrollBatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTransfer queries the transfer edge of a Document.
func (c *DocumentClient) QueryTransfer(_m *Document) *TransferQuery {
	query := (&TransferClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(transfer.Table, transfer.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, document.TransferTable, document.TransferColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// PayrollBatchClient is a client for the PayrollBatch schema.
type PayrollBatchClient struct {
	config
}

// NewPayrollBatchClient returns a client for the PayrollBatch from the given config.
func NewPayrollBatchClient(c config) *PayrollBatchClient {
	return &PayrollBatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payrollbatch.Hooks(f(g(h())))`.
func (c *PayrollBatchClient) Use(hooks ...Hook) {
	c.hooks.PayrollBatch = append(c.hooks.PayrollBatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payrollbatch.Intercept(f(g(h())))`.
func (c *PayrollBatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.PayrollBatch = append(c.inters.PayrollBatch, interceptors...)
}

// Create returns a builder for creating a PayrollBatch entity.
func (c *PayrollBatchClient) Create() *PayrollBatchCreate {
	mutation := newPayrollBatchMutation(c.config, OpCreate)
	return &PayrollBatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PayrollBatch entities.
func (c *PayrollBatchClient) CreateBulk(builders ...*PayrollBatchCreate) *PayrollBatchCreateBulk {
	return &PayrollBatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PayrollBatchClient) MapCreateBulk(slice any, setFunc func(*PayrollBatchCreate, int)) *PayrollBatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PayrollBatchCreateBulk{err: fmt.Errorf("calling to PayrollBatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PayrollBatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PayrollBatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PayrollBatch.
func (c *PayrollBatchClient) Update() *PayrollBatchUpdate {
	mutation := newPayrollBatchMutation(c.config, OpUpdate)
	return &PayrollBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PayrollBatchClient) UpdateOne(_m *PayrollBatch) *PayrollBatchUpdateOne {
	mutation := newPayrollBatchMutation(c.config, OpUpdateOne, withPayrollBatch(_m))
	return &PayrollBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PayrollBatchClient) UpdateOneID(id uuid.UUID) *PayrollBatchUpdateOne {
	mutation := newPayrollBatchMutation(c.config, OpUpdateOne, withPayrollBatchID(id))
	return &PayrollBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PayrollBatch.
func (c *PayrollBatchClient) Delete() *PayrollBatchDelete {
	mutation := newPayrollBatchMutation(c.config, OpDelete)
	return &PayrollBatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PayrollBatchClient) DeleteOne(_m *PayrollBatch) *PayrollBatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PayrollBatchClient) DeleteOneID(id uuid.UUID) *PayrollBatchDeleteOne {
	builder := c.Delete().Where(payrollbatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PayrollBatchDeleteOne{builder}
}

// Query returns a query builder for PayrollBatch.
func (c *PayrollBatchClient) Query() *PayrollBatchQuery {
	return &PayrollBatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayrollBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a PayrollBatch entity by its id.
func (c *PayrollBatchClient) Get(ctx context.Context, id uuid.UUID) (*PayrollBatch, error) {
	return c.Query().Where(payrollbatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PayrollBatchClient) GetX(ctx context.Context, id uuid.UUID) *PayrollBatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a PayrollBatch.
func (c *PayrollBatchClient) QueryDocument(_m *PayrollBatch) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(payrollbatch.Table, payrollbatch.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, payrollbatch.DocumentTable, payrollbatch.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntries queries the entries edge of a PayrollBatch.
func (c *PayrollBatchClient) QueryEntries(_m *PayrollBatch) *PayrollEntryQuery {
	query := (&PayrollEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(payrollbatch.Table, payrollbatch.FieldID, id),
			sqlgraph.To(payrollentry.Table, payrollentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, payrollbatch.EntriesTable, payrollbatch.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PayrollBatchClient) Hooks() []Hook {
	return c.hooks.PayrollBatch
}

// Interceptors returns the client interceptors.
func (c *PayrollBatchClient) Interceptors() []Interceptor {
	return c.inters.PayrollBatch
}

func (c *PayrollBatchClient) mutate(ctx context.Context, m *PayrollBatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PayrollBatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PayrollBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PayrollBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PayrollBatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PayrollBatch mutation op: %q", m.Op())
	}
}

// PayrollEntryClient is a client for the PayrollEntry schema.
type PayrollEntryClient struct {
	config
}

// NewPayrollEntryClient returns a client for the PayrollEntry from the given config.
func NewPayrollEntryClient(c config) *PayrollEntryClient {
	return &PayrollEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payrollentry.Hooks(f(g(h())))`.
func (c *PayrollEntryClient) Use(hooks ...Hook) {
	c.hooks.PayrollEntry = append(c.hooks.PayrollEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payrollentry.Intercept(f(g(h())))`.
func (c *PayrollEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.PayrollEntry = append(c.inters.PayrollEntry, interceptors...)
}

// Create returns a builder for creating a PayrollEntry entity.
func (c *PayrollEntryClient) Create() *PayrollEntryCreate {
	mutation := newPayrollEntryMutation(c.config, OpCreate)
	return &PayrollEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PayrollEntry entities.
func (c *PayrollEntryClient) CreateBulk(builders ...*PayrollEntryCreate) *PayrollEntryCreateBulk {
	return &PayrollEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PayrollEntryClient) MapCreateBulk(slice any, setFunc func(*PayrollEntryCreate, int)) *PayrollEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PayrollEntryCreateBulk{err: fmt.Errorf("calling to PayrollEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PayrollEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PayrollEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PayrollEntry.
func (c *PayrollEntryClient) Update() *PayrollEntryUpdate {
	mutation := newPayrollEntryMutation(c.config, OpUpdate)
	return &PayrollEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PayrollEntryClient) UpdateOne(_m *PayrollEntry) *PayrollEntryUpdateOne {
	mutation := newPayrollEntryMutation(c.config, OpUpdateOne, withPayrollEntry(_m))
	return &PayrollEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PayrollEntryClient) UpdateOneID(id uuid.UUID) *PayrollEntryUpdateOne {
	mutation := newPayrollEntryMutation(c.config, OpUpdateOne, withPayrollEntryID(id))
	return &PayrollEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PayrollEntry.
func (c *PayrollEntryClient) Delete() *PayrollEntryDelete {
	mutation := newPayrollEntryMutation(c.config, OpDelete)
	return &PayrollEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PayrollEntryClient) DeleteOne(_m *PayrollEntry) *PayrollEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PayrollEntryClient) DeleteOneID(id uuid.UUID) *PayrollEntryDeleteOne {
	builder := c.Delete().Where(payrollentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PayrollEntryDeleteOne{builder}
}

// Query returns a query builder for PayrollEntry.
func (c *PayrollEntryClient) Query() *PayrollEntryQuery {
	return &PayrollEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayrollEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a PayrollEntry entity by its id.
func (c *PayrollEntryClient) Get(ctx context.Context, id uuid.UUID) (*PayrollEntry, error) {
	return c.Query().Where(payrollentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PayrollEntryClient) GetX(ctx context.Context, id uuid.UUID) *PayrollEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBatch queries the batch edge of a PayrollEntry.
func (c *PayrollEntryClient) QueryBatch(_m *PayrollEntry) *PayrollBatchQuery {
	query := (&PayrollBatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(payrollentry.Table, payrollentry.FieldID, id),
			sqlgraph.To(payrollbatch.Table, payrollbatch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, payrollentry.BatchTable, payrollentry.BatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PayrollEntryClient) Hooks() []Hook {
	return c.hooks.PayrollEntry
}

// Interceptors returns the client interceptors.
func (c *PayrollEntryClient) Interceptors() []Interceptor {
	return c.inters.PayrollEntry
}

func (c *PayrollEntryClient) mutate(ctx context.Context, m *PayrollEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PayrollEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PayrollEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PayrollEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PayrollEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PayrollEntry mutation op: %q", m.Op())
	}
}

// TransferClient is a client for the Transfer schema.
type TransferClient struct {
	config
}

// NewTransferClient returns a client for the Transfer from the given config.
func NewTransferClient(c config) *TransferClient {
	return &TransferClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transfer.Hooks(f(g(h())))`.
func (c *TransferClient) Use(hooks ...Hook) {
	c.hooks.Transfer = append(c.hooks.Transfer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transfer.Intercept(f(g(h())))`.
func (c *TransferClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transfer = append(c.inters.Transfer, interceptors...)
}

// Create returns a builder for creating a Transfer entity.
func (c *TransferClient) Create() *TransferCreate {
	mutation := newTransferMutation(c.config, OpCreate)
	return &TransferCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transfer entities.
func (c *TransferClient) CreateBulk(builders ...*TransferCreate) *TransferCreateBulk {
	return &TransferCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransferClient) MapCreateBulk(slice any, setFunc func(*TransferCreate, int)) *TransferCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransferCreateBulk{err: fmt.Errorf("calling to TransferClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransferCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransferCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transfer.
func (c *TransferClient) Update() *TransferUpdate {
	mutation := newTransferMutation(c.config, OpUpdate)
	return &TransferUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransferClient) UpdateOne(_m *Transfer) *TransferUpdateOne {
	mutation := newTransferMutation(c.config, OpUpdateOne, withTransfer(_m))
	return &TransferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransferClient) UpdateOneID(id uuid.UUID) *TransferUpdateOne {
	mutation := newTransferMutation(c.config, OpUpdateOne, withTransferID(id))
	return &TransferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transfer.
func (c *TransferClient) Delete() *TransferDelete {
	mutation := newTransferMutation(c.config, OpDelete)
	return &TransferDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransferClient) DeleteOne(_m *Transfer) *TransferDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransferClient) DeleteOneID(id uuid.UUID) *TransferDeleteOne {
	builder := c.Delete().Where(transfer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransferDeleteOne{builder}
}

// Query returns a query builder for Transfer.
func (c *TransferClient) Query() *TransferQuery {
	return &TransferQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransfer},
		inters: c.Interceptors(),
	}
}

// Get returns a Transfer entity by its id.
func (c *TransferClient) Get(ctx context.Context, id uuid.UUID) (*Transfer, error) {
	return c.Query().Where(transfer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransferClient) GetX(ctx context.Context, id uuid.UUID) *Transfer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Transfer.
func (c *TransferClient) QueryDocument(_m *Transfer) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transfer.Table, transfer.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, transfer.DocumentTable, transfer.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TransferClient) Hooks() []Hook {
	return c.hooks.Transfer
}

// Interceptors returns the client interceptors.
func (c *TransferClient) Interceptors() []Interceptor {
	return c.inters.Transfer
}

func (c *TransferClient) mutate(ctx context.Context, m *TransferMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransferCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransferUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransferDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transfer mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, PayrollBatch, PayrollEntry, Transfer []ent.Hook
	}
	inters struct {
		Document, PayrollBatch, PayrollEntry, Transfer []ent.Interceptor
	}
)
