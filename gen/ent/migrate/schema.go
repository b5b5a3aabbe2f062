// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "natural_key", Type: field.TypeString, Size: 64},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_natural_key",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[2]},
			},
			{
				Name:    "document_doc_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3], DocumentsColumns[7]},
			},
		},
	}
	// PayrollBatchesColumns holds the columns for the "payroll_batches" table.
	PayrollBatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "period", Type: field.TypeString},
		{Name: "period_fallback", Type: field.TypeBool, Default: false},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// PayrollBatchesTable holds the schema information for the "payroll_batches" table.
	PayrollBatchesTable = &schema.Table{
		Name:       "payroll_batches",
		Columns:    PayrollBatchesColumns,
		PrimaryKey: []*schema.Column{PayrollBatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payroll_batches_documents_payroll_batch",
				Columns:    []*schema.Column{PayrollBatchesColumns[4]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "payrollbatch_document_id",
				Unique:  true,
				Columns: []*schema.Column{PayrollBatchesColumns[4]},
			},
			{
				Name:    "payrollbatch_period",
				Unique:  false,
				Columns: []*schema.Column{PayrollBatchesColumns[1]},
			},
		},
	}
	// PayrollEntriesColumns holds the columns for the "payroll_entries" table.
	PayrollEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "last_name", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString},
		{Name: "national_id", Type: field.TypeString, Nullable: true},
		{Name: "bank_account_id", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// PayrollEntriesTable holds the schema information for the "payroll_entries" table.
	PayrollEntriesTable = &schema.Table{
		Name:       "payroll_entries",
		Columns:    PayrollEntriesColumns,
		PrimaryKey: []*schema.Column{PayrollEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payroll_entries_payroll_batches_entries",
				Columns:    []*schema.Column{PayrollEntriesColumns[6]},
				RefColumns: []*schema.Column{PayrollBatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "payrollentry_batch_id",
				Unique:  false,
				Columns: []*schema.Column{PayrollEntriesColumns[6]},
			},
			{
				Name:    "payrollentry_last_name_first_name",
				Unique:  false,
				Columns: []*schema.Column{PayrollEntriesColumns[1], PayrollEntriesColumns[2]},
			},
		},
	}
	// TransfersColumns holds the columns for the "transfers" table.
	TransfersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "source_account_id", Type: field.TypeString, Nullable: true},
		{Name: "dest_account_id", Type: field.TypeString, Nullable: true},
		{Name: "reference", Type: field.TypeString, Nullable: true},
		{Name: "operation_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "date_fallback", Type: field.TypeBool, Default: false},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// TransfersTable holds the schema information for the "transfers" table.
	TransfersTable = &schema.Table{
		Name:       "transfers",
		Columns:    TransfersColumns,
		PrimaryKey: []*schema.Column{TransfersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transfers_documents_transfer",
				Columns:    []*schema.Column{TransfersColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transfer_document_id",
				Unique:  true,
				Columns: []*schema.Column{TransfersColumns[8]},
			},
			{
				Name:    "transfer_operation_date",
				Unique:  false,
				Columns: []*schema.Column{TransfersColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		PayrollBatchesTable,
		PayrollEntriesTable,
		TransfersTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	PayrollBatchesTable.ForeignKeys[0].RefTable = DocumentsTable
	PayrollBatchesTable.Annotation = &entsql.Annotation{
		Table: "payroll_batches",
	}
	PayrollEntriesTable.ForeignKeys[0].RefTable = PayrollBatchesTable
	PayrollEntriesTable.Annotation = &entsql.Annotation{
		Table: "payroll_entries",
	}
	TransfersTable.ForeignKeys[0].RefTable = DocumentsTable
	TransfersTable.Annotation = &entsql.Annotation{
		Table: "transfers",
	}
}
