package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/gen/ent"
	"github.com/sidepp-ar/docingest/internal/entity"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	client, err := OpenSQLite(dsn, nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), client, nil))
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func payrollDoc(key string) *entity.Document {
	return &entity.Document{
		Filename:    "liquidacion_marzo.pdf",
		NaturalKey:  key,
		DocType:     constants.DocTypePayroll,
		Status:      constants.StatusProcessed,
		ProcessedAt: time.Now().UTC(),
	}
}

func samplePayroll() *entity.PayrollBatch {
	return &entity.PayrollBatch{
		Period: "03/2024",
		Entries: []entity.PersonAmountEntry{
			{LastName: "PEREZ", FirstName: "JUAN", NationalID: "20123456", Amount: decimal.RequireFromString("1500.00")},
			{LastName: "GOMEZ", FirstName: "MARIA", Amount: decimal.RequireFromString("2000.50")},
		},
		Total: decimal.RequireFromString("3500.50"),
	}
}

func sampleTransfer() *entity.TransferRecord {
	return &entity.TransferRecord{
		Amount:          decimal.RequireFromString("2500.00"),
		SourceAccountID: "0070999020000038221395",
		DestAccountID:   "2850590940090418135201",
		Reference:       "Pago proveedores",
		Currency:        constants.CurrencyARS,
		OperationDate:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

const testKey = "6cb1b09e46da4f2dfb1b49d4b4d5c64e4fd4a7f00cb9de9edb421e43d5d4e2aa"

func TestDocumentGateway_FindByNaturalKey_Absent(t *testing.T) {
	client := openTestClient(t)
	gw := NewDocumentGateway(client, nil)

	doc, err := gw.FindByNaturalKey(context.Background(), testKey)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDocumentGateway_UpsertPayroll(t *testing.T) {
	client := openTestClient(t)
	gw := NewDocumentGateway(client, nil)
	ctx := context.Background()

	id, err := gw.UpsertPayroll(ctx, payrollDoc(testKey), samplePayroll())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	found, err := gw.FindByNaturalKey(ctx, testKey)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, constants.DocTypePayroll, found.DocType)
	assert.Equal(t, constants.StatusProcessed, found.Status)

	batches, err := NewPayrollRepository(client, nil).ListBatches(ctx, "03/2024")
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, "liquidacion_marzo.pdf", batches[0].Filename)
	require.Len(t, batches[0].Batch.Entries, 2)
	assert.True(t, batches[0].Batch.Total.Equal(decimal.RequireFromString("3500.50")),
		"got %s", batches[0].Batch.Total)
}

func TestDocumentGateway_UpsertPayroll_Idempotent(t *testing.T) {
	client := openTestClient(t)
	gw := NewDocumentGateway(client, nil)
	ctx := context.Background()

	first, err := gw.UpsertPayroll(ctx, payrollDoc(testKey), samplePayroll())
	require.NoError(t, err)
	second, err := gw.UpsertPayroll(ctx, payrollDoc(testKey), samplePayroll())
	require.NoError(t, err)
	assert.Equal(t, first, second, "reprocessing must keep the document ID")

	n, err := client.Document.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	batches, err := NewPayrollRepository(client, nil).ListBatches(ctx, "")
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Len(t, batches[0].Batch.Entries, 2, "entries must be replaced, not appended")
}

func TestDocumentGateway_UpsertTransfer(t *testing.T) {
	client := openTestClient(t)
	gw := NewDocumentGateway(client, nil)
	ctx := context.Background()

	doc := &entity.Document{
		Filename:    "transferencia.pdf",
		NaturalKey:  testKey,
		DocType:     constants.DocTypeTransfer,
		Status:      constants.StatusProcessed,
		ProcessedAt: time.Now().UTC(),
	}
	id, err := gw.UpsertTransfer(ctx, doc, sampleTransfer())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	rows, err := NewTransferRepository(client, nil).ListTransfers(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "transferencia.pdf", rows[0].Filename)
	assert.Equal(t, "0070999020000038221395", rows[0].Transfer.SourceAccountID)
	assert.Equal(t, "Pago proveedores", rows[0].Transfer.Reference)
	assert.True(t, rows[0].Transfer.Amount.Equal(decimal.RequireFromString("2500.00")),
		"got %s", rows[0].Transfer.Amount)
}

func TestDocumentGateway_RecordFailure(t *testing.T) {
	client := openTestClient(t)
	gw := NewDocumentGateway(client, nil)
	ctx := context.Background()

	doc := &entity.Document{
		Filename:   "ilegible.pdf",
		NaturalKey: testKey,
		DocType:    constants.DocTypeUnknown,
		Status:     constants.StatusFailed,
	}
	require.NoError(t, gw.RecordFailure(ctx, doc, "no text recoverable"))

	found, err := gw.FindByNaturalKey(ctx, testKey)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, constants.StatusFailed, found.Status)
	assert.Equal(t, "no text recoverable", found.ErrorMessage)
}

func TestDocumentGateway_RecordFailure_KeepsProcessedRow(t *testing.T) {
	client := openTestClient(t)
	gw := NewDocumentGateway(client, nil)
	ctx := context.Background()

	_, err := gw.UpsertPayroll(ctx, payrollDoc(testKey), samplePayroll())
	require.NoError(t, err)

	fail := &entity.Document{
		Filename:   "liquidacion_marzo.pdf",
		NaturalKey: testKey,
		DocType:    constants.DocTypePayroll,
		Status:     constants.StatusFailed,
	}
	require.NoError(t, gw.RecordFailure(ctx, fail, "transient"))

	found, err := gw.FindByNaturalKey(ctx, testKey)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, constants.StatusProcessed, found.Status, "a processed row must survive a later failed attempt")
	assert.Empty(t, found.ErrorMessage)
}

func TestTransferRepository_DateWindow(t *testing.T) {
	client := openTestClient(t)
	gw := NewDocumentGateway(client, nil)
	ctx := context.Background()

	rec := sampleTransfer()
	doc := &entity.Document{
		Filename:    "transferencia.pdf",
		NaturalKey:  testKey,
		DocType:     constants.DocTypeTransfer,
		Status:      constants.StatusProcessed,
		ProcessedAt: time.Now().UTC(),
	}
	_, err := gw.UpsertTransfer(ctx, doc, rec)
	require.NoError(t, err)

	repo := NewTransferRepository(client, nil)

	after := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	rows, err := repo.ListTransfers(ctx, &after, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	before := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	rows, err = repo.ListTransfers(ctx, &before, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
