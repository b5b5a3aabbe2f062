package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/entity"
	"github.com/sidepp-ar/docingest/internal/repository"
)

type stubPayrollRepo struct {
	batches []*repository.BatchRecord
}

func (s *stubPayrollRepo) ListBatches(_ context.Context, _ string) ([]*repository.BatchRecord, error) {
	return s.batches, nil
}

type stubTransferRepo struct {
	rows []*repository.TransferRow
}

func (s *stubTransferRepo) ListTransfers(_ context.Context, _, _ *time.Time) ([]*repository.TransferRow, error) {
	return s.rows, nil
}

func TestExportXLSX(t *testing.T) {
	longRef := strings.Repeat("ñ", 150)
	svc := NewService(
		&stubPayrollRepo{batches: []*repository.BatchRecord{{
			Filename: "liquidacion_marzo.pdf",
			Batch: entity.PayrollBatch{
				Period: "03/2024",
				Entries: []entity.PersonAmountEntry{
					{LastName: "PEREZ", FirstName: "JUAN", Amount: decimal.RequireFromString("1500.00")},
				},
				Total: decimal.RequireFromString("1500.00"),
			},
		}}},
		&stubTransferRepo{rows: []*repository.TransferRow{{
			Filename: "transferencia.pdf",
			Transfer: entity.TransferRecord{
				Amount:        decimal.RequireFromString("2500.00"),
				Currency:      constants.CurrencyARS,
				Reference:     longRef,
				OperationDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			},
		}}},
		nil,
	)

	data, err := svc.ExportXLSX(context.Background(), "")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	period, err := f.GetCellValue("Payroll", "A2")
	require.NoError(t, err)
	assert.Equal(t, "03/2024", period)

	amount, err := f.GetCellValue("Transfers", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2500.00", amount)

	ref, err := f.GetCellValue("Transfers", "F2")
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(ref), "reference cell must stay valid UTF-8")
	assert.Equal(t, strings.Repeat("ñ", 139)+"…", ref)
}

func TestTruncate(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "hola", truncate("hola", 10))
		assert.Equal(t, "hola", truncate("hola", 4))
	})

	t.Run("cuts on rune boundaries", func(t *testing.T) {
		got := truncate(strings.Repeat("ñ", 10), 5)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("ñ", 4)+"…", got)
	})

	t.Run("single rune budget keeps one rune", func(t *testing.T) {
		assert.Equal(t, "ñ", truncate("ñandú", 1))
	})
}
