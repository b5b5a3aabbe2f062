package fieldextract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/entity"
)

func extractTransfer(t *testing.T, x *TransferExtractor, text string) *entity.TransferRecord {
	t.Helper()
	rec, err := x.Extract(text)
	require.NoError(t, err)
	tr, ok := rec.(*entity.TransferRecord)
	require.True(t, ok, "expected *entity.TransferRecord, got %T", rec)
	return tr
}

func TestTransferExtractor_LabeledReceipt(t *testing.T) {
	x := NewTransferExtractor()
	text := `COMPROBANTE DE TRANSFERENCIA
Banco Galicia
Fecha: 15/03/2024
Importe: $ 2.500,00
CBU Origen: 0070999020000038221395
CBU Destino: 2850590940090418135201
Referencia: Pago proveedores marzo`

	rec := extractTransfer(t, x, text)

	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("2500.00")), "got %s", rec.Amount)
	assert.Equal(t, "0070999020000038221395", rec.SourceAccountID)
	assert.Equal(t, "2850590940090418135201", rec.DestAccountID)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), rec.OperationDate)
	assert.False(t, rec.DateFallback)
	assert.Equal(t, "Pago proveedores marzo", rec.Reference)
	assert.Equal(t, constants.CurrencyARS, rec.Currency)
}

func TestTransferExtractor_PositionalAccounts(t *testing.T) {
	x := NewTransferExtractor()
	text := `Transferencia inmediata
0070999020000038221395
2850590940090418135201
$ 1.000,00`

	rec := extractTransfer(t, x, text)
	assert.Equal(t, "0070999020000038221395", rec.SourceAccountID)
	assert.Equal(t, "2850590940090418135201", rec.DestAccountID)
}

func TestTransferExtractor_LabeledAccountsBeatReadingOrder(t *testing.T) {
	x := NewTransferExtractor()
	// Destination appears first in reading order; labels must win.
	text := `CBU Destino: 2850590940090418135201
CBU Origen: 0070999020000038221395`

	rec := extractTransfer(t, x, text)
	assert.Equal(t, "0070999020000038221395", rec.SourceAccountID)
	assert.Equal(t, "2850590940090418135201", rec.DestAccountID)
}

func TestTransferExtractor_SingleAccount(t *testing.T) {
	x := NewTransferExtractor()
	rec := extractTransfer(t, x, "Transferencia a 2850590940090418135201 por $ 500,00")
	assert.Equal(t, "2850590940090418135201", rec.SourceAccountID)
	assert.Empty(t, rec.DestAccountID)
}

func TestTransferExtractor_DateVariants(t *testing.T) {
	x := NewTransferExtractor()

	t.Run("dashes", func(t *testing.T) {
		rec := extractTransfer(t, x, "Fecha: 01-02-2024 Importe: $ 100,00")
		assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), rec.OperationDate)
		assert.False(t, rec.DateFallback)
	})

	t.Run("bare date without label", func(t *testing.T) {
		rec := extractTransfer(t, x, "Operacion del 05/06/2023 por $ 100,00")
		assert.Equal(t, time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC), rec.OperationDate)
		assert.False(t, rec.DateFallback)
	})

	t.Run("missing date falls back flagged", func(t *testing.T) {
		stub := &TransferExtractor{now: fixedClock(t)}
		rec := extractTransfer(t, stub, "Importe: $ 100,00")
		assert.Equal(t, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC), rec.OperationDate)
		assert.True(t, rec.DateFallback)
	})
}

func TestTransferExtractor_AmountVariants(t *testing.T) {
	x := NewTransferExtractor()

	t.Run("dotted date does not shadow the amount", func(t *testing.T) {
		text := `Fecha: 15.03.2024
Importe: $ 2.500,00
CBU Origen: 0070999020000038221395`
		rec := extractTransfer(t, x, text)
		assert.True(t, rec.Amount.Equal(decimal.RequireFromString("2500.00")), "got %s", rec.Amount)
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), rec.OperationDate)
		assert.False(t, rec.DateFallback)
	})

	t.Run("dotted date with unlabeled amount", func(t *testing.T) {
		rec := extractTransfer(t, x, "Operacion del 15.03.2024 por $ 1.000,00")
		assert.True(t, rec.Amount.Equal(decimal.RequireFromString("1000.00")), "got %s", rec.Amount)
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), rec.OperationDate)
	})

	t.Run("labeled amount without decimals", func(t *testing.T) {
		rec := extractTransfer(t, x, "Importe: 2.500")
		assert.True(t, rec.Amount.Equal(decimal.RequireFromString("2500")), "got %s", rec.Amount)
	})

	t.Run("Monto label", func(t *testing.T) {
		rec := extractTransfer(t, x, "Monto $ 350,75")
		assert.True(t, rec.Amount.Equal(decimal.RequireFromString("350.75")), "got %s", rec.Amount)
	})
}

func TestTransferExtractor_Currency(t *testing.T) {
	x := NewTransferExtractor()

	t.Run("default is ARS", func(t *testing.T) {
		rec := extractTransfer(t, x, "Importe: $ 1.000,00")
		assert.Equal(t, constants.CurrencyARS, rec.Currency)
	})

	t.Run("USD token", func(t *testing.T) {
		rec := extractTransfer(t, x, "Importe: USD 1,500.00")
		assert.Equal(t, constants.CurrencyUSD, rec.Currency)
		assert.True(t, rec.Amount.Equal(decimal.RequireFromString("1500.00")), "got %s", rec.Amount)
	})

	t.Run("U$S token", func(t *testing.T) {
		rec := extractTransfer(t, x, "Importe: U$S 200,00")
		assert.Equal(t, constants.CurrencyUSD, rec.Currency)
	})
}

func TestTransferExtractor_ReferenceCutoff(t *testing.T) {
	x := NewTransferExtractor()
	rec := extractTransfer(t, x, "Referencia: Pago marzo   Hoja 1 de 1")
	assert.Equal(t, "Pago marzo", rec.Reference)
}

func TestTransferExtractor_ConceptoLabel(t *testing.T) {
	x := NewTransferExtractor()
	rec := extractTransfer(t, x, "Concepto: Haberes docentes")
	assert.Equal(t, "Haberes docentes", rec.Reference)
}

func TestTransferExtractor_MissingFieldsStayZero(t *testing.T) {
	stub := &TransferExtractor{now: fixedClock(t)}
	rec := extractTransfer(t, stub, "texto sin datos utiles")
	assert.True(t, rec.Amount.IsZero())
	assert.Empty(t, rec.SourceAccountID)
	assert.Empty(t, rec.DestAccountID)
	assert.Empty(t, rec.Reference)
	assert.True(t, rec.DateFallback)
}

func TestTransferExtractor_CanHandle(t *testing.T) {
	x := NewTransferExtractor()
	assert.True(t, x.CanHandle(constants.DocTypeTransfer))
	assert.False(t, x.CanHandle(constants.DocTypePayroll))
}
