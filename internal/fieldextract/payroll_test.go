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

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	return func() time.Time {
		return time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	}
}

func extractPayroll(t *testing.T, x *PayrollExtractor, text string) *entity.PayrollBatch {
	t.Helper()
	rec, err := x.Extract(text)
	require.NoError(t, err)
	batch, ok := rec.(*entity.PayrollBatch)
	require.True(t, ok, "expected *entity.PayrollBatch, got %T", rec)
	return batch
}

func TestPayrollExtractor_SectionScan(t *testing.T) {
	x := NewPayrollExtractor()
	text := `LIQUIDACION DE HABERES SIDEPP
Periodo: 03/2024
Personas                        Tot Remunerativo
PEREZ JUAN        20123456      1.500,00
GOMEZ MARIA       27876543      2.000,50
Totales:                        3.500,50
Cantidad de Personas: 2`

	batch := extractPayroll(t, x, text)

	assert.Equal(t, "03/2024", batch.Period)
	assert.False(t, batch.PeriodFallback)
	require.Len(t, batch.Entries, 2)

	assert.Equal(t, "PEREZ", batch.Entries[0].LastName)
	assert.Equal(t, "JUAN", batch.Entries[0].FirstName)
	assert.Equal(t, "20123456", batch.Entries[0].NationalID)
	assert.True(t, batch.Entries[0].Amount.Equal(decimal.RequireFromString("1500.00")),
		"got %s", batch.Entries[0].Amount)

	assert.Equal(t, "GOMEZ", batch.Entries[1].LastName)
	assert.Equal(t, "MARIA", batch.Entries[1].FirstName)

	assert.True(t, batch.Total.Equal(decimal.RequireFromString("3500.50")), "got %s", batch.Total)
}

func TestPayrollExtractor_RowsAfterTerminatorIgnored(t *testing.T) {
	x := NewPayrollExtractor()
	text := `Personas            Tot Remunerativo
PEREZ JUAN          1.500,00
Totales:            1.500,00
LOPEZ ANA           999,99`

	batch := extractPayroll(t, x, text)
	require.Len(t, batch.Entries, 1)
	assert.Equal(t, "PEREZ", batch.Entries[0].LastName)
}

func TestPayrollExtractor_AccountIDNotMisreadAsAmount(t *testing.T) {
	x := NewPayrollExtractor()
	text := `Personas            Tot Remunerativo
PEREZ JUAN   0070999020000038221395   1.500,00
Totales: 1.500,00`

	batch := extractPayroll(t, x, text)
	require.Len(t, batch.Entries, 1)
	assert.Equal(t, "0070999020000038221395", batch.Entries[0].BankAccountID)
	assert.Empty(t, batch.Entries[0].NationalID)
	assert.True(t, batch.Entries[0].Amount.Equal(decimal.RequireFromString("1500.00")),
		"got %s", batch.Entries[0].Amount)
}

func TestPayrollExtractor_NameRunFallback(t *testing.T) {
	x := NewPayrollExtractor()
	// No section header at all: the unanchored scanner takes over.
	text := `Planilla mensual
Garcia Luis   800,00
Lopez Ana   950,00`

	batch := extractPayroll(t, x, text)
	require.Len(t, batch.Entries, 2)
	assert.Equal(t, "Garcia", batch.Entries[0].LastName)
	assert.Equal(t, "Luis", batch.Entries[0].FirstName)
	assert.True(t, batch.Total.Equal(decimal.RequireFromString("1750.00")), "got %s", batch.Total)
}

func TestPayrollExtractor_FallbackSkipsBoilerplate(t *testing.T) {
	x := NewPayrollExtractor()
	text := `Total General   9.999,99
Garcia Luis   800,00`

	batch := extractPayroll(t, x, text)
	require.Len(t, batch.Entries, 1)
	assert.Equal(t, "Garcia", batch.Entries[0].LastName)
}

func TestPayrollExtractor_DedupesRepeatedNames(t *testing.T) {
	x := NewPayrollExtractor()
	text := `Personas            Tot Remunerativo
PEREZ JUAN          1.500,00
PEREZ JUAN          1.500,00
Totales: 3.000,00`

	batch := extractPayroll(t, x, text)
	require.Len(t, batch.Entries, 1)
	assert.True(t, batch.Total.Equal(decimal.RequireFromString("1500.00")), "got %s", batch.Total)
}

func TestPayrollExtractor_SingleTokenNameGetsPlaceholder(t *testing.T) {
	x := NewPayrollExtractor()
	text := `Personas            Tot Remunerativo
RODRIGUEZ           1.200,00
Totales: 1.200,00`

	batch := extractPayroll(t, x, text)
	require.Len(t, batch.Entries, 1)
	assert.Equal(t, "RODRIGUEZ", batch.Entries[0].LastName)
	assert.Equal(t, "N/N", batch.Entries[0].FirstName)
}

func TestPayrollExtractor_Period(t *testing.T) {
	x := &PayrollExtractor{now: fixedClock(t)}

	t.Run("labeled period", func(t *testing.T) {
		period, fallback := x.extractPeriod("Periodo: 03/2024")
		assert.Equal(t, "03/2024", period)
		assert.False(t, fallback)
	})

	t.Run("labeled month name", func(t *testing.T) {
		period, fallback := x.extractPeriod("Mes: Marzo 2024")
		assert.Equal(t, "03/2024", period)
		assert.False(t, fallback)
	})

	t.Run("month name with diacritics", func(t *testing.T) {
		period, fallback := x.extractPeriod("Mes: Setiembre 2023")
		assert.Equal(t, "09/2023", period)
		assert.False(t, fallback)
	})

	t.Run("bare token", func(t *testing.T) {
		period, fallback := x.extractPeriod("Listado general 11/2023 hoja 1")
		assert.Equal(t, "11/2023", period)
		assert.False(t, fallback)
	})

	t.Run("bare token out of month range is skipped", func(t *testing.T) {
		period, fallback := x.extractPeriod("Expediente 25/2024")
		assert.Equal(t, "05/2024", period)
		assert.True(t, fallback)
	})

	t.Run("current month fallback is flagged", func(t *testing.T) {
		period, fallback := x.extractPeriod("sin fecha alguna")
		assert.Equal(t, "05/2024", period)
		assert.True(t, fallback)
	})
}

func TestPayrollExtractor_Concepts(t *testing.T) {
	x := NewPayrollExtractor()
	text := `Concepto                     Monto
HABER BASICO                 1.000,00
DESCUENTO SINDICAL           200,00
APORTE PATRONAL              150,00
Totales: 1.350,00`

	batch := extractPayroll(t, x, text)
	require.Len(t, batch.Concepts, 3)
	assert.Equal(t, "HABER", batch.Concepts[0].Kind)
	assert.Equal(t, "DESCUENTO", batch.Concepts[1].Kind)
	assert.Equal(t, "APORTE", batch.Concepts[2].Kind)
	assert.Equal(t, "HABER BASICO", batch.Concepts[0].Description)
	assert.True(t, batch.Concepts[1].Amount.Equal(decimal.RequireFromString("200.00")),
		"got %s", batch.Concepts[1].Amount)
}

func TestPayrollExtractor_CanHandle(t *testing.T) {
	x := NewPayrollExtractor()
	assert.True(t, x.CanHandle(constants.DocTypePayroll))
	assert.False(t, x.CanHandle(constants.DocTypeTransfer))
}

func TestPayrollExtractor_EmptyTextYieldsEmptyBatch(t *testing.T) {
	x := &PayrollExtractor{now: fixedClock(t)}
	batch := extractPayroll(t, x, "")
	assert.Empty(t, batch.Entries)
	assert.True(t, batch.PeriodFallback)
	assert.True(t, batch.Total.IsZero())
}
