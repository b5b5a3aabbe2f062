package validate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/entity"
)

func validBatch() *entity.PayrollBatch {
	return &entity.PayrollBatch{
		Period: "03/2024",
		Entries: []entity.PersonAmountEntry{
			{LastName: "PEREZ", FirstName: "JUAN", NationalID: "20123456", Amount: decimal.RequireFromString("1500.00")},
			{LastName: "GOMEZ", FirstName: "MARIA", Amount: decimal.RequireFromString("2000.50")},
		},
		Total: decimal.RequireFromString("3500.50"),
	}
}

func validTransfer() *entity.TransferRecord {
	return &entity.TransferRecord{
		Amount:          decimal.RequireFromString("2500.00"),
		SourceAccountID: "0070999020000038221395",
		DestAccountID:   "2850590940090418135201",
		Currency:        constants.CurrencyARS,
		OperationDate:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func failedFields(res Result) []string {
	fields := make([]string, len(res.Failures))
	for i, f := range res.Failures {
		fields[i] = f.Field
	}
	return fields
}

func TestValidator_Payroll(t *testing.T) {
	v := NewValidator(nil)

	t.Run("valid batch passes", func(t *testing.T) {
		res := v.Validate(validBatch(), constants.DocTypePayroll)
		assert.True(t, res.OK, "failures: %v", res.Failures)
		assert.Empty(t, res.Failures)
	})

	t.Run("empty entries fail", func(t *testing.T) {
		batch := validBatch()
		batch.Entries = nil
		res := v.Validate(batch, constants.DocTypePayroll)
		require.False(t, res.OK)
		assert.Contains(t, failedFields(res), "entries")
	})

	t.Run("no positive amount fails", func(t *testing.T) {
		batch := validBatch()
		for i := range batch.Entries {
			batch.Entries[i].Amount = decimal.Zero
		}
		res := v.Validate(batch, constants.DocTypePayroll)
		require.False(t, res.OK)
		assert.Contains(t, failedFields(res), "entries")
	})

	t.Run("malformed period fails schema", func(t *testing.T) {
		batch := validBatch()
		batch.Period = "2024-03"
		res := v.Validate(batch, constants.DocTypePayroll)
		require.False(t, res.OK)
		assert.Contains(t, failedFields(res), "payload")
	})

	t.Run("wrong record type fails", func(t *testing.T) {
		res := v.Validate(validTransfer(), constants.DocTypePayroll)
		require.False(t, res.OK)
		assert.Contains(t, failedFields(res), "record")
	})
}

func TestValidator_Transfer(t *testing.T) {
	v := NewValidator(nil)

	t.Run("valid record passes", func(t *testing.T) {
		res := v.Validate(validTransfer(), constants.DocTypeTransfer)
		assert.True(t, res.OK, "failures: %v", res.Failures)
	})

	t.Run("absent account identifiers are allowed", func(t *testing.T) {
		rec := validTransfer()
		rec.SourceAccountID = ""
		rec.DestAccountID = ""
		res := v.Validate(rec, constants.DocTypeTransfer)
		assert.True(t, res.OK, "failures: %v", res.Failures)
	})

	t.Run("zero amount fails", func(t *testing.T) {
		rec := validTransfer()
		rec.Amount = decimal.Zero
		res := v.Validate(rec, constants.DocTypeTransfer)
		require.False(t, res.OK)
		assert.Contains(t, failedFields(res), "amount")
	})

	t.Run("short account identifier fails", func(t *testing.T) {
		rec := validTransfer()
		rec.SourceAccountID = "123456"
		res := v.Validate(rec, constants.DocTypeTransfer)
		require.False(t, res.OK)
		assert.Contains(t, failedFields(res), "source_account_id")
	})

	t.Run("failures accumulate", func(t *testing.T) {
		rec := validTransfer()
		rec.Amount = decimal.Zero
		rec.DestAccountID = "99"
		res := v.Validate(rec, constants.DocTypeTransfer)
		require.False(t, res.OK)
		fields := failedFields(res)
		assert.Contains(t, fields, "amount")
		assert.Contains(t, fields, "dest_account_id")
	})
}

func TestValidator_UnsupportedType(t *testing.T) {
	v := NewValidator(nil)
	res := v.Validate(validBatch(), constants.DocTypeUnknown)
	require.False(t, res.OK)
	assert.Contains(t, failedFields(res), "doc_type")
}

func TestIsAccountID(t *testing.T) {
	assert.True(t, IsAccountID("0070999020000038221395"))
	assert.False(t, IsAccountID("007099902000003822139"))   // 21 digits
	assert.False(t, IsAccountID("00709990200000382213950")) // 23 digits
	assert.False(t, IsAccountID("00709990200000382213xx"))
	assert.False(t, IsAccountID(""))
}
