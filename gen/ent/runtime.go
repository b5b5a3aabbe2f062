// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/sidepp-ar/docingest/db/ent/schema"
	"github.com/sidepp-ar/docingest/gen/ent/document"
	"github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	"github.com/sidepp-ar/docingest/gen/ent/payrollentry"
	"github.com/sidepp-ar/docingest/gen/ent/transfer"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescNaturalKey is the schema descriptor for natural_key field.
	documentDescNaturalKey := documentFields[2].Descriptor()
	// document.NaturalKeyValidator is a validator for the "natural_key" field. It is called by the builders before save.
	document.NaturalKeyValidator = func() func(string) error {
		validators := documentDescNaturalKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(natural_key string) error {
			for _, fn := range fns {
				if err := fn(natural_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescDocType is the schema descriptor for doc_type field.
	documentDescDocType := documentFields[3].Descriptor()
	// document.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	document.DocTypeValidator = func() func(string) error {
		validators := documentDescDocType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doc_type string) error {
			for _, fn := range fns {
				if err := fn(doc_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[7].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	payrollbatchFields := schema.PayrollBatch{}.Fields()
	_ = payrollbatchFields
	// payrollbatchDescPeriod is the schema descriptor for period field.
	payrollbatchDescPeriod := payrollbatchFields[2].Descriptor()
	// payrollbatch.PeriodValidator is a validator for the "period" field. It is called by the builders before save.
	payrollbatch.PeriodValidator = func() func(string) error {
		validators := payrollbatchDescPeriod.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(period string) error {
			for _, fn := range fns {
				if err := fn(period); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// payrollbatchDescPeriodFallback is the schema descriptor for period_fallback field.
	payrollbatchDescPeriodFallback := payrollbatchFields[3].Descriptor()
	// payrollbatch.DefaultPeriodFallback holds the default value on creation for the period_fallback field.
	payrollbatch.DefaultPeriodFallback = payrollbatchDescPeriodFallback.Default.(bool)
	// payrollbatchDescID is the schema descriptor for id field.
	payrollbatchDescID := payrollbatchFields[0].Descriptor()
	// payrollbatch.DefaultID holds the default value on creation for the id field.
	payrollbatch.DefaultID = payrollbatchDescID.Default.(func() uuid.UUID)
	payrollentryFields := schema.PayrollEntry{}.Fields()
	_ = payrollentryFields
	// payrollentryDescLastName is the schema descriptor for last_name field.
	payrollentryDescLastName := payrollentryFields[2].Descriptor()
	// payrollentry.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	payrollentry.LastNameValidator = payrollentryDescLastName.Validators[0].(func(string) error)
	// payrollentryDescFirstName is the schema descriptor for first_name field.
	payrollentryDescFirstName := payrollentryFields[3].Descriptor()
	// payrollentry.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	payrollentry.FirstNameValidator = payrollentryDescFirstName.Validators[0].(func(string) error)
	// payrollentryDescNationalID is the schema descriptor for national_id field.
	payrollentryDescNationalID := payrollentryFields[4].Descriptor()
	// payrollentry.NationalIDValidator is a validator for the "national_id" field. It is called by the builders before save.
	payrollentry.NationalIDValidator = payrollentryDescNationalID.Validators[0].(func(string) error)
	// payrollentryDescBankAccountID is the schema descriptor for bank_account_id field.
	payrollentryDescBankAccountID := payrollentryFields[5].Descriptor()
	// payrollentry.BankAccountIDValidator is a validator for the "bank_account_id" field. It is called by the builders before save.
	payrollentry.BankAccountIDValidator = payrollentryDescBankAccountID.Validators[0].(func(string) error)
	// payrollentryDescAmount is the schema descriptor for amount field.
	payrollentryDescAmount := payrollentryFields[6].Descriptor()
	// payrollentry.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	payrollentry.AmountValidator = payrollentryDescAmount.Validators[0].(func(float64) error)
	// payrollentryDescID is the schema descriptor for id field.
	payrollentryDescID := payrollentryFields[0].Descriptor()
	// payrollentry.DefaultID holds the default value on creation for the id field.
	payrollentry.DefaultID = payrollentryDescID.Default.(func() uuid.UUID)
	transferFields := schema.Transfer{}.Fields()
	_ = transferFields
	// transferDescAmount is the schema descriptor for amount field.
	transferDescAmount := transferFields[2].Descriptor()
	// transfer.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	transfer.AmountValidator = transferDescAmount.Validators[0].(func(float64) error)
	// transferDescCurrency is the schema descriptor for currency field.
	transferDescCurrency := transferFields[3].Descriptor()
	// transfer.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	transfer.CurrencyValidator = func() func(string) error {
		validators := transferDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transferDescSourceAccountID is the schema descriptor for source_account_id field.
	transferDescSourceAccountID := transferFields[4].Descriptor()
	// transfer.SourceAccountIDValidator is a validator for the "source_account_id" field. It is called by the builders before save.
	transfer.SourceAccountIDValidator = transferDescSourceAccountID.Validators[0].(func(string) error)
	// transferDescDestAccountID is the schema descriptor for dest_account_id field.
	transferDescDestAccountID := transferFields[5].Descriptor()
	// transfer.DestAccountIDValidator is a validator for the "dest_account_id" field. It is called by the builders before save.
	transfer.DestAccountIDValidator = transferDescDestAccountID.Validators[0].(func(string) error)
	// transferDescDateFallback is the schema descriptor for date_fallback field.
	transferDescDateFallback := transferFields[8].Descriptor()
	// transfer.DefaultDateFallback holds the default value on creation for the date_fallback field.
	transfer.DefaultDateFallback = transferDescDateFallback.Default.(bool)
	// transferDescID is the schema descriptor for id field.
	transferDescID := transferFields[0].Descriptor()
	// transfer.DefaultID holds the default value on creation for the id field.
	transfer.DefaultID = transferDescID.Default.(func() uuid.UUID)
}
