package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/gen/ent"
	entdoc "github.com/sidepp-ar/docingest/gen/ent/document"
	entbatch "github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	ententry "github.com/sidepp-ar/docingest/gen/ent/payrollentry"
	enttransfer "github.com/sidepp-ar/docingest/gen/ent/transfer"
	"github.com/sidepp-ar/docingest/internal/entity"
	"github.com/sidepp-ar/docingest/internal/pipeline"
)

type documentGateway struct {
	ent    *ent.Client
	logger *slog.Logger
}

// NewDocumentGateway returns the Ent-backed persistence gateway. Upserts run
// in a transaction keyed on the document natural key, so retries and
// concurrent submissions of the same bytes converge on a single row set.
func NewDocumentGateway(entc *ent.Client, logger *slog.Logger) pipeline.PersistenceGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentGateway{
		ent:    entc,
		logger: logger,
	}
}

func (g *documentGateway) FindByNaturalKey(ctx context.Context, key string) (*entity.Document, error) {
	row, err := g.ent.Document.Query().
		Where(entdoc.NaturalKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		g.logger.Error("failed to get document by natural key", "natural_key", key, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

func (g *documentGateway) UpsertPayroll(ctx context.Context, doc *entity.Document, batch *entity.PayrollBatch) (uuid.UUID, error) {
	tx, err := g.ent.Tx(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := g.upsertPayrollTx(ctx, tx, doc, batch)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			g.logger.Error("rollback failed", "natural_key", doc.NaturalKey, "error", rerr)
		}
		g.logger.Error("failed to upsert payroll batch", "filename", doc.Filename, "natural_key", doc.NaturalKey, "error", err)
		return uuid.Nil, err
	}
	if err := tx.Commit(); err != nil {
		g.logger.Error("failed to commit payroll upsert", "natural_key", doc.NaturalKey, "error", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (g *documentGateway) upsertPayrollTx(ctx context.Context, tx *ent.Tx, doc *entity.Document, batch *entity.PayrollBatch) (uuid.UUID, error) {
	row, err := upsertDocument(ctx, tx, doc)
	if err != nil {
		return uuid.Nil, err
	}

	// replace any prior extraction for this document wholesale
	if _, err := tx.PayrollEntry.Delete().
		Where(ententry.HasBatchWith(entbatch.DocumentID(row.ID))).
		Exec(ctx); err != nil {
		return uuid.Nil, err
	}
	if _, err := tx.PayrollBatch.Delete().
		Where(entbatch.DocumentID(row.ID)).
		Exec(ctx); err != nil {
		return uuid.Nil, err
	}

	b, err := tx.PayrollBatch.Create().
		SetDocumentID(row.ID).
		SetPeriod(batch.Period).
		SetPeriodFallback(batch.PeriodFallback).
		SetTotal(batch.Total.InexactFloat64()).
		Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	bulk := make([]*ent.PayrollEntryCreate, len(batch.Entries))
	for i, e := range batch.Entries {
		c := tx.PayrollEntry.Create().
			SetBatchID(b.ID).
			SetLastName(e.LastName).
			SetFirstName(e.FirstName).
			SetAmount(e.Amount.InexactFloat64())
		if e.NationalID != "" {
			c = c.SetNationalID(e.NationalID)
		}
		if e.BankAccountID != "" {
			c = c.SetBankAccountID(e.BankAccountID)
		}
		bulk[i] = c
	}
	if _, err := tx.PayrollEntry.CreateBulk(bulk...).Save(ctx); err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (g *documentGateway) UpsertTransfer(ctx context.Context, doc *entity.Document, rec *entity.TransferRecord) (uuid.UUID, error) {
	tx, err := g.ent.Tx(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := g.upsertTransferTx(ctx, tx, doc, rec)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			g.logger.Error("rollback failed", "natural_key", doc.NaturalKey, "error", rerr)
		}
		g.logger.Error("failed to upsert transfer", "filename", doc.Filename, "natural_key", doc.NaturalKey, "error", err)
		return uuid.Nil, err
	}
	if err := tx.Commit(); err != nil {
		g.logger.Error("failed to commit transfer upsert", "natural_key", doc.NaturalKey, "error", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (g *documentGateway) upsertTransferTx(ctx context.Context, tx *ent.Tx, doc *entity.Document, rec *entity.TransferRecord) (uuid.UUID, error) {
	row, err := upsertDocument(ctx, tx, doc)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := tx.Transfer.Delete().
		Where(enttransfer.DocumentID(row.ID)).
		Exec(ctx); err != nil {
		return uuid.Nil, err
	}

	c := tx.Transfer.Create().
		SetDocumentID(row.ID).
		SetAmount(rec.Amount.InexactFloat64()).
		SetCurrency(rec.Currency).
		SetOperationDate(rec.OperationDate).
		SetDateFallback(rec.DateFallback)
	if rec.SourceAccountID != "" {
		c = c.SetSourceAccountID(rec.SourceAccountID)
	}
	if rec.DestAccountID != "" {
		c = c.SetDestAccountID(rec.DestAccountID)
	}
	if rec.Reference != "" {
		c = c.SetReference(rec.Reference)
	}
	if _, err := c.Save(ctx); err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (g *documentGateway) RecordFailure(ctx context.Context, doc *entity.Document, reason string) error {
	existing, err := g.ent.Document.Query().
		Where(entdoc.NaturalKey(doc.NaturalKey)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return err
	}
	if existing != nil {
		// A processed row is never downgraded by a later failed attempt.
		if existing.Status == string(constants.StatusProcessed) {
			return nil
		}
		return g.ent.Document.UpdateOne(existing).
			SetFilename(doc.Filename).
			SetDocType(string(doc.DocType)).
			SetStatus(string(constants.StatusFailed)).
			SetErrorMessage(reason).
			Exec(ctx)
	}
	return g.ent.Document.Create().
		SetFilename(doc.Filename).
		SetNaturalKey(doc.NaturalKey).
		SetDocType(string(doc.DocType)).
		SetStatus(string(constants.StatusFailed)).
		SetErrorMessage(reason).
		Exec(ctx)
}

// upsertDocument finds-or-creates the document row for the natural key. An
// existing row is refreshed in place so a reprocessed document keeps its ID.
func upsertDocument(ctx context.Context, tx *ent.Tx, doc *entity.Document) (*ent.Document, error) {
	existing, err := tx.Document.Query().
		Where(entdoc.NaturalKey(doc.NaturalKey)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return tx.Document.UpdateOne(existing).
			SetFilename(doc.Filename).
			SetDocType(string(doc.DocType)).
			SetStatus(string(doc.Status)).
			SetProcessedAt(doc.ProcessedAt).
			ClearErrorMessage().
			Save(ctx)
	}
	return tx.Document.Create().
		SetFilename(doc.Filename).
		SetNaturalKey(doc.NaturalKey).
		SetDocType(string(doc.DocType)).
		SetStatus(string(doc.Status)).
		SetProcessedAt(doc.ProcessedAt).
		Save(ctx)
}

func toDocument(row *ent.Document) *entity.Document {
	d := &entity.Document{
		ID:         row.ID,
		Filename:   row.Filename,
		NaturalKey: row.NaturalKey,
		DocType:    constants.DocumentType(row.DocType),
		Status:     constants.ProcessingStatus(row.Status),
		CreatedAt:  row.CreatedAt,
	}
	if row.ErrorMessage != nil {
		d.ErrorMessage = *row.ErrorMessage
	}
	if row.ProcessedAt != nil {
		d.ProcessedAt = *row.ProcessedAt
	}
	return d
}
