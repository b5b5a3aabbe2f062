package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sidepp-ar/docingest/gen/ent"
	entbatch "github.com/sidepp-ar/docingest/gen/ent/payrollbatch"
	"github.com/sidepp-ar/docingest/internal/entity"
)

// BatchRecord is a stored payroll batch joined with its source document.
type BatchRecord struct {
	DocumentID uuid.UUID
	Filename   string
	Batch      entity.PayrollBatch
}

type PayrollRepository interface {
	// ListBatches returns stored batches ordered by period. An empty period
	// filter returns everything.
	ListBatches(ctx context.Context, period string) ([]*BatchRecord, error)
}

type payrollRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPayrollRepository(entc *ent.Client, logger *slog.Logger) PayrollRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &payrollRepository{
		ent:    entc,
		logger: logger,
	}
}

func (r *payrollRepository) ListBatches(ctx context.Context, period string) ([]*BatchRecord, error) {
	q := r.ent.PayrollBatch.Query().
		WithDocument().
		WithEntries()
	if period != "" {
		q = q.Where(entbatch.Period(period))
	}
	rows, err := q.Order(entbatch.ByPeriod()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list payroll batches", "period", period, "error", err)
		return nil, err
	}

	result := make([]*BatchRecord, len(rows))
	for i, row := range rows {
		result[i] = toBatchRecord(row)
	}
	return result, nil
}

func toBatchRecord(row *ent.PayrollBatch) *BatchRecord {
	rec := &BatchRecord{
		DocumentID: row.DocumentID,
		Batch: entity.PayrollBatch{
			Period:         row.Period,
			PeriodFallback: row.PeriodFallback,
			Total:          decimal.NewFromFloat(row.Total).Round(2),
		},
	}
	if doc := row.Edges.Document; doc != nil {
		rec.Filename = doc.Filename
	}
	for _, e := range row.Edges.Entries {
		rec.Batch.Entries = append(rec.Batch.Entries, entity.PersonAmountEntry{
			LastName:      e.LastName,
			FirstName:     e.FirstName,
			NationalID:    strOrEmpty(e.NationalID),
			BankAccountID: strOrEmpty(e.BankAccountID),
			Amount:        decimal.NewFromFloat(e.Amount).Round(2),
		})
	}
	return rec
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
