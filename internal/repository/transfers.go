package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sidepp-ar/docingest/gen/ent"
	enttransfer "github.com/sidepp-ar/docingest/gen/ent/transfer"
	"github.com/sidepp-ar/docingest/internal/entity"
)

// TransferRow is a stored transfer joined with its source document.
type TransferRow struct {
	DocumentID uuid.UUID
	Filename   string
	Transfer   entity.TransferRecord
}

type TransferRepository interface {
	// ListTransfers returns stored transfers ordered by operation date,
	// optionally restricted to a date window. Nil bounds are open.
	ListTransfers(ctx context.Context, fromDate, toDate *time.Time) ([]*TransferRow, error)
}

type transferRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewTransferRepository(entc *ent.Client, logger *slog.Logger) TransferRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &transferRepository{
		ent:    entc,
		logger: logger,
	}
}

func (r *transferRepository) ListTransfers(ctx context.Context, fromDate, toDate *time.Time) ([]*TransferRow, error) {
	q := r.ent.Transfer.Query().WithDocument()
	if fromDate != nil {
		q = q.Where(enttransfer.OperationDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(enttransfer.OperationDateLTE(*toDate))
	}
	rows, err := q.Order(enttransfer.ByOperationDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list transfers", "error", err)
		return nil, err
	}

	result := make([]*TransferRow, len(rows))
	for i, row := range rows {
		result[i] = toTransferRow(row)
	}
	return result, nil
}

func toTransferRow(row *ent.Transfer) *TransferRow {
	rec := &TransferRow{
		DocumentID: row.DocumentID,
		Transfer: entity.TransferRecord{
			Amount:          decimal.NewFromFloat(row.Amount).Round(2),
			Currency:        row.Currency,
			SourceAccountID: strOrEmpty(row.SourceAccountID),
			DestAccountID:   strOrEmpty(row.DestAccountID),
			Reference:       strOrEmpty(row.Reference),
			OperationDate:   row.OperationDate,
			DateFallback:    row.DateFallback,
		},
	}
	if doc := row.Edges.Document; doc != nil {
		rec.Filename = doc.Filename
	}
	return rec
}
