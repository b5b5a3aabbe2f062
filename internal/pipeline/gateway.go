package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/sidepp-ar/docingest/internal/entity"
)

// PersistenceGateway is the durable store the orchestrator writes through.
// Implementations must be safe for concurrent use across documents and
// idempotent under the same natural key: retrying a failed upsert must not
// create a duplicate row.
type PersistenceGateway interface {
	// FindByNaturalKey returns the prior outcome for a natural key, or
	// (nil, nil) when the document has never been processed.
	FindByNaturalKey(ctx context.Context, key string) (*entity.Document, error)

	UpsertPayroll(ctx context.Context, doc *entity.Document, batch *entity.PayrollBatch) (uuid.UUID, error)
	UpsertTransfer(ctx context.Context, doc *entity.Document, rec *entity.TransferRecord) (uuid.UUID, error)

	// RecordFailure stores or refreshes the FAILED row for a natural key so
	// later runs can see the attempt. Must never downgrade a processed row.
	RecordFailure(ctx context.Context, doc *entity.Document, reason string) error
}
