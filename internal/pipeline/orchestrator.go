// Package pipeline composes text extraction, classification, field
// extraction, validation and persistence per document, and runs batches
// under a bounded worker pool.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/classify"
	"github.com/sidepp-ar/docingest/internal/common"
	"github.com/sidepp-ar/docingest/internal/entity"
	"github.com/sidepp-ar/docingest/internal/fieldextract"
	"github.com/sidepp-ar/docingest/internal/textextract"
	"github.com/sidepp-ar/docingest/internal/validate"
)

// stage names the per-document state machine steps, in order. Any stage
// failure transitions straight to FAILED for that document only.
type stage string

const (
	stageExtractText   stage = "EXTRACT_TEXT"
	stageClassify      stage = "CLASSIFY"
	stageExtractFields stage = "EXTRACT_FIELDS"
	stageValidate      stage = "VALIDATE"
	stagePersist       stage = "PERSIST"
)

type Config struct {
	Workers         int           // max documents in flight; default 3
	DocumentTimeout time.Duration // per-document cap; default 3m
}

type Orchestrator struct {
	logger    *slog.Logger
	extractor textextract.TextExtractor
	registry  *fieldextract.Registry
	validator *validate.Validator
	gateway   PersistenceGateway
	cfg       Config
}

func NewOrchestrator(
	logger *slog.Logger,
	extractor textextract.TextExtractor,
	registry *fieldextract.Registry,
	validator *validate.Validator,
	gateway PersistenceGateway,
	cfg Config,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 3
	}
	if cfg.DocumentTimeout <= 0 {
		cfg.DocumentTimeout = 3 * time.Minute
	}
	return &Orchestrator{
		logger:    logger,
		extractor: extractor,
		registry:  registry,
		validator: validator,
		gateway:   gateway,
		cfg:       cfg,
	}
}

// ProcessDocument runs the full state machine for one document. Every
// failure is converted into the outcome; it never aborts siblings.
func (o *Orchestrator) ProcessDocument(ctx context.Context, doc entity.RawDocument) entity.ProcessingOutcome {
	start := time.Now()
	outcome := entity.ProcessingOutcome{SourceName: doc.Name, DocType: constants.DocTypeUnknown}

	// Idempotency check precedes extraction: a prior successful outcome
	// under the same natural key means the document is skipped, not redone.
	key := doc.NaturalKey()
	if prior, err := o.gateway.FindByNaturalKey(ctx, key); err != nil {
		return o.failed(outcome, stageExtractText, &common.PersistenceError{Op: "find", Cause: err})
	} else if prior != nil && prior.Status == constants.StatusProcessed {
		o.logger.Info("pipeline.skip.already_processed", "doc", doc.Name, "natural_key", key)
		outcome.DocType = prior.DocType
		outcome.Success = true
		outcome.AlreadyProcessed = true
		return outcome
	}

	// EXTRACT_TEXT
	transcript, err := o.extractor.Extract(ctx, doc)
	if err != nil {
		return o.fail(ctx, doc, key, outcome, stageExtractText, err)
	}

	// CLASSIFY
	docType := classify.Classify(transcript.Text)
	outcome.DocType = docType
	if docType == constants.DocTypeUnknown {
		return o.fail(ctx, doc, key, outcome, stageClassify, &common.UnsupportedDocumentError{Type: docType})
	}

	// EXTRACT_FIELDS
	ex := o.registry.For(docType)
	if ex == nil {
		return o.fail(ctx, doc, key, outcome, stageExtractFields, &common.UnsupportedDocumentError{Type: docType})
	}
	record, err := ex.Extract(transcript.Text)
	if err != nil {
		return o.fail(ctx, doc, key, outcome, stageExtractFields, fmt.Errorf("extract fields: %w", err))
	}

	// VALIDATE
	if res := o.validator.Validate(record, docType); !res.OK {
		return o.fail(ctx, doc, key, outcome, stageValidate, &common.ValidationError{Failures: res.Failures})
	}

	// PERSIST
	docRow := &entity.Document{
		Filename:    doc.Name,
		NaturalKey:  key,
		DocType:     docType,
		Status:      constants.StatusProcessed,
		ProcessedAt: time.Now().UTC(),
	}
	if err := o.persist(ctx, docRow, record); err != nil {
		// Validated data must not be lost silently: the payload rides on
		// the failed outcome so the caller can retry.
		outcome.Payload = record
		return o.fail(ctx, doc, key, outcome, stagePersist, err)
	}

	outcome.Success = true
	outcome.Payload = record
	o.logger.Info("pipeline.done",
		"doc", doc.Name,
		"type", string(docType),
		"method", string(transcript.Method),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return outcome
}

func (o *Orchestrator) persist(ctx context.Context, docRow *entity.Document, record any) error {
	switch rec := record.(type) {
	case *entity.PayrollBatch:
		if _, err := o.gateway.UpsertPayroll(ctx, docRow, rec); err != nil {
			return &common.PersistenceError{Op: "upsert payroll", Cause: err}
		}
	case *entity.TransferRecord:
		if _, err := o.gateway.UpsertTransfer(ctx, docRow, rec); err != nil {
			return &common.PersistenceError{Op: "upsert transfer", Cause: err}
		}
	default:
		return fmt.Errorf("unsupported record type %T", record)
	}
	return nil
}

// ProcessBatch processes documents under a bounded worker pool. Outcomes
// come back in submission order regardless of completion order. On
// cancellation, in-flight documents finish; unstarted ones fail fast with
// the context error.
func (o *Orchestrator) ProcessBatch(ctx context.Context, docs []entity.RawDocument) []entity.ProcessingOutcome {
	outcomes := make([]entity.ProcessingOutcome, len(docs))

	var g errgroup.Group
	g.SetLimit(o.cfg.Workers)

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			outcomes[i] = entity.ProcessingOutcome{
				SourceName: doc.Name,
				DocType:    constants.DocTypeUnknown,
				Err:        fmt.Errorf("batch canceled before start: %w", err),
			}
			continue
		}

		g.Go(func() error {
			// Re-check after waiting for a worker slot.
			if err := ctx.Err(); err != nil {
				outcomes[i] = entity.ProcessingOutcome{
					SourceName: doc.Name,
					DocType:    constants.DocTypeUnknown,
					Err:        fmt.Errorf("batch canceled before start: %w", err),
				}
				return nil
			}
			// Detached from batch cancellation so an in-flight document
			// runs to completion; bounded by the per-document timeout.
			docCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.cfg.DocumentTimeout)
			defer cancel()
			outcomes[i] = o.ProcessDocument(docCtx, doc)
			return nil
		})
	}
	_ = g.Wait()

	succeeded := 0
	for _, out := range outcomes {
		if out.Success {
			succeeded++
		}
	}
	o.logger.Info("pipeline.batch.done", "total", len(docs), "succeeded", succeeded, "failed", len(docs)-succeeded)
	return outcomes
}

func (o *Orchestrator) failed(outcome entity.ProcessingOutcome, st stage, err error) entity.ProcessingOutcome {
	o.logger.Error("pipeline.stage.failed", "doc", outcome.SourceName, "stage", string(st), "error", err)
	outcome.Success = false
	outcome.Err = err
	return outcome
}

// fail records the FAILED row best-effort before returning the outcome, so
// a later listing shows which documents were attempted and why they failed.
func (o *Orchestrator) fail(ctx context.Context, doc entity.RawDocument, key string, outcome entity.ProcessingOutcome, st stage, err error) entity.ProcessingOutcome {
	out := o.failed(outcome, st, err)
	row := &entity.Document{
		Filename:   doc.Name,
		NaturalKey: key,
		DocType:    out.DocType,
		Status:     constants.StatusFailed,
	}
	if rerr := o.gateway.RecordFailure(ctx, row, err.Error()); rerr != nil {
		o.logger.Warn("pipeline.failure.record_failed", "doc", doc.Name, "error", rerr)
	}
	return out
}
