package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/common"
	"github.com/sidepp-ar/docingest/internal/entity"
	"github.com/sidepp-ar/docingest/internal/fieldextract"
	"github.com/sidepp-ar/docingest/internal/textextract"
	"github.com/sidepp-ar/docingest/internal/validate"
)

const payrollText = `LIQUIDACION DE HABERES SIDEPP
Periodo: 03/2024
Personas                        Tot Remunerativo
PEREZ JUAN        20123456      1.500,00
GOMEZ MARIA       27876543      2.000,50
Totales:                        3.500,50`

const transferText = `COMPROBANTE DE TRANSFERENCIA
Fecha: 15/03/2024
Importe: $ 2.500,00
CBU Origen: 0070999020000038221395
CBU Destino: 2850590940090418135201
Referencia: Pago proveedores`

// stubExtractor maps document names to canned transcripts.
type stubExtractor struct {
	mu    sync.Mutex
	texts map[string]string
	calls int
}

func (s *stubExtractor) Extract(_ context.Context, doc entity.RawDocument) (textextract.Transcript, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	text, ok := s.texts[doc.Name]
	if !ok {
		return textextract.Transcript{}, &common.ExtractionError{Reason: "no text recoverable"}
	}
	return textextract.Transcript{Text: text, Method: textextract.MethodNative, Pages: 1}, nil
}

// fakeGateway is an in-memory PersistenceGateway keyed by natural key.
type fakeGateway struct {
	mu        sync.Mutex
	docs      map[string]*entity.Document
	payrolls  int
	transfers int
	failures  int
	upsertErr error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{docs: make(map[string]*entity.Document)}
}

func (g *fakeGateway) FindByNaturalKey(_ context.Context, key string) (*entity.Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if doc, ok := g.docs[key]; ok {
		cp := *doc
		return &cp, nil
	}
	return nil, nil
}

func (g *fakeGateway) UpsertPayroll(_ context.Context, doc *entity.Document, _ *entity.PayrollBatch) (uuid.UUID, error) {
	return g.record(doc, &g.payrolls)
}

func (g *fakeGateway) UpsertTransfer(_ context.Context, doc *entity.Document, _ *entity.TransferRecord) (uuid.UUID, error) {
	return g.record(doc, &g.transfers)
}

func (g *fakeGateway) RecordFailure(_ context.Context, doc *entity.Document, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if prior, ok := g.docs[doc.NaturalKey]; ok && prior.Status == constants.StatusProcessed {
		return nil
	}
	g.failures++
	stored := *doc
	stored.Status = constants.StatusFailed
	g.docs[doc.NaturalKey] = &stored
	return nil
}

func (g *fakeGateway) record(doc *entity.Document, counter *int) (uuid.UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.upsertErr != nil {
		return uuid.Nil, g.upsertErr
	}
	*counter++
	stored := *doc
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	g.docs[doc.NaturalKey] = &stored
	return stored.ID, nil
}

func newTestOrchestrator(texts map[string]string, gw PersistenceGateway) (*Orchestrator, *stubExtractor) {
	ex := &stubExtractor{texts: texts}
	o := NewOrchestrator(
		nil,
		ex,
		fieldextract.DefaultRegistry(),
		validate.NewValidator(nil),
		gw,
		Config{Workers: 2, DocumentTimeout: time.Minute},
	)
	return o, ex
}

func TestProcessDocument_Payroll(t *testing.T) {
	gw := newFakeGateway()
	o, _ := newTestOrchestrator(map[string]string{"payroll.pdf": payrollText}, gw)

	out := o.ProcessDocument(context.Background(), entity.RawDocument{Name: "payroll.pdf", Data: []byte("p1")})

	require.NoError(t, out.Err)
	assert.True(t, out.Success)
	assert.Equal(t, constants.DocTypePayroll, out.DocType)
	assert.False(t, out.AlreadyProcessed)
	require.IsType(t, &entity.PayrollBatch{}, out.Payload)
	assert.Equal(t, 1, gw.payrolls)
}

func TestProcessDocument_Transfer(t *testing.T) {
	gw := newFakeGateway()
	o, _ := newTestOrchestrator(map[string]string{"transfer.pdf": transferText}, gw)

	out := o.ProcessDocument(context.Background(), entity.RawDocument{Name: "transfer.pdf", Data: []byte("t1")})

	require.NoError(t, out.Err)
	assert.True(t, out.Success)
	assert.Equal(t, constants.DocTypeTransfer, out.DocType)
	assert.Equal(t, 1, gw.transfers)
}

func TestProcessDocument_AlreadyProcessedSkips(t *testing.T) {
	gw := newFakeGateway()
	doc := entity.RawDocument{Name: "payroll.pdf", Data: []byte("p1")}
	gw.docs[doc.NaturalKey()] = &entity.Document{
		NaturalKey: doc.NaturalKey(),
		DocType:    constants.DocTypePayroll,
		Status:     constants.StatusProcessed,
	}

	o, ex := newTestOrchestrator(map[string]string{"payroll.pdf": payrollText}, gw)
	out := o.ProcessDocument(context.Background(), doc)

	assert.True(t, out.Success)
	assert.True(t, out.AlreadyProcessed)
	assert.Equal(t, constants.DocTypePayroll, out.DocType)
	assert.Equal(t, 0, ex.calls, "extraction must not run for a processed key")
	assert.Equal(t, 0, gw.payrolls)
}

func TestProcessDocument_PriorFailureIsRetried(t *testing.T) {
	gw := newFakeGateway()
	doc := entity.RawDocument{Name: "payroll.pdf", Data: []byte("p1")}
	gw.docs[doc.NaturalKey()] = &entity.Document{
		NaturalKey: doc.NaturalKey(),
		DocType:    constants.DocTypePayroll,
		Status:     constants.StatusFailed,
	}

	o, ex := newTestOrchestrator(map[string]string{"payroll.pdf": payrollText}, gw)
	out := o.ProcessDocument(context.Background(), doc)

	assert.True(t, out.Success)
	assert.False(t, out.AlreadyProcessed)
	assert.Equal(t, 1, ex.calls)
	assert.Equal(t, 1, gw.payrolls)
}

func TestProcessDocument_UnknownType(t *testing.T) {
	gw := newFakeGateway()
	o, _ := newTestOrchestrator(map[string]string{"junk.pdf": "factura de servicios"}, gw)

	out := o.ProcessDocument(context.Background(), entity.RawDocument{Name: "junk.pdf", Data: []byte("j1")})

	require.Error(t, out.Err)
	assert.False(t, out.Success)
	assert.Equal(t, constants.DocTypeUnknown, out.DocType)
	var unsupported *common.UnsupportedDocumentError
	assert.True(t, errors.As(out.Err, &unsupported))

	doc := entity.RawDocument{Name: "junk.pdf", Data: []byte("j1")}
	stored := gw.docs[doc.NaturalKey()]
	require.NotNil(t, stored, "failed attempts must leave a row")
	assert.Equal(t, constants.StatusFailed, stored.Status)
	assert.Equal(t, 1, gw.failures)
}

func TestProcessDocument_ExtractionFailure(t *testing.T) {
	gw := newFakeGateway()
	o, _ := newTestOrchestrator(map[string]string{}, gw)

	out := o.ProcessDocument(context.Background(), entity.RawDocument{Name: "blank.pdf", Data: []byte("b1")})

	require.Error(t, out.Err)
	var exErr *common.ExtractionError
	assert.True(t, errors.As(out.Err, &exErr))
}

func TestProcessDocument_PersistFailureKeepsPayload(t *testing.T) {
	gw := newFakeGateway()
	gw.upsertErr = errors.New("connection refused")
	o, _ := newTestOrchestrator(map[string]string{"transfer.pdf": transferText}, gw)

	out := o.ProcessDocument(context.Background(), entity.RawDocument{Name: "transfer.pdf", Data: []byte("t1")})

	require.Error(t, out.Err)
	assert.False(t, out.Success)
	var pErr *common.PersistenceError
	assert.True(t, errors.As(out.Err, &pErr))
	require.IsType(t, &entity.TransferRecord{}, out.Payload, "validated payload must survive a persist failure")
}

func TestProcessBatch_OrderAndIsolation(t *testing.T) {
	gw := newFakeGateway()
	o, _ := newTestOrchestrator(map[string]string{
		"a.pdf": payrollText,
		"c.pdf": transferText,
	}, gw)

	docs := []entity.RawDocument{
		{Name: "a.pdf", Data: []byte("a")},
		{Name: "b.pdf", Data: []byte("b")}, // no transcript -> fails
		{Name: "c.pdf", Data: []byte("c")},
	}
	outcomes := o.ProcessBatch(context.Background(), docs)

	require.Len(t, outcomes, 3)
	assert.Equal(t, "a.pdf", outcomes[0].SourceName)
	assert.Equal(t, "b.pdf", outcomes[1].SourceName)
	assert.Equal(t, "c.pdf", outcomes[2].SourceName)

	assert.True(t, outcomes[0].Success)
	assert.False(t, outcomes[1].Success)
	require.Error(t, outcomes[1].Err)
	assert.True(t, outcomes[2].Success, "a failing sibling must not abort the batch")
	assert.Equal(t, 1, gw.payrolls)
	assert.Equal(t, 1, gw.transfers)
}

func TestProcessBatch_DuplicateInputsDedupe(t *testing.T) {
	gw := newFakeGateway()
	o, _ := newTestOrchestrator(map[string]string{
		"x.pdf": payrollText,
		"y.pdf": payrollText,
	}, gw)

	// Same bytes under two names: one natural key.
	docs := []entity.RawDocument{
		{Name: "x.pdf", Data: []byte("same")},
		{Name: "y.pdf", Data: []byte("same")},
	}
	// Workers=1 forces sequential processing so the second sees the first.
	o.cfg.Workers = 1
	outcomes := o.ProcessBatch(context.Background(), docs)

	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Success)
	assert.True(t, outcomes[1].Success)
	assert.True(t, outcomes[1].AlreadyProcessed)
	assert.Equal(t, 1, gw.payrolls)
}

func TestProcessBatch_CanceledContext(t *testing.T) {
	gw := newFakeGateway()
	o, ex := newTestOrchestrator(map[string]string{"a.pdf": payrollText}, gw)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := o.ProcessBatch(ctx, []entity.RawDocument{{Name: "a.pdf", Data: []byte("a")}})
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Success)
	require.Error(t, outcomes[0].Err)
	assert.ErrorIs(t, outcomes[0].Err, context.Canceled)
	assert.Equal(t, 0, ex.calls)
}
