package textextract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidepp-ar/docingest/internal/common"
	"github.com/sidepp-ar/docingest/internal/entity"
)

// stubRunner fakes pdftotext, pdftoppm and tesseract. pdftotext writes
// layoutText to its output path; pdftoppm materializes one png per OCR page;
// tesseract returns the page's canned text on stdout.
type stubRunner struct {
	layoutText  string
	layoutErr   error
	ocrPages    []string
	pdftoppmErr error
	tessErr     error
	calls       []string
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, name)
	switch name {
	case "pdftotext":
		if r.layoutErr != nil {
			return nil, []byte("pdftotext stub failure"), r.layoutErr
		}
		outPath := args[len(args)-1]
		if err := os.WriteFile(outPath, []byte(r.layoutText), 0o600); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	case "pdftoppm":
		if r.pdftoppmErr != nil {
			return nil, []byte("pdftoppm stub failure"), r.pdftoppmErr
		}
		prefix := args[len(args)-1]
		for i := range r.ocrPages {
			path := fmt.Sprintf("%s-%d.png", prefix, i+1)
			if err := os.WriteFile(path, []byte("png"), 0o600); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		if r.tessErr != nil {
			return nil, []byte("tesseract stub failure"), r.tessErr
		}
		base := filepath.Base(args[0]) // page-N.png
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(base, "page-"), ".png"))
		if err != nil || n < 1 || n > len(r.ocrPages) {
			return nil, nil, fmt.Errorf("unexpected image %s", base)
		}
		return []byte(r.ocrPages[n-1]), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %s", name)
}

func newStubbedExtractor(t *testing.T, r Runner) *Extractor {
	t.Helper()
	e := NewExtractor(Config{WorkDir: t.TempDir()}, nil)
	e.runner = r
	return e
}

// garbageDoc has no parsable text layer, so the native stage always falls
// through to the subprocess stages.
func garbageDoc() entity.RawDocument {
	return entity.RawDocument{Name: "doc.pdf", Data: []byte("not a real pdf")}
}

func TestExtract_LayoutStage(t *testing.T) {
	r := &stubRunner{layoutText: "Transferencia recibida\nImporte: $ 100,00\f pagina dos"}
	e := newStubbedExtractor(t, r)

	tr, err := e.Extract(context.Background(), garbageDoc())
	require.NoError(t, err)
	assert.Equal(t, MethodLayoutTool, tr.Method)
	assert.Equal(t, 2, tr.Pages)
	assert.Contains(t, tr.Text, "Transferencia recibida")
	assert.NotContains(t, r.calls, "pdftoppm", "OCR must not run once a stage yields text")
}

func TestExtract_FallsThroughToOCR(t *testing.T) {
	r := &stubRunner{
		layoutText: "   \n  ", // blank output is treated as a miss
		ocrPages:   []string{"Liquidacion de haberes", "Totales: 1.500,00"},
	}
	e := newStubbedExtractor(t, r)

	tr, err := e.Extract(context.Background(), garbageDoc())
	require.NoError(t, err)
	assert.Equal(t, MethodOCR, tr.Method)
	assert.Equal(t, 2, tr.Pages)
	assert.Contains(t, tr.Text, "Liquidacion de haberes")
	assert.Contains(t, tr.Text, "Totales: 1.500,00")
}

func TestExtract_LayoutErrorStillTriesOCR(t *testing.T) {
	r := &stubRunner{
		layoutErr: errors.New("exit status 1"),
		ocrPages:  []string{"texto ocr"},
	}
	e := newStubbedExtractor(t, r)

	tr, err := e.Extract(context.Background(), garbageDoc())
	require.NoError(t, err)
	assert.Equal(t, MethodOCR, tr.Method)
}

func TestExtract_AllStagesExhausted(t *testing.T) {
	r := &stubRunner{
		layoutErr:   errors.New("exit status 1"),
		pdftoppmErr: errors.New("exit status 1"),
	}
	e := newStubbedExtractor(t, r)

	_, err := e.Extract(context.Background(), garbageDoc())
	require.Error(t, err)

	var exErr *common.ExtractionError
	require.True(t, errors.As(err, &exErr))
	assert.Len(t, exErr.Attempts, 3, "every stage must be accounted for")
}

func TestExtract_MaxPagesCapsOCR(t *testing.T) {
	r := &stubRunner{
		ocrPages: []string{"uno", "dos", "tres"},
	}
	e := NewExtractor(Config{WorkDir: t.TempDir(), MaxPages: 2}, nil)
	e.runner = r

	tr, err := e.Extract(context.Background(), garbageDoc())
	require.NoError(t, err)
	assert.Equal(t, MethodOCR, tr.Method)
	assert.Equal(t, 2, tr.Pages)
	assert.NotContains(t, tr.Text, "tres")
}

func TestExtract_NativeStageNeedsNoScratchDir(t *testing.T) {
	// An unusable work dir only hurts the subprocess stages; the native
	// stage must still be attempted on the in-memory bytes.
	r := &stubRunner{layoutText: "algo de texto"}
	e := NewExtractor(Config{WorkDir: filepath.Join(t.TempDir(), "missing")}, nil)
	e.runner = r

	_, err := e.Extract(context.Background(), garbageDoc())
	require.Error(t, err)

	var exErr *common.ExtractionError
	require.True(t, errors.As(err, &exErr))
	assert.Len(t, exErr.Attempts, 3)
	assert.Empty(t, r.calls, "no subprocess may run without its scratch dir")
}

func TestExtract_CleansUpTempFiles(t *testing.T) {
	workDir := t.TempDir()
	r := &stubRunner{layoutText: "algo de texto"}
	e := NewExtractor(Config{WorkDir: workDir}, nil)
	e.runner = r

	_, err := e.Extract(context.Background(), garbageDoc())
	require.NoError(t, err)

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "per-document scratch dirs must be removed")
}
