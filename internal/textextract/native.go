package textextract

import (
	"bytes"
	"fmt"

	"github.com/dslipak/pdf"
)

// nativeText reads the PDF's embedded text layer. Fast path: no subprocess,
// no rasterization. Scanned documents have no text layer and fall through.
func (e *Extractor) nativeText(data []byte) (res stageResult) {
	// The pdf reader panics on some malformed files; treat that as a stage
	// failure so the chain can continue.
	defer func() {
		if r := recover(); r != nil {
			res = stageResult{err: fmt.Errorf("pdf reader panic: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return stageResult{err: fmt.Errorf("open pdf: %w", err)}
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return stageResult{err: fmt.Errorf("read text layer: %w", err)}
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return stageResult{err: fmt.Errorf("read text layer: %w", err)}
	}

	return stageResult{text: buf.String(), pages: r.NumPage()}
}
