package textextract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// layoutToolText invokes pdftotext in layout-preserving mode against the
// temp copy of the document. The tool writes to an output path; a missing or
// empty output file is tolerated and falls through to OCR.
func (e *Extractor) layoutToolText(ctx context.Context, pdfPath, tmpDir string) stageResult {
	outPath := filepath.Join(tmpDir, "layout.txt")

	// pdftotext -layout -enc UTF-8 -eol unix <in.pdf> <out.txt>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", pdfPath, outPath)
	if err != nil {
		return stageResult{warns: []string{string(errb)}, err: fmt.Errorf("pdftotext: %w", err)}
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		return stageResult{err: fmt.Errorf("pdftotext wrote no output: %w", err)}
	}

	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return stageResult{text: text, pages: pages}
}
