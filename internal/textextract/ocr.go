package textextract

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ocrText rasterizes the PDF pages and runs tesseract over each image with
// the configured language profile. Terminal fallback: the most expensive
// stage, only reached when the text layer and pdftotext both came up blank.
func (e *Extractor) ocrText(ctx context.Context, pdfPath, tmpDir string) stageResult {
	prefix := filepath.Join(tmpDir, "page")

	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", pdfPath, prefix)
	if err != nil {
		return stageResult{warns: []string{string(errb)}, err: fmt.Errorf("pdftoppm: %w", err)}
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return stageResult{err: fmt.Errorf("pdftoppm rendered no pages")}
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	return stageResult{text: b.String(), pages: len(matches), warns: warns}
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.OCRLanguage}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}
