// Package textextract turns raw PDF bytes into a plain-text transcript using
// an ordered fallback chain: embedded text layer, layout-preserving
// subprocess extraction, then page-image OCR.
package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sidepp-ar/docingest/internal/common"
	"github.com/sidepp-ar/docingest/internal/entity"
)

// Method tags a transcript with the extraction stage that produced it.
type Method string

const (
	MethodNative     Method = "NATIVE"      // PDF embedded text layer
	MethodLayoutTool Method = "LAYOUT_TOOL" // pdftotext -layout subprocess
	MethodOCR        Method = "OCR"         // pdftoppm + tesseract
)

// Transcript is the plain-text result of extracting a document, tagged with
// its provenance. Non-empty unless every stage failed, in which case the
// extractor returns an ExtractionError instead.
type Transcript struct {
	Text     string
	Method   Method
	Pages    int
	Duration time.Duration
	Warnings []string
}

// TextExtractor is stage 1 of the pipeline: bytes -> transcript.
type TextExtractor interface {
	Extract(ctx context.Context, doc entity.RawDocument) (Transcript, error)
}

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	OCRLanguage string // tesseract language profile, default "spa"
	DPI         int    // rasterization DPI for scanned PDFs, default 300
	MaxPages    int    // 0 = no limit
	TessdataDir string
	WorkDir     string // scratch dir for temp files; "" -> os temp
}

// Extractor runs the fallback chain. Each stage yields a tri-state result:
// text (done), empty (try the next stage), or error (recorded, try the next
// stage). Only exhausting every stage is an error for the document.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.OCRLanguage == "" {
		cfg.OCRLanguage = "spa"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

type stageResult struct {
	text  string
	pages int
	warns []string
	err   error
}

// Extract tries each stage in fixed order and stops at the first non-blank
// result. Temp files created for the subprocess stages live in a
// per-document directory removed on every exit path.
func (e *Extractor) Extract(ctx context.Context, doc entity.RawDocument) (Transcript, error) {
	start := time.Now()
	e.logger.Debug("textextract.start", "doc", doc.Name, "bytes", len(doc.Data))

	// Temp files exist only for the subprocess stages; a document satisfied
	// by its embedded text layer never touches the filesystem.
	var tmpDir, pdfPath string
	materialize := func() (string, string, error) {
		if tmpDir != "" {
			return pdfPath, tmpDir, nil
		}
		dir, err := os.MkdirTemp(e.cfg.WorkDir, "docingest-*")
		if err != nil {
			return "", "", fmt.Errorf("create temp dir: %w", err)
		}
		path := filepath.Join(dir, "source.pdf")
		if err := os.WriteFile(path, doc.Data, 0o600); err != nil {
			_ = os.RemoveAll(dir)
			return "", "", fmt.Errorf("write temp pdf: %w", err)
		}
		tmpDir, pdfPath = dir, path
		return pdfPath, tmpDir, nil
	}
	defer func() {
		if tmpDir == "" {
			return
		}
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("textextract.tmpdir.remove_failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	stages := []struct {
		method Method
		run    func() stageResult
	}{
		{MethodNative, func() stageResult { return e.nativeText(doc.Data) }},
		{MethodLayoutTool, func() stageResult {
			path, dir, err := materialize()
			if err != nil {
				return stageResult{err: err}
			}
			return e.layoutToolText(ctx, path, dir)
		}},
		{MethodOCR, func() stageResult {
			path, dir, err := materialize()
			if err != nil {
				return stageResult{err: err}
			}
			return e.ocrText(ctx, path, dir)
		}},
	}

	var attempts []string
	var warnings []string
	for _, st := range stages {
		res := st.run()
		warnings = append(warnings, res.warns...)
		if res.err != nil {
			e.logger.Warn("textextract.stage.failed", "doc", doc.Name, "method", string(st.method), "error", res.err)
			attempts = append(attempts, fmt.Sprintf("%s: %v", st.method, res.err))
			continue
		}
		text := Normalize(res.text)
		if strings.TrimSpace(text) == "" {
			e.logger.Debug("textextract.stage.empty", "doc", doc.Name, "method", string(st.method))
			attempts = append(attempts, fmt.Sprintf("%s: empty output", st.method))
			continue
		}
		e.logger.Info("textextract.ok",
			"doc", doc.Name,
			"method", string(st.method),
			"pages", res.pages,
			"chars", len(text),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return Transcript{
			Text:     text,
			Method:   st.method,
			Pages:    res.pages,
			Duration: time.Since(start),
			Warnings: warnings,
		}, nil
	}

	return Transcript{}, &common.ExtractionError{Reason: "no text recoverable", Attempts: attempts}
}
