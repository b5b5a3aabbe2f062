package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/classify"
	"github.com/sidepp-ar/docingest/internal/common"
	"github.com/sidepp-ar/docingest/internal/fieldextract"
	"github.com/sidepp-ar/docingest/internal/ingest"
	"github.com/sidepp-ar/docingest/internal/textextract"
)

// runextract processes a single PDF without touching the database: extract
// text, classify, extract fields, and dump the structured record as JSON.
func main() {
	showText := flag.Bool("text", false, "also print the extracted transcript")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "runextract [-text] <file.pdf>")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}
	cfg := common.LoadConfig()

	doc, err := ingest.CollectPath(flag.Arg(0))
	if err != nil {
		logger.Error("failed to read document", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := textextract.NewExtractor(textextract.Config{
		Pdftotext:   cfg.Extract.Pdftotext,
		Pdftoppm:    cfg.Extract.Pdftoppm,
		Tesseract:   cfg.Extract.Tesseract,
		OCRLanguage: cfg.Extract.OCRLanguage,
		DPI:         cfg.Extract.DPI,
		MaxPages:    cfg.Extract.MaxPages,
		TessdataDir: cfg.Extract.TessdataDir,
		WorkDir:     cfg.Extract.WorkDir,
	}, logger)

	start := time.Now()
	transcript, err := extractor.Extract(ctx, doc)
	if err != nil {
		logger.Error("text extraction failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}
	logger.Info("text extraction OK",
		"method", string(transcript.Method),
		"pages", transcript.Pages,
		"bytes", len(transcript.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if *showText {
		fmt.Fprintln(os.Stderr, transcript.Text)
	}

	docType := classify.Classify(transcript.Text)
	logger.Info("classified", "type", string(docType))
	if docType == constants.DocTypeUnknown {
		logger.Error("unsupported document type")
		os.Exit(1)
	}

	ex := fieldextract.DefaultRegistry().For(docType)
	record, err := ex.Extract(transcript.Text)
	if err != nil {
		logger.Error("field extraction failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
}
