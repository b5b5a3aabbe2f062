package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sidepp-ar/docingest/internal/common"
	"github.com/sidepp-ar/docingest/internal/export"
	"github.com/sidepp-ar/docingest/internal/fieldextract"
	"github.com/sidepp-ar/docingest/internal/ingest"
	"github.com/sidepp-ar/docingest/internal/pipeline"
	repo "github.com/sidepp-ar/docingest/internal/repository"
	"github.com/sidepp-ar/docingest/internal/textextract"
	"github.com/sidepp-ar/docingest/internal/validate"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory to process documents from (required)")
		out      = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		period   = flag.String("period", "", "restrict the export to one period (MM/YYYY)")
		workers  = flag.Int("workers", 0, "documents processed concurrently (0 = config default)")
		noExport = flag.Bool("no-export", false, "skip the XLSX export step")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "docingest.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}
	cfg := common.LoadConfig()
	if *workers > 0 {
		cfg.Pipeline.Workers = *workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, cleanup, err := repo.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Wire the pipeline
	gateway := repo.NewDocumentGateway(entc, logger)
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
	orchestrator := pipeline.NewOrchestrator(
		logger,
		extractor,
		fieldextract.DefaultRegistry(),
		validate.NewValidator(logger),
		gateway,
		pipeline.Config{
			Workers:         cfg.Pipeline.Workers,
			DocumentTimeout: cfg.Pipeline.DocumentTimeout,
		},
	)

	logger.Info("collecting documents", "dir", *dir)
	docs, stats, err := ingest.CollectDirectory(*dir, true, logger)
	if err != nil {
		logger.Error("failed to collect documents", "error", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		printError("No documents found under %s\n", *dir)
		os.Exit(1)
	}

	outcomes := orchestrator.ProcessBatch(ctx, docs)

	processed := 0
	skipped := 0
	failures := 0
	for _, o := range outcomes {
		switch {
		case o.AlreadyProcessed:
			skipped++
		case o.Success:
			processed++
		default:
			failures++
			printError("FAILED %s: %v\n", o.SourceName, o.Err)
		}
	}

	if !*noExport {
		logger.Info("exporting to XLSX", "output", *out)
		exportService := export.NewService(
			repo.NewPayrollRepository(entc, logger),
			repo.NewTransferRepository(entc, logger),
			logger,
		)
		xlsxBytes, err := exportService.ExportXLSX(ctx, *period)
		if err != nil {
			logger.Error("failed to export", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("batch processing complete",
		"files_found", stats.Matched,
		"processed", processed,
		"already_processed", skipped,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files found: %d\n", stats.Matched)
	fmt.Printf("- Processed: %d\n", processed)
	fmt.Printf("- Already processed: %d\n", skipped)
	fmt.Printf("- Failures: %d\n", failures)
	if !*noExport {
		fmt.Printf("- Output: %s\n", *out)
	}
	if failures > 0 {
		os.Exit(1)
	}
}
