package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sidepp-ar/docingest/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	payrollRepo  repository.PayrollRepository
	transferRepo repository.TransferRepository
	logger       *slog.Logger
}

func NewService(payrollRepo repository.PayrollRepository, transferRepo repository.TransferRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{payrollRepo: payrollRepo, transferRepo: transferRepo, logger: logger}
}

// ExportXLSX returns a workbook with one sheet of payroll entries and one of
// transfers. An empty period exports every stored batch.
func (s *Service) ExportXLSX(ctx context.Context, period string) ([]byte, error) {
	start := time.Now()

	batches, err := s.payrollRepo.ListBatches(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("query payroll batches: %w", err)
	}
	transfers, err := s.transferRepo.ListTransfers(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query transfers: %w", err)
	}

	f := excelize.NewFile()

	payrollRows, err := s.writePayrollSheet(f, batches)
	if err != nil {
		return nil, err
	}
	transferRows, err := s.writeTransferSheet(f, transfers)
	if err != nil {
		return nil, err
	}

	// drop excelize's default sheet
	_ = f.DeleteSheet("Sheet1")
	if idx, _ := f.GetSheetIndex(payrollSheet); idx != -1 {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"period", period,
		"payroll_rows", payrollRows,
		"transfer_rows", transferRows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

const (
	payrollSheet  = "Payroll"
	transferSheet = "Transfers"
)

func (s *Service) writePayrollSheet(f *excelize.File, batches []*repository.BatchRecord) (int, error) {
	if _, err := f.NewSheet(payrollSheet); err != nil {
		return 0, err
	}

	headers := []string{
		"Period",
		"Last Name",
		"First Name",
		"National ID",
		"Bank Account",
		"Amount",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(payrollSheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(payrollSheet, cell, v)
	}

	row := 2
	for _, b := range batches {
		period := b.Batch.Period
		if b.Batch.PeriodFallback {
			period += " (estimado)"
		}
		for _, e := range b.Batch.Entries {
			write(1, row, period)
			write(2, row, e.LastName)
			write(3, row, e.FirstName)
			write(4, row, e.NationalID)
			write(5, row, e.BankAccountID)
			write(6, row, e.Amount.StringFixed(2))
			write(7, row, b.Filename)
			row++
		}
		// batch total line
		write(1, row, period)
		write(2, row, "TOTAL")
		write(6, row, b.Batch.Total.StringFixed(2))
		write(7, row, b.Filename)
		row++
	}

	_ = f.SetColWidth(payrollSheet, "A", "A", 16)
	_ = f.SetColWidth(payrollSheet, "B", "C", 22)
	_ = f.SetColWidth(payrollSheet, "D", "D", 12)
	_ = f.SetColWidth(payrollSheet, "E", "E", 26)
	_ = f.SetColWidth(payrollSheet, "F", "F", 14)
	_ = f.SetColWidth(payrollSheet, "G", "G", 48)

	return row - 2, nil
}

func (s *Service) writeTransferSheet(f *excelize.File, transfers []*repository.TransferRow) (int, error) {
	if _, err := f.NewSheet(transferSheet); err != nil {
		return 0, err
	}

	headers := []string{
		"Operation Date",
		"Amount",
		"Currency",
		"Source Account",
		"Destination Account",
		"Reference",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(transferSheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(transferSheet, cell, v)
	}

	row := 2
	for _, t := range transfers {
		date := t.Transfer.OperationDate.Format("2006-01-02")
		if t.Transfer.DateFallback {
			date += " (estimado)"
		}
		write(1, row, date)
		write(2, row, t.Transfer.Amount.StringFixed(2))
		write(3, row, t.Transfer.Currency)
		write(4, row, t.Transfer.SourceAccountID)
		write(5, row, t.Transfer.DestAccountID)
		write(6, row, truncate(t.Transfer.Reference, 140))
		write(7, row, t.Filename)
		row++
	}

	_ = f.SetColWidth(transferSheet, "A", "A", 18)
	_ = f.SetColWidth(transferSheet, "B", "C", 12)
	_ = f.SetColWidth(transferSheet, "D", "E", 26)
	_ = f.SetColWidth(transferSheet, "F", "F", 48)
	_ = f.SetColWidth(transferSheet, "G", "G", 48)

	return row - 2, nil
}

// truncate caps s at n runes, never splitting a multi-byte character.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
