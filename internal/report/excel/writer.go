// Package excel writes the status snapshot as a single-sheet .xlsx workbook.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"sysprobe/internal/fileutil"
	"sysprobe/internal/model"
)

const (
	// SheetName is the worksheet holding the snapshot.
	SheetName = "Status"

	// Default sheet to rename
	defaultSheet = "Sheet1"

	colorHeaderBg = "4472C4" // Blue background for header
	colorHeaderFg = "FFFFFF" // White text for header

	fieldColWidth = 26.0
	valueColWidth = 80.0
)

// Writer implements report.StatusWriter for Excel format.
type Writer struct{}

// NewWriter creates a new Excel status writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "excel"
}

// Extension returns the file extension for this writer.
func (w *Writer) Extension() string {
	return ".xlsx"
}

// Write generates a two-column field/value sheet from the record.
func (w *Writer) Write(record *model.StatusRecord, outputPath string) error {
	if record == nil {
		return fmt.Errorf("status record is nil")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: colorHeaderFg,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{colorHeaderBg},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	f.SetColWidth(SheetName, "A", "A", fieldColWidth)
	f.SetColWidth(SheetName, "B", "B", valueColWidth)

	for i, row := range rows(record) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	f.SetCellStyle(SheetName, "A1", "B1", headerStyle)

	return fileutil.WriteAtomic(outputPath, 0644, func(out io.Writer) error {
		if err := f.Write(out); err != nil {
			return fmt.Errorf("failed to save Excel file: %w", err)
		}
		return nil
	})
}

// rows flattens the record into field/value pairs in status file key order.
func rows(record *model.StatusRecord) [][]interface{} {
	out := [][]interface{}{
		{"field", "value"},
		{"timestamp", record.Timestamp},
		{"system", record.System},
		{"release", record.Release},
		{"go", record.GoVersion},
	}
	if record.Disk != nil {
		out = append(out,
			[]interface{}{"disk.total_gb", record.Disk.TotalGB},
			[]interface{}{"disk.used_gb", record.Disk.UsedGB},
			[]interface{}{"disk.free_gb", record.Disk.FreeGB},
			[]interface{}{"disk.free_percent", record.Disk.FreePercent},
		)
	}
	return append(out,
		[]interface{}{"command_run", record.CommandRun},
		[]interface{}{"command_return_code", record.CommandReturnCode},
		[]interface{}{"command_stdout_preview", record.CommandStdoutPreview},
		[]interface{}{"command_stderr_preview", record.CommandStderrPreview},
	)
}
