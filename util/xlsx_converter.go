package util

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ConvertWorkbookToCSV writes every sheet of the workbook (or only sheet,
// when given) to "<stem>.<sheet>.csv" next to the input and returns the
// written paths in sheet order.
func ConvertWorkbookToCSV(path, sheet string) ([]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", path, err)
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if sheet != "" {
		if idx, err := x.GetSheetIndex(sheet); err != nil || idx < 0 {
			return nil, fmt.Errorf("sheet %q not found in %q", sheet, path)
		}
		sheets = []string{sheet}
	}

	var written []string
	for _, name := range sheets {
		rows, err := x.GetRows(name)
		if err != nil {
			return written, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		out := SheetCSVPath(path, name)
		if err := writeCSV(out, rows); err != nil {
			return written, err
		}
		written = append(written, out)
	}
	return written, nil
}

// SheetCSVPath swaps the workbook extension for ".<sheet>.csv".
func SheetCSVPath(path, sheet string) string {
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	return stem + "." + sheet + ".csv"
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()

	// excelize drops trailing empty cells; pad so every record has the same width.
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	w := csv.NewWriter(f)
	for _, r := range rows {
		record := make([]string, width)
		copy(record, r)
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write %q: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
