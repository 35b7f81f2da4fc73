package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/northloop/trendlens-cli/internal/stats"
)

const (
	statsSheet   = "Statistics"
	mediansSheet = "Category_Medians"
)

// WriteWorkbook saves the descriptive statistics, and the ranked category
// medians when present, to an XLSX workbook at path.
func WriteWorkbook(path string, sums []stats.Summary, medians []stats.RankedMedian) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", statsSheet)
	headers := []string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		f.SetCellValue(statsSheet, cell, h)
		f.SetColWidth(statsSheet, cell[:1], cell[:1], 16)
	}
	for i, s := range sums {
		row := i + 2
		f.SetCellValue(statsSheet, fmt.Sprintf("A%d", row), s.Column)
		f.SetCellValue(statsSheet, fmt.Sprintf("B%d", row), s.Count)
		f.SetCellValue(statsSheet, fmt.Sprintf("C%d", row), s.Mean)
		f.SetCellValue(statsSheet, fmt.Sprintf("D%d", row), s.Std)
		f.SetCellValue(statsSheet, fmt.Sprintf("E%d", row), s.Min)
		f.SetCellValue(statsSheet, fmt.Sprintf("F%d", row), s.Q25)
		f.SetCellValue(statsSheet, fmt.Sprintf("G%d", row), s.Median)
		f.SetCellValue(statsSheet, fmt.Sprintf("H%d", row), s.Q75)
		f.SetCellValue(statsSheet, fmt.Sprintf("I%d", row), s.Max)
	}

	if len(medians) > 0 {
		if _, err := f.NewSheet(mediansSheet); err != nil {
			return fmt.Errorf("create medians sheet: %w", err)
		}
		f.SetCellValue(mediansSheet, "A1", "Rank")
		f.SetCellValue(mediansSheet, "B1", "Category")
		f.SetCellValue(mediansSheet, "C1", "Median Popularity")
		f.SetCellValue(mediansSheet, "D1", "Rows")
		for i, m := range medians {
			row := i + 2
			f.SetCellValue(mediansSheet, fmt.Sprintf("A%d", row), i+1)
			f.SetCellValue(mediansSheet, fmt.Sprintf("B%d", row), m.Group)
			f.SetCellValue(mediansSheet, fmt.Sprintf("C%d", row), m.Median)
			f.SetCellValue(mediansSheet, fmt.Sprintf("D%d", row), m.Count)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
