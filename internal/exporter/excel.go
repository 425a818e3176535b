// Package exporter renders a transaction selection into a downloadable
// xlsx workbook.
package exporter

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"kosh/internal/models"
)

// ErrEmptySelection is returned when there is nothing to export.
var ErrEmptySelection = errors.New("no data in selected range")

// SheetName is the single worksheet holding the records.
const SheetName = "Transactions"

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{"Date", "Name", "Transaction Type", "Amount", "Aadhar Number", "Phone Number"}

var columnWidths = []float64{12, 22, 16, 14, 16, 16}

// Excel renders transactions into xlsx bytes.
type Excel struct{}

// New creates an Excel exporter.
func New() *Excel { return &Excel{} }

// Export builds the workbook: a header row with an auto-filter, dates
// as real date cells where parseable, amounts as numbers with a
// thousands-separated 2-decimal format, and "N/A" for missing identity
// or phone values.
func (e *Excel) Export(records []models.Transaction) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptySelection
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	amountFmt := "#,##0.00"
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt})
	if err != nil {
		return nil, fmt.Errorf("amount style: %w", err)
	}
	dateFmt := "dd/mm/yyyy"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, fmt.Errorf("date style: %w", err)
	}

	for i, t := range records {
		row := i + 2

		dateCell, _ := excelize.CoordinatesToCellName(1, row)
		if d := models.ParseDMY(t.Date); !d.IsZero() {
			if err := f.SetCellValue(SheetName, dateCell, d); err != nil {
				return nil, fmt.Errorf("write date: %w", err)
			}
			if err := f.SetCellStyle(SheetName, dateCell, dateCell, dateStyle); err != nil {
				return nil, fmt.Errorf("style date: %w", err)
			}
		} else if err := f.SetCellValue(SheetName, dateCell, t.Date); err != nil {
			return nil, fmt.Errorf("write date: %w", err)
		}

		values := []interface{}{t.Name, t.TransactionType, t.Amount, orNA(t.AadharNumber), orNA(t.Phone)}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+2, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}

		amountCell, _ := excelize.CoordinatesToCellName(4, row)
		if err := f.SetCellStyle(SheetName, amountCell, amountCell, amountStyle); err != nil {
			return nil, fmt.Errorf("style amount: %w", err)
		}
	}

	for col, w := range columnWidths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(SheetName, name, name, w); err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
	}

	ref := fmt.Sprintf("A1:F%d", len(records)+1)
	if err := f.AutoFilter(SheetName, ref, nil); err != nil {
		return nil, fmt.Errorf("auto filter: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}
