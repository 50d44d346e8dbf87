package finance

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// this file contains the spreadsheet export collaborator. Export consumes a
// read-only snapshot; a failure here surfaces to the user and never touches
// the ledger or its persisted file.

const exportSheetName = "Transaction History"

// ExportXLSX writes txs to an XLSX workbook at path, with the seven ledger
// columns, a bold header row, and columns sized to their widest cell.
func ExportXLSX(path string, txs []Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("cannot name export sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheetName, "A1", &[]interface{}{
		"Date", "Type", "Category", "Reason", "Amount", "Notes", "Mode",
	}); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    []excelize.Border{{Type: "bottom", Style: 1, Color: "000000"}},
	})
	if err != nil {
		return fmt.Errorf("cannot create header style: %w", err)
	}
	if err := f.SetCellStyle(exportSheetName, "A1", "G1", headerStyle); err != nil {
		return fmt.Errorf("cannot style export header: %w", err)
	}

	widths := make([]int, len(Header))
	for i, name := range Header {
		widths[i] = len(name)
	}

	for i, tx := range txs {
		row := encodeRow(tx)
		amount, _ := tx.Amount.Decimal().Round(2).Float64()
		cells := []interface{}{row[0], row[1], row[2], row[3], amount, row[5], row[6]}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheetName, cell, &cells); err != nil {
			return fmt.Errorf("cannot write export row %d: %w", i+2, err)
		}
		for j, field := range row {
			if len(field) > widths[j] {
				widths[j] = len(field)
			}
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("cannot size export column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(exportSheetName, col, col, float64(width+2)); err != nil {
			return fmt.Errorf("cannot size export column %s: %w", col, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save export file %q: %w", path, err)
	}
	return nil
}
