package render

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/rezonia/invoicing/internal/model"
)

const sheetName = "Invoice"

var xlsxHeader = []interface{}{"Name", "Type", "Unit net", "Unit gross", "Quantity", "Net", "Gross"}

// XLSX writes inv as a single-sheet workbook: a title row, a header row,
// one row per line item and a totals block. Amounts are numeric cells.
func XLSX(w io.Writer, inv *model.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1", fmt.Sprintf("Invoice No. %d", inv.Number())); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A2", &xlsxHeader); err != nil {
		return err
	}

	row := 3
	for _, item := range inv.Items() {
		p := item.Product
		cells := []interface{}{p.Name(), p.Label(), p.Price(), p.PriceWithTax(), item.Quantity, item.Net(), item.Gross()}
		for i, v := range cells {
			if err := setCell(f, i+1, row, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
		row++
	}

	totals := []struct {
		title  string
		amount decimal.Decimal
	}{
		{"Net", inv.TotalNet()},
		{"Tax", inv.Tax()},
		{"Gross", inv.TotalGross()},
	}
	for _, t := range totals {
		row++
		if err := setCell(f, 6, row, t.title); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
		if err := setCell(f, 7, row, t.amount); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
	}

	return f.Write(w)
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	d, ok := value.(decimal.Decimal)
	if !ok {
		return f.SetCellValue(sheetName, cell, value)
	}

	v, _ := d.Float64()
	return f.SetCellFloat(sheetName, cell, v, amountPrecision(d), 64)
}

// amountPrecision keeps cents, plus any further significant digits
func amountPrecision(d decimal.Decimal) int {
	if d.Equal(d.Round(2)) {
		return 2
	}
	return int(-d.Exponent())
}
