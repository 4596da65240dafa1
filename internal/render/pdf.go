package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rezonia/invoicing/internal/model"
)

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Name", 60, "L"},
	{"Type", 40, "L"},
	{"Unit net", 25, "R"},
	{"Qty", 20, "R"},
	{"Gross", 35, "R"},
}

// pdfFont is an embedded UTF-8 TrueType font, so non-ASCII names render
const pdfFont = "Go"

// PDF writes inv as a one-page A4 document
func PDF(w io.Writer, inv *model.Invoice) error {
	s := Summarize(inv)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFont, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(pdfFont, "B", gobold.TTF)
	pdf.SetTitle(fmt.Sprintf("Invoice %d", s.Number), true)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Invoice No. %d", s.Number), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(pdfFont, "B", 10)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 7, c.title, "B", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(pdfFont, "", 10)
	for _, l := range s.Lines {
		cells := []string{l.Name, l.Label, l.UnitNet, strconv.Itoa(l.Quantity), l.Gross}
		for i, c := range pdfColumns {
			pdf.CellFormat(c.width, 6, cells[i], "", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	for _, t := range [][2]string{{"Net", s.TotalNet}, {"Tax", s.Tax}, {"Gross", s.TotalGross}} {
		pdf.CellFormat(145, 6, t[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, t[1], "", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return pdf.Output(w)
}
