// Package render turns invoices into printable and exportable documents.
package render

import (
	"encoding/json"
	"io"

	"github.com/rezonia/invoicing/internal/decimal"
	"github.com/rezonia/invoicing/internal/model"
)

// Line is one line item of a Summary
type Line struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	UnitNet   string `json:"unit_net"`
	UnitGross string `json:"unit_gross"`
	Quantity  int    `json:"quantity"`
	Net       string `json:"net"`
	Gross     string `json:"gross"`
}

// Summary is the structured form of an invoice. Amounts are decimal strings.
type Summary struct {
	Number     int    `json:"number"`
	Lines      []Line `json:"lines"`
	TotalNet   string `json:"total_net"`
	Tax        string `json:"tax"`
	TotalGross string `json:"total_gross"`
}

// Summarize builds the structured form of inv
func Summarize(inv *model.Invoice) Summary {
	items := inv.Items()
	s := Summary{
		Number:     inv.Number(),
		Lines:      make([]Line, 0, len(items)),
		TotalNet:   decimal.Display(inv.TotalNet()),
		Tax:        decimal.Display(inv.Tax()),
		TotalGross: decimal.Display(inv.TotalGross()),
	}
	for _, item := range items {
		s.Lines = append(s.Lines, Line{
			Name:      item.Product.Name(),
			Label:     item.Product.Label(),
			UnitNet:   decimal.Display(item.Product.Price()),
			UnitGross: decimal.Display(item.Product.PriceWithTax()),
			Quantity:  item.Quantity,
			Net:       decimal.Display(item.Net()),
			Gross:     decimal.Display(item.Gross()),
		})
	}
	return s
}

// Text writes the printed version of inv
func Text(w io.Writer, inv *model.Invoice) error {
	_, err := io.WriteString(w, inv.PrintedVersion())
	return err
}

// JSON writes the indented summary of inv
func JSON(w io.Writer, inv *model.Invoice) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Summarize(inv))
}
