// Package invoicelib provides a public API for building invoices.
//
// It exposes products in three tax categories, invoices with exact decimal
// totals and the sequence that numbers them.
//
// Example usage:
//
//	inv := invoicelib.NewInvoice()
//	milk := invoicelib.NewDairyProduct("Mleko", decimal.RequireFromString("2.50"))
//	if err := inv.AddProducts(milk, 4); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(inv.TotalGross())
//	fmt.Print(inv.PrintedVersion())
package invoicelib

import (
	"io"

	"github.com/rezonia/invoicing/internal/model"
	"github.com/rezonia/invoicing/internal/order"
	"github.com/rezonia/invoicing/internal/render"
)

// Re-export core types for public API
type (
	Invoice  = model.Invoice
	LineItem = model.LineItem
	Product  = model.Product
	Category = model.Category
	Sequence = model.Sequence
	Order    = order.Order
	Summary  = render.Summary
)

// Re-export categories
const (
	CategoryTaxFree = model.CategoryTaxFree
	CategoryDairy   = model.CategoryDairy
	CategoryOther   = model.CategoryOther
)

// Re-export error types
type (
	InvalidQuantityError = model.InvalidQuantityError
	ValidationError      = model.ValidationError
)

// ErrInvalidQuantity matches every InvalidQuantityError
var ErrInvalidQuantity = model.ErrInvalidQuantity

// Constructors
var (
	NewProduct         = model.NewProduct
	NewTaxFreeProduct  = model.NewTaxFreeProduct
	NewDairyProduct    = model.NewDairyProduct
	NewOtherProduct    = model.NewOtherProduct
	NewInvoice         = model.NewInvoice
	NewInvoiceFrom     = model.NewInvoiceFrom
	NewSequence        = model.NewSequence
	ResetInvoiceNumber = model.ResetInvoiceNumber
)

// ParseOrder decodes a YAML or JSON order document
func ParseOrder(r io.Reader) (*Order, error) {
	return order.Parse(r)
}

// Summarize returns the structured form of an invoice
func Summarize(inv *Invoice) Summary {
	return render.Summarize(inv)
}
