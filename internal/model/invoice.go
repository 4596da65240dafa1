package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/invoicing/internal/decimal"
)

// LineItem is a product with the quantity it was added with
type LineItem struct {
	Product  *Product
	Quantity int
}

// Net returns price * quantity
func (l LineItem) Net() decimal.Decimal {
	return money.Times(l.Product.Price(), l.Quantity)
}

// Gross returns price with tax * quantity
func (l LineItem) Gross() decimal.Decimal {
	return money.Times(l.Product.PriceWithTax(), l.Quantity)
}

// Tax returns (gross - net) * quantity
func (l LineItem) Tax() decimal.Decimal {
	return money.Times(l.Product.PriceWithTax().Sub(l.Product.Price()), l.Quantity)
}

// Invoice collects line items under a unique number.
// Totals are recomputed from the line items on every call.
type Invoice struct {
	number int
	items  []LineItem
}

// NewInvoice creates an empty invoice numbered from the process-wide sequence
func NewInvoice() *Invoice {
	return NewInvoiceFrom(defaultSequence)
}

// NewInvoiceFrom creates an empty invoice numbered from seq
func NewInvoiceFrom(seq *Sequence) *Invoice {
	return &Invoice{
		number: seq.Next(),
	}
}

// Number returns the invoice number assigned at construction
func (inv *Invoice) Number() int {
	return inv.number
}

// AddProduct adds a single unit of p. A nil product is ignored.
func (inv *Invoice) AddProduct(p *Product) {
	_ = inv.AddProducts(p, 1)
}

// AddProducts adds quantity units of p as one line item.
// The invoice is left unchanged when p is nil or quantity is not positive.
func (inv *Invoice) AddProducts(p *Product, quantity int) error {
	if p == nil {
		return NewValidationError("product", nil, "required", "product is required")
	}
	if quantity <= 0 {
		return NewInvalidQuantityError(p.Name(), quantity)
	}
	inv.items = append(inv.items, LineItem{Product: p, Quantity: quantity})
	return nil
}

// Items returns a copy of the line items in insertion order
func (inv *Invoice) Items() []LineItem {
	items := make([]LineItem, len(inv.items))
	copy(items, inv.items)
	return items
}

func (inv *Invoice) Len() int {
	return len(inv.items)
}

func (inv *Invoice) TotalNet() decimal.Decimal {
	total := money.Zero
	for _, item := range inv.items {
		total = total.Add(item.Net())
	}
	return total
}

func (inv *Invoice) Tax() decimal.Decimal {
	total := money.Zero
	for _, item := range inv.items {
		total = total.Add(item.Tax())
	}
	return total
}

func (inv *Invoice) TotalGross() decimal.Decimal {
	total := money.Zero
	for _, item := range inv.items {
		total = total.Add(item.Gross())
	}
	return total
}

// PrintedVersion renders the invoice as plain text, one line per item:
//
//	Invoice No. 7
//	Mleko	DairyProduct	30.00	x 2
//	Items: 1
func (inv *Invoice) PrintedVersion() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Invoice No. %d\n", inv.number)
	for _, item := range inv.items {
		fmt.Fprintf(&sb, "%s\t%s\t%s\tx %d\n",
			item.Product.Name(),
			item.Product.Label(),
			money.Display(item.Product.Price()),
			item.Quantity,
		)
	}
	fmt.Fprintf(&sb, "Items: %d\n", len(inv.items))
	fmt.Fprintf(&sb, "Net: %s\n", money.Display(inv.TotalNet()))
	fmt.Fprintf(&sb, "Tax: %s\n", money.Display(inv.Tax()))
	fmt.Fprintf(&sb, "Gross: %s\n", money.Display(inv.TotalGross()))

	return sb.String()
}
