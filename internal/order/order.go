// Package order reads invoice orders from YAML or JSON documents.
//
// An order lists line items:
//
//	items:
//	  - name: Mleko
//	    category: dairy
//	    price: 10.0
//	    quantity: 2
//
// Prices are kept as their literal text and parsed as exact decimals.
package order

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rezonia/invoicing/internal/decimal"
	"github.com/rezonia/invoicing/internal/model"
)

// Amount is a price literal, accepted both quoted and unquoted
type Amount string

func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a scalar", value.Line)
	}
	*a = Amount(value.Value)
	return nil
}

// Item is one requested line item
type Item struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    Amount `yaml:"price"`
	Quantity *int   `yaml:"quantity,omitempty"`
}

// Order is a list of line items to put on one invoice
type Order struct {
	Items []Item `yaml:"items"`
}

// Product validates the item and builds its product
func (it Item) Product() (*model.Product, error) {
	name := strings.TrimSpace(it.Name)
	if name == "" {
		return nil, model.NewValidationError("name", nil, "required", "product name is required")
	}

	category, err := model.ParseCategory(it.Category)
	if err != nil {
		return nil, err
	}

	price, err := decimal.FromString(strings.TrimSpace(string(it.Price)))
	if err != nil {
		return nil, model.NewValidationError("price", string(it.Price), "decimal", "must be a decimal number")
	}
	if !decimal.IsNonNegative(price) {
		return nil, model.NewValidationError("price", string(it.Price), "gte=0", "must not be negative")
	}

	return model.NewProduct(category, name, price), nil
}

// Qty returns the requested quantity, 1 when omitted
func (it Item) Qty() int {
	if it.Quantity == nil {
		return 1
	}
	return *it.Quantity
}

// Build creates an invoice numbered from seq holding every item of the order.
// No number is consumed when an item is invalid.
func (o *Order) Build(seq *model.Sequence) (*model.Invoice, error) {
	products := make([]*model.Product, len(o.Items))
	for i, it := range o.Items {
		p, err := it.Product()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		if it.Qty() <= 0 {
			return nil, fmt.Errorf("item %d: %w", i+1, model.NewInvalidQuantityError(p.Name(), it.Qty()))
		}
		products[i] = p
	}

	inv := model.NewInvoiceFrom(seq)
	for i, p := range products {
		if err := inv.AddProducts(p, o.Items[i].Qty()); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return inv, nil
}

// Parse decodes an order document. JSON is accepted as a subset of YAML.
func Parse(r io.Reader) (*Order, error) {
	var o Order
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return &o, nil
		}
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}
	return &o, nil
}

// ParseItem decodes a single line item document
func ParseItem(r io.Reader) (*Item, error) {
	var it Item
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&it); err != nil {
		return nil, fmt.Errorf("failed to parse item: %w", err)
	}
	return &it, nil
}

// LoadFile parses the order stored at path
func LoadFile(path string) (*Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open order: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
