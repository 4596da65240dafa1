package model

import (
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/invoicing/internal/decimal"
)

// Category selects the tax treatment of a product
type Category string

const (
	CategoryTaxFree Category = "taxfree"
	CategoryDairy   Category = "dairy"
	CategoryOther   Category = "other"
)

// Fixed tax rates per category
var (
	RateTaxFree = money.Zero
	RateDairy   = money.Percent(8)
	RateOther   = money.Percent(23)
)

// Rate returns the tax rate applied to products of this category
func (c Category) Rate() decimal.Decimal {
	switch c {
	case CategoryDairy:
		return RateDairy
	case CategoryOther:
		return RateOther
	default:
		return RateTaxFree
	}
}

// Label is the variant label printed on invoices
func (c Category) Label() string {
	switch c {
	case CategoryTaxFree:
		return "TaxFreeProduct"
	case CategoryDairy:
		return "DairyProduct"
	case CategoryOther:
		return "OtherProduct"
	default:
		return "UnknownProduct"
	}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryTaxFree, CategoryDairy, CategoryOther:
		return true
	}
	return false
}

// ParseCategory accepts a category name or its variant label, case-insensitively
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, "product")
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)

	c := Category(key)
	if !c.Valid() {
		return "", NewValidationError("category", s, "oneof", "must be one of taxfree, dairy, other")
	}
	return c, nil
}

// Product is an immutable purchasable item
type Product struct {
	name     string
	price    decimal.Decimal
	category Category
}

// NewProduct creates a product of the given category. The net price is not validated.
func NewProduct(category Category, name string, price decimal.Decimal) *Product {
	return &Product{
		name:     name,
		price:    price,
		category: category,
	}
}

// NewTaxFreeProduct creates a product without tax
func NewTaxFreeProduct(name string, price decimal.Decimal) *Product {
	return NewProduct(CategoryTaxFree, name, price)
}

// NewDairyProduct creates a product taxed at the reduced dairy rate
func NewDairyProduct(name string, price decimal.Decimal) *Product {
	return NewProduct(CategoryDairy, name, price)
}

// NewOtherProduct creates a product taxed at the standard rate
func NewOtherProduct(name string, price decimal.Decimal) *Product {
	return NewProduct(CategoryOther, name, price)
}

func (p *Product) Name() string {
	return p.name
}

// Price returns the net unit price
func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) Category() Category {
	return p.category
}

func (p *Product) TaxRate() decimal.Decimal {
	return p.category.Rate()
}

// PriceWithTax returns the gross unit price: net * (1 + rate)
func (p *Product) PriceWithTax() decimal.Decimal {
	return money.Gross(p.price, p.TaxRate())
}

func (p *Product) Label() string {
	return p.category.Label()
}
