package model_test

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoicing/internal/model"
)

const (
	product1 = "Product 1"
	product2 = "Product 2"
	product3 = "Product 3"
)

func newInvoice(t *testing.T) *model.Invoice {
	t.Helper()
	model.ResetInvoiceNumber()
	return model.NewInvoice()
}

func taxFreeProduct() *model.Product {
	return model.NewTaxFreeProduct(product1, decimal.RequireFromString("199.99"))
}

func otherProduct() *model.Product {
	return model.NewOtherProduct(product2, decimal.RequireFromString("50.0"))
}

func dairyProduct() *model.Product {
	return model.NewDairyProduct(product3, decimal.RequireFromString("10.0"))
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		"expected %s, got %s", expected, actual.String())
}

func TestInvoice_EmptyTotalsAreZero(t *testing.T) {
	inv := newInvoice(t)

	assertDecimal(t, "0", inv.TotalNet())
	assertDecimal(t, "0", inv.Tax())
	assertDecimal(t, "0", inv.TotalGross())
	assert.Equal(t, 0, inv.Len())
}

func TestInvoice_TaxFreeNetEqualsGross(t *testing.T) {
	for _, qty := range []int{1, 2, 17} {
		inv := newInvoice(t)
		require.NoError(t, inv.AddProducts(taxFreeProduct(), qty))

		assert.True(t, inv.TotalNet().Equal(inv.TotalGross()))
		assert.True(t, inv.Tax().IsZero())
	}
}

func TestInvoice_TotalsForManyProducts(t *testing.T) {
	inv := newInvoice(t)
	require.NoError(t, inv.AddProducts(taxFreeProduct(), 1))
	require.NoError(t, inv.AddProducts(otherProduct(), 1))
	require.NoError(t, inv.AddProducts(dairyProduct(), 1))

	assertDecimal(t, "259.99", inv.TotalNet())
	assertDecimal(t, "12.3", inv.Tax())
	assertDecimal(t, "272.29", inv.TotalGross())
}

func TestInvoice_AddProductDefaultsToOne(t *testing.T) {
	inv := newInvoice(t)
	inv.AddProduct(taxFreeProduct())
	inv.AddProduct(otherProduct())
	inv.AddProduct(dairyProduct())

	assertDecimal(t, "272.29", inv.TotalGross())
	for _, item := range inv.Items() {
		assert.Equal(t, 1, item.Quantity)
	}
}

func TestInvoice_TotalsWithQuantityMoreThanOne(t *testing.T) {
	inv := newInvoice(t)
	require.NoError(t, inv.AddProducts(taxFreeProduct(), 3)) // 599.97
	require.NoError(t, inv.AddProducts(otherProduct(), 2))   // 100.00 net, 123.00 gross
	require.NoError(t, inv.AddProducts(dairyProduct(), 4))   // 40.00 net, 43.20 gross

	assertDecimal(t, "739.97", inv.TotalNet())
	assertDecimal(t, "26.2", inv.Tax())
	assertDecimal(t, "766.17", inv.TotalGross())
}

func TestInvoice_GrossIsNetPlusTax(t *testing.T) {
	inv := newInvoice(t)
	require.NoError(t, inv.AddProducts(otherProduct(), 7))
	require.NoError(t, inv.AddProducts(dairyProduct(), 3))
	require.NoError(t, inv.AddProducts(model.NewOtherProduct("Cent", decimal.RequireFromString("0.01")), 3))

	assert.True(t, inv.TotalNet().Add(inv.Tax()).Equal(inv.TotalGross()))
	assert.True(t, inv.TotalGross().GreaterThanOrEqual(inv.TotalNet()))
}

func TestInvoice_InvalidQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{"zero", 0},
		{"negative", -1},
		{"very negative", -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newInvoice(t)
			inv.AddProduct(dairyProduct())

			err := inv.AddProducts(taxFreeProduct(), tt.quantity)
			require.Error(t, err)
			require.ErrorIs(t, err, model.ErrInvalidQuantity)

			var qerr *model.InvalidQuantityError
			require.ErrorAs(t, err, &qerr)
			assert.Equal(t, tt.quantity, qerr.Quantity)
			assert.Equal(t, product1, qerr.Product)

			// invoice unchanged
			assert.Equal(t, 1, inv.Len())
			assertDecimal(t, "10.0", inv.TotalNet())
		})
	}
}

func TestInvoice_TotalsAreIdempotent(t *testing.T) {
	inv := newInvoice(t)
	require.NoError(t, inv.AddProducts(otherProduct(), 2))
	require.NoError(t, inv.AddProducts(dairyProduct(), 5))

	net, tax, gross := inv.TotalNet(), inv.Tax(), inv.TotalGross()
	for i := 0; i < 3; i++ {
		assert.True(t, net.Equal(inv.TotalNet()))
		assert.True(t, tax.Equal(inv.Tax()))
		assert.True(t, gross.Equal(inv.TotalGross()))
	}
}

func TestInvoice_ItemsKeepInsertionOrder(t *testing.T) {
	inv := newInvoice(t)
	inv.AddProduct(dairyProduct())
	require.NoError(t, inv.AddProducts(taxFreeProduct(), 2))
	inv.AddProduct(otherProduct())

	items := inv.Items()
	require.Len(t, items, 3)
	assert.Equal(t, product3, items[0].Product.Name())
	assert.Equal(t, product1, items[1].Product.Name())
	assert.Equal(t, product2, items[2].Product.Name())

	// returned slice is a copy
	items[0].Quantity = 99
	assert.Equal(t, 1, inv.Items()[0].Quantity)
}

func TestInvoice_SameProductOnTwoInvoices(t *testing.T) {
	p := otherProduct()
	first := newInvoice(t)
	second := model.NewInvoice()

	first.AddProduct(p)
	require.NoError(t, second.AddProducts(p, 2))

	assertDecimal(t, "61.5", first.TotalGross())
	assertDecimal(t, "123", second.TotalGross())
}

func TestInvoice_HasNumber(t *testing.T) {
	inv := newInvoice(t)
	assert.Greater(t, inv.Number(), 0)
}

func TestInvoice_NumbersAreSubsequent(t *testing.T) {
	inv1 := newInvoice(t)
	inv2 := model.NewInvoice()

	assert.NotEqual(t, inv1.Number(), inv2.Number())
	assert.Equal(t, 1, inv2.Number()-inv1.Number())
}

func TestInvoice_NumberRestartsAfterReset(t *testing.T) {
	model.ResetInvoiceNumber()
	first := model.NewInvoice()
	model.NewInvoice()
	model.NewInvoice()

	model.ResetInvoiceNumber()
	again := model.NewInvoice()

	assert.Equal(t, model.FirstInvoiceNumber, first.Number())
	assert.Equal(t, first.Number(), again.Number())
}

func TestInvoice_PrintedVersion(t *testing.T) {
	t.Run("has number", func(t *testing.T) {
		model.ResetInvoiceNumber()
		for i := 0; i < 41; i++ {
			model.NewInvoice()
		}
		inv := model.NewInvoice()

		printed := inv.PrintedVersion()
		assert.Contains(t, printed, strconv.Itoa(inv.Number()))
		assert.Contains(t, printed, "42")
	})

	t.Run("has product name", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.AddProducts(model.NewDairyProduct("Mleko", decimal.NewFromInt(50)), 2))

		assert.Contains(t, inv.PrintedVersion(), "Mleko")
	})

	t.Run("has product type", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.AddProducts(model.NewDairyProduct("Mleko", decimal.NewFromInt(50)), 2))

		assert.Contains(t, inv.PrintedVersion(), "DairyProduct")
	})

	t.Run("has product price", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.AddProducts(model.NewDairyProduct("Mleko", decimal.NewFromInt(30)), 2))

		assert.Contains(t, inv.PrintedVersion(), "30")
	})

	t.Run("has product amount", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.AddProducts(model.NewDairyProduct("Mleko", decimal.NewFromInt(30)), 11115))

		assert.Contains(t, inv.PrintedVersion(), "11115")
	})

	t.Run("every line item", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.AddProducts(taxFreeProduct(), 3))
		require.NoError(t, inv.AddProducts(otherProduct(), 2))

		printed := inv.PrintedVersion()
		assert.Contains(t, printed, "Product 1\tTaxFreeProduct\t199.99\tx 3")
		assert.Contains(t, printed, "Product 2\tOtherProduct\t50.00\tx 2")
		assert.Contains(t, printed, "Items: 2")
	})
}

func TestInvoice_NilProduct(t *testing.T) {
	inv := newInvoice(t)

	err := inv.AddProducts(nil, 0)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "product", verr.Field)

	require.Error(t, inv.AddProducts(nil, 2))
	inv.AddProduct(nil)
	assert.Equal(t, 0, inv.Len())
}
