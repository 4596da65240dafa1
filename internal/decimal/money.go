package decimal

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// One is decimal one
var One = decimal.NewFromInt(1)

// FromInt creates decimal from int
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Percent returns p/100 exactly, e.g. Percent(23) == 0.23
func Percent(p int64) decimal.Decimal {
	return decimal.New(p, -2)
}

// Gross computes: net * (1 + rate). No rounding is applied.
func Gross(net, rate decimal.Decimal) decimal.Decimal {
	return net.Mul(One.Add(rate))
}

// Times multiplies an amount by an integer quantity
func Times(amount decimal.Decimal, quantity int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(quantity)))
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}

// Display formats an amount for printing, keeping at least two decimal places
// and never dropping significant digits.
func Display(d decimal.Decimal) string {
	if d.Equal(d.Round(2)) {
		return d.StringFixed(2)
	}
	return d.String()
}
