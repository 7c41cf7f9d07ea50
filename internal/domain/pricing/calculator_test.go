//go:build unit

package pricing_test

import (
	"testing"

	"gin-storefront/internal/domain/cart"
	"gin-storefront/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(t *testing.T, id, price string, qty int) cart.Line {
	t.Helper()
	l, err := cart.NewLine(id, "", "item "+id, d(price), qty, "")
	require.NoError(t, err)
	return l
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got.StringFixed(2))
}

func TestSubtotal_IsOrderIndependent(t *testing.T) {
	lines := []cart.Line{
		line(t, "a", "19.99", 3),
		line(t, "b", "0.01", 7),
		line(t, "c", "5.50", 1),
	}
	reversed := []cart.Line{lines[2], lines[1], lines[0]}
	rotated := []cart.Line{lines[1], lines[2], lines[0]}

	want := d("65.54")
	assert.True(t, want.Equal(pricing.Subtotal(lines)))
	assert.True(t, want.Equal(pricing.Subtotal(reversed)))
	assert.True(t, want.Equal(pricing.Subtotal(rotated)))
}

func TestSubtotal_Empty(t *testing.T) {
	assert.True(t, pricing.Subtotal(nil).IsZero())
}

func TestShipping(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	tests := []struct {
		subtotal string
		want     string
	}{
		{subtotal: "0", want: "4.99"},
		{subtotal: "49.99", want: "4.99"},
		{subtotal: "50.00", want: "0"},
		{subtotal: "50.01", want: "0"},
		{subtotal: "250", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			assertDecimal(t, tt.want, calc.Shipping(d(tt.subtotal)))
		})
	}
}

func TestCalculate(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	t.Run("free shipping at threshold, no discount", func(t *testing.T) {
		b := calc.Calculate([]cart.Line{line(t, "a", "30.00", 2)}, decimal.Zero)

		assertDecimal(t, "60.00", b.Subtotal)
		assertDecimal(t, "0.00", b.Shipping)
		assertDecimal(t, "0.00", b.Discount)
		assertDecimal(t, "60.00", b.Total)
	})

	t.Run("flat fee below threshold with percentage discount", func(t *testing.T) {
		b := calc.Calculate([]cart.Line{line(t, "a", "10.00", 1)}, d("1.00"))

		assertDecimal(t, "10.00", b.Subtotal)
		assertDecimal(t, "4.99", b.Shipping)
		assertDecimal(t, "1.00", b.Discount)
		assertDecimal(t, "13.99", b.Total)
	})

	t.Run("oversized fixed discount may go negative", func(t *testing.T) {
		b := calc.Calculate([]cart.Line{line(t, "a", "10.00", 1)}, d("15"))

		assertDecimal(t, "15.00", b.Discount)
		assertDecimal(t, "-0.01", b.Total)
	})

	t.Run("negative discount is ignored", func(t *testing.T) {
		b := calc.Calculate([]cart.Line{line(t, "a", "10.00", 1)}, d("-5"))

		assertDecimal(t, "0", b.Discount)
		assertDecimal(t, "14.99", b.Total)
	})
}

func TestCalculateForCheckout_ClampsDiscount(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	b := calc.CalculateForCheckout([]cart.Line{line(t, "a", "10.00", 1)}, d("15"))

	assertDecimal(t, "10.00", b.Subtotal)
	assertDecimal(t, "4.99", b.Shipping)
	assertDecimal(t, "14.99", b.Discount)
	assertDecimal(t, "0.00", b.Total)

	within := calc.CalculateForCheckout([]cart.Line{line(t, "a", "10.00", 1)}, d("1.00"))
	assertDecimal(t, "1.00", within.Discount)
	assertDecimal(t, "13.99", within.Total)
}
