package pricing

import (
	"gin-storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

var (
	DefaultFreeShippingThreshold = decimal.NewFromInt(50)
	DefaultFlatShippingFee       = decimal.RequireFromString("4.99")
)

// Breakdown is the priced summary of a cart. All amounts are rounded to cents.
type Breakdown struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

type Calculator interface {
	// Calculate applies the discount as given; the total may go negative.
	Calculate(lines []cart.Line, discount decimal.Decimal) Breakdown
	// CalculateForCheckout caps the discount at subtotal+shipping so the total is never negative.
	CalculateForCheckout(lines []cart.Line, discount decimal.Decimal) Breakdown
}

type DefaultCalculator struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		FlatShippingFee:       DefaultFlatShippingFee,
	}
}

func (c *DefaultCalculator) Calculate(lines []cart.Line, discount decimal.Decimal) Breakdown {
	subtotal := Subtotal(lines)
	shipping := c.Shipping(subtotal)
	discount = nonNegative(discount).Round(2)

	return Breakdown{
		Subtotal: subtotal.Round(2),
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(shipping).Sub(discount).Round(2),
	}
}

func (c *DefaultCalculator) CalculateForCheckout(lines []cart.Line, discount decimal.Decimal) Breakdown {
	subtotal := Subtotal(lines)
	shipping := c.Shipping(subtotal)
	gross := subtotal.Add(shipping)
	discount = decimal.Min(nonNegative(discount), gross).Round(2)

	return Breakdown{
		Subtotal: subtotal.Round(2),
		Shipping: shipping,
		Discount: discount,
		Total:    gross.Sub(discount).Round(2),
	}
}

// Shipping is free at or above the threshold.
func (c *DefaultCalculator) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(c.FreeShippingThreshold) {
		return decimal.Zero
	}
	return c.FlatShippingFee
}

func Subtotal(lines []cart.Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
