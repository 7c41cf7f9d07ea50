package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingProductID   = errors.New("cart line requires a product id")
	ErrInvalidQuantity    = errors.New("cart line quantity must be positive")
	ErrNegativeUnitPrice  = errors.New("cart line unit price cannot be negative")
	ErrSubPennyUnitPrice  = errors.New("cart line unit price cannot have more than 2 decimal places")
	ErrMissingProductName = errors.New("cart line requires a product name")
)

// Line is one product+quantity entry of a client-held cart.
type Line struct {
	productID string
	variantID string
	name      string
	unitPrice decimal.Decimal
	quantity  int
	image     string
}

func NewLine(productID, variantID, name string, unitPrice decimal.Decimal, quantity int, image string) (Line, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Line{}, ErrMissingProductID
	}
	if strings.TrimSpace(name) == "" {
		return Line{}, ErrMissingProductName
	}
	if quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return Line{}, ErrNegativeUnitPrice
	}
	// totals, order_items.price and provider charges all work in whole pence
	if !unitPrice.Equal(unitPrice.Round(2)) {
		return Line{}, ErrSubPennyUnitPrice
	}

	return Line{
		productID: productID,
		variantID: strings.TrimSpace(variantID),
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		image:     image,
	}, nil
}

func (l Line) ProductID() string          { return l.productID }
func (l Line) VariantID() string          { return l.variantID }
func (l Line) Name() string               { return l.name }
func (l Line) UnitPrice() decimal.Decimal { return l.unitPrice }
func (l Line) Quantity() int              { return l.quantity }
func (l Line) Image() string              { return l.image }

func (l Line) HasVariant() bool {
	return l.variantID != ""
}

// Total is unitPrice × quantity without rounding.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// WithVariants keeps only the lines that reference an external variant.
func WithVariants(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.HasVariant() {
			out = append(out, l)
		}
	}
	return out
}
