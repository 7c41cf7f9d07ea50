package request

import (
	"strings"

	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CheckoutItemRequest struct {
	ProductID string          `json:"productId"`
	VariantID string          `json:"shopifyVariantId,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

type CreateCheckoutRequest struct {
	Items           []CheckoutItemRequest `json:"items"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	DiscountCode    string                `json:"discountCode,omitempty"`
	// Discount is accepted for compatibility and ignored; the server recomputes it.
	Discount *decimal.Decimal `json:"discount,omitempty"`
}

func (r *CreateCheckoutRequest) ToCommand() commands.CreateCheckoutRequest {
	items := make([]commands.CheckoutItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.CheckoutItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return commands.CreateCheckoutRequest{
		Items:           items,
		ShippingAddress: r.ShippingAddress,
		DiscountCode:    strings.TrimSpace(r.DiscountCode),
	}
}
