//go:build unit || e2e

package builder

import (
	"gin-storefront/internal/domain/order"
	reqdto "gin-storefront/internal/handler/dto/request"
	"gin-storefront/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CheckoutBuilder struct {
	Items        []reqdto.CheckoutItemRequest
	Address      order.ShippingAddress
	DiscountCode string
}

// NewCheckoutBuilder starts from a cart of 2 x 30.00 with a complete UK address.
func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Items: []reqdto.CheckoutItemRequest{{
			ProductID: "11111111-1111-1111-1111-111111111111",
			Name:      "Canvas Tote",
			Price:     decimal.RequireFromString("30.00"),
			Quantity:  2,
			Image:     "https://cdn.example.com/tote.jpg",
		}},
		Address: order.ShippingAddress{
			FullName:     "Jane Shopper",
			Phone:        "07700900000",
			AddressLine1: "1 High Street",
			City:         "London",
			ZipCode:      "N1 1AA",
			Country:      "UK",
		},
	}
}

func (c *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(c)
	return c
}

func (c *CheckoutBuilder) WithItem(productID, variantID, name, price string, quantity int) *CheckoutBuilder {
	c.Items = append(c.Items, reqdto.CheckoutItemRequest{
		ProductID: productID,
		VariantID: variantID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Quantity:  quantity,
	})
	return c
}

func (c *CheckoutBuilder) WithOnlyItem(productID, variantID, name, price string, quantity int) *CheckoutBuilder {
	c.Items = nil
	return c.WithItem(productID, variantID, name, price, quantity)
}

func (c *CheckoutBuilder) WithDiscountCode(code string) *CheckoutBuilder {
	c.DiscountCode = code
	return c
}

func (c *CheckoutBuilder) BuildDTO() reqdto.CreateCheckoutRequest {
	return reqdto.CreateCheckoutRequest{
		Items:           c.Items,
		ShippingAddress: c.Address,
		DiscountCode:    c.DiscountCode,
	}
}

func (c *CheckoutBuilder) BuildCommand() commands.CreateCheckoutRequest {
	dto := c.BuildDTO()
	return dto.ToCommand()
}
