package shopify

import (
	"context"
	"log/slog"

	"gin-storefront/internal/domain/cart"
	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/commands"
)

type cartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

type cartInput struct {
	Lines         []cartLineInput `json:"lines"`
	DiscountCodes []string        `json:"discountCodes,omitempty"`
}

// CheckoutBackend hands the cart to Shopify's hosted checkout via cartCreate.
type CheckoutBackend struct {
	client *Client
}

func NewCheckoutBackend(client *Client) *CheckoutBackend {
	return &CheckoutBackend{client: client}
}

func (b *CheckoutBackend) Method() order.PaymentMethod {
	return order.PaymentMethodShopify
}

func (b *CheckoutBackend) CreateSession(ctx context.Context, req commands.CheckoutSessionRequest) (*commands.CheckoutSession, error) {
	input := cartInput{}
	for _, l := range cart.WithVariants(req.Lines) {
		input.Lines = append(input.Lines, cartLineInput{
			MerchandiseID: VariantGID(l.VariantID()),
			Quantity:      l.Quantity(),
		})
	}
	switch {
	case len(input.Lines) == 0:
		return nil, commands.NewNoEligibleLinesRejection()
	case len(input.Lines) < len(req.Lines):
		return nil, commands.NewMixedCartRejection()
	}
	if req.DiscountCode != "" {
		input.DiscountCodes = []string{req.DiscountCode}
	}

	var resp cartCreateResponse
	if err := b.client.Run(ctx, cartCreateMutation, map[string]any{"input": input}, &resp); err != nil {
		return nil, errs.Wrap(err, "shopify cartCreate")
	}

	if ue := resp.CartCreate.UserErrors; len(ue) > 0 {
		slog.WarnContext(ctx, "shopify rejected cart",
			"order_number", req.OrderNumber,
			"user_errors", len(ue),
			"message", ue[0].Message,
		)
		return nil, commands.NewCheckoutRejection(ue[0].Message)
	}

	created := resp.CartCreate.Cart
	if created == nil || created.CheckoutURL == "" {
		return nil, errs.New("shopify cartCreate returned no checkout url")
	}

	return &commands.CheckoutSession{
		URL:       created.CheckoutURL,
		Reference: created.ID,
	}, nil
}
