package stripe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/pkg/patch"
	"gin-storefront/internal/usecase/commands"

	"github.com/shopspring/decimal"
	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const shippingLineName = "Shipping"

var hundred = decimal.NewFromInt(100)

// CheckoutBackend creates Stripe-hosted payment sessions for local catalog carts.
type CheckoutBackend struct {
	api      *client.API
	baseURL  string
	currency string
}

type Option func(*options)

type options struct {
	backends *stripego.Backends
}

// WithBackends points the client at alternative API hosts.
func WithBackends(b *stripego.Backends) Option {
	return func(o *options) { o.backends = b }
}

func NewCheckoutBackend(cfg config.StripeConfig, app config.AppConfig, opts ...Option) *CheckoutBackend {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, o.backends)

	currency := patch.FirstNonEmpty(strings.ToLower(strings.TrimSpace(app.Currency)), string(stripego.CurrencyGBP))

	return &CheckoutBackend{
		api:      api,
		baseURL:  strings.TrimRight(app.BaseURL, "/"),
		currency: currency,
	}
}

func (b *CheckoutBackend) Method() order.PaymentMethod {
	return order.PaymentMethodStripe
}

// minorUnits converts a major-unit amount to pence, rounding half away from zero.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

func (b *CheckoutBackend) CreateSession(ctx context.Context, req commands.CheckoutSessionRequest) (*commands.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		SuccessURL:         stripego.String(fmt.Sprintf("%s/orders/%s?success=true", b.baseURL, req.OrderID)),
		CancelURL:          stripego.String(b.baseURL + "/checkout?canceled=true"),
	}
	params.Context = ctx
	params.AddMetadata("orderId", req.OrderID.String())
	params.AddMetadata("orderNumber", req.OrderNumber)
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripego.String(req.CustomerEmail)
	}

	for _, l := range req.Lines {
		product := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripego.String(l.Name()),
		}
		if img := l.Image(); strings.HasPrefix(img, "https://") || strings.HasPrefix(img, "http://") {
			product.Images = stripego.StringSlice([]string{img})
		}
		params.LineItems = append(params.LineItems, b.lineItem(product, l.UnitPrice(), int64(l.Quantity())))
	}

	if req.Breakdown.Shipping.IsPositive() {
		params.LineItems = append(params.LineItems, b.lineItem(
			&stripego.CheckoutSessionLineItemPriceDataProductDataParams{Name: stripego.String(shippingLineName)},
			req.Breakdown.Shipping, 1,
		))
	}

	if req.Breakdown.Discount.IsPositive() {
		couponID, err := b.createCoupon(ctx, req)
		if err != nil {
			return nil, err
		}
		params.Discounts = []*stripego.CheckoutSessionDiscountParams{{Coupon: stripego.String(couponID)}}
	}

	session, err := b.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "create stripe checkout session")
	}

	slog.InfoContext(ctx, "stripe checkout session created",
		"order_number", req.OrderNumber,
		"session_id", session.ID,
	)

	return &commands.CheckoutSession{
		URL:       session.URL,
		Reference: session.ID,
	}, nil
}

func (b *CheckoutBackend) lineItem(product *stripego.CheckoutSessionLineItemPriceDataProductDataParams, unit decimal.Decimal, qty int64) *stripego.CheckoutSessionLineItemParams {
	return &stripego.CheckoutSessionLineItemParams{
		PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
			Currency:    stripego.String(b.currency),
			ProductData: product,
			UnitAmount:  stripego.Int64(minorUnits(unit)),
		},
		Quantity: stripego.Int64(qty),
	}
}

// createCoupon issues a single-use amount-off coupon so the charged amount matches the stored total.
func (b *CheckoutBackend) createCoupon(ctx context.Context, req commands.CheckoutSessionRequest) (string, error) {
	name := patch.FirstNonEmpty(req.DiscountCode, "Discount")
	params := &stripego.CouponParams{
		AmountOff:      stripego.Int64(minorUnits(req.Breakdown.Discount)),
		Currency:       stripego.String(b.currency),
		Duration:       stripego.String(string(stripego.CouponDurationOnce)),
		MaxRedemptions: stripego.Int64(1),
		Name:           stripego.String(name),
	}
	params.Context = ctx
	params.AddMetadata("orderId", req.OrderID.String())

	coupon, err := b.api.Coupons.New(params)
	if err != nil {
		return "", errs.Wrap(err, "create stripe coupon")
	}
	return coupon.ID, nil
}
