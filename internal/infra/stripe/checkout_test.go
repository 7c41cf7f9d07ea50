//go:build unit

package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"gin-storefront/internal/domain/cart"
	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/domain/pricing"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripego "github.com/stripe/stripe-go/v81"
)

type recordedCall struct {
	path string
	form url.Values
}

type fakeStripe struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeStripe) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.path)
	}
	return out
}

func (f *fakeStripe) form(path string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.path == path {
			return c.form
		}
	}
	return nil
}

func newBackend(t *testing.T, status int) (*CheckoutBackend, *fakeStripe) {
	t.Helper()
	fake := &fakeStripe{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		fake.mu.Lock()
		fake.calls = append(fake.calls, recordedCall{path: r.URL.Path, form: r.PostForm})
		fake.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"boom"}}`))
			return
		}
		switch r.URL.Path {
		case "/v1/coupons":
			_, _ = w.Write([]byte(`{"id":"co_test_1","object":"coupon"}`))
		default:
			_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
		}
	}))
	t.Cleanup(server.Close)

	api := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
		URL:               stripego.String(server.URL),
		HTTPClient:        server.Client(),
		MaxNetworkRetries: stripego.Int64(0),
		LeveledLogger:     &stripego.LeveledLogger{Level: stripego.LevelNull},
	})
	backend := NewCheckoutBackend(
		config.StripeConfig{SecretKey: "sk_test_123"},
		config.AppConfig{BaseURL: "https://shop.example.com/", Currency: "GBP"},
		WithBackends(&stripego.Backends{API: api, Connect: api, Uploads: api}),
	)
	return backend, fake
}

func sessionRequest(t *testing.T, shipping, discount string) commands.CheckoutSessionRequest {
	t.Helper()
	mug, err := cart.NewLine("p1", "", "Mug", decimal.RequireFromString("12.35"), 2, "https://cdn.example.com/mug.jpg")
	require.NoError(t, err)
	poster, err := cart.NewLine("p2", "", "Print", decimal.RequireFromString("5"), 1, "/local/print.jpg")
	require.NoError(t, err)

	return commands.CheckoutSessionRequest{
		OrderID:       uuid.MustParse("0b6f7c7e-8d0a-4c59-9d2a-2d1f0f6b8d11"),
		OrderNumber:   "GC-1700000000000",
		CustomerEmail: "shopper@example.com",
		Lines:         []cart.Line{mug, poster},
		Breakdown: pricing.Breakdown{
			Shipping: decimal.RequireFromString(shipping),
			Discount: decimal.RequireFromString(discount),
		},
		DiscountCode: "WELCOME10",
	}
}

func TestMinorUnits(t *testing.T) {
	assert.EqualValues(t, 1235, minorUnits(decimal.RequireFromString("12.345")))
	assert.EqualValues(t, 599, minorUnits(decimal.RequireFromString("5.99")))
	assert.EqualValues(t, 0, minorUnits(decimal.Zero))
}

func TestCheckoutBackend_CreateSession(t *testing.T) {
	backend, fake := newBackend(t, http.StatusOK)

	session, err := backend.CreateSession(context.Background(), sessionRequest(t, "4.99", "0"))
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)
	assert.Equal(t, "cs_test_1", session.Reference)
	assert.Equal(t, order.PaymentMethodStripe, backend.Method())
	assert.Equal(t, []string{"/v1/checkout/sessions"}, fake.paths())

	form := fake.form("/v1/checkout/sessions")
	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
	assert.Equal(t, "https://shop.example.com/orders/0b6f7c7e-8d0a-4c59-9d2a-2d1f0f6b8d11?success=true", form.Get("success_url"))
	assert.Equal(t, "https://shop.example.com/checkout?canceled=true", form.Get("cancel_url"))
	assert.Equal(t, "0b6f7c7e-8d0a-4c59-9d2a-2d1f0f6b8d11", form.Get("metadata[orderId]"))
	assert.Equal(t, "GC-1700000000000", form.Get("metadata[orderNumber]"))
	assert.Equal(t, "shopper@example.com", form.Get("customer_email"))

	assert.Equal(t, "gbp", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "1235", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "2", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "https://cdn.example.com/mug.jpg", form.Get("line_items[0][price_data][product_data][images][0]"))
	assert.Empty(t, form.Get("line_items[1][price_data][product_data][images][0]"))
	assert.Equal(t, "Shipping", form.Get("line_items[2][price_data][product_data][name]"))
	assert.Equal(t, "499", form.Get("line_items[2][price_data][unit_amount]"))
	assert.Empty(t, form.Get("discounts[0][coupon]"))
}

func TestCheckoutBackend_CreateSession_FreeShippingWithDiscount(t *testing.T) {
	backend, fake := newBackend(t, http.StatusOK)

	_, err := backend.CreateSession(context.Background(), sessionRequest(t, "0", "2.97"))
	require.NoError(t, err)

	assert.Equal(t, []string{"/v1/coupons", "/v1/checkout/sessions"}, fake.paths())

	coupon := fake.form("/v1/coupons")
	assert.Equal(t, "297", coupon.Get("amount_off"))
	assert.Equal(t, "once", coupon.Get("duration"))
	assert.Equal(t, "1", coupon.Get("max_redemptions"))
	assert.Equal(t, "WELCOME10", coupon.Get("name"))

	form := fake.form("/v1/checkout/sessions")
	assert.Equal(t, "co_test_1", form.Get("discounts[0][coupon]"))
	assert.Empty(t, form.Get("line_items[2][price_data][product_data][name]"))
}

func TestCheckoutBackend_CreateSession_APIError(t *testing.T) {
	backend, _ := newBackend(t, http.StatusInternalServerError)

	session, err := backend.CreateSession(context.Background(), sessionRequest(t, "4.99", "0"))
	require.Error(t, err)
	assert.Nil(t, session)
}
