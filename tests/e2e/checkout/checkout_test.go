//go:build e2e

package checkout_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/handler/dto/request"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/tests/common/authtest"
	"gin-storefront/tests/common/builder"
	"gin-storefront/tests/common/dbtest"
	"gin-storefront/tests/common/httptest"
	"gin-storefront/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	checkoutURL = "/api/checkout/create"
	validateURL = "/api/discount/validate"
	ordersURL   = "/api/orders"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) login() string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "shopper@example.com", string(user.RoleCustomer))
}

type storedOrder struct {
	Number        string
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Code          *string
	PaymentMethod string
	PaymentStatus string
	PaymentIntent string
	Items         int
}

func (s *CheckoutSuite) onlyOrder() storedOrder {
	t := s.T()
	var o storedOrder
	err := s.DB.QueryRow(t.Context(), `
		SELECT o.order_number, o.subtotal, o.shipping, o.discount, o.total, o.discount_code,
		       o.payment_method, o.payment_status, o.payment_intent_id,
		       (SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id)
		FROM orders o`).Scan(&o.Number, &o.Subtotal, &o.Shipping, &o.Discount, &o.Total, &o.Code,
		&o.PaymentMethod, &o.PaymentStatus, &o.PaymentIntent, &o.Items)
	require.NoError(t, err)
	return o
}

func (s *CheckoutSuite) orderCount() int {
	return dbtest.CountRows(s.T(), s.DB, "orders")
}

func (s *CheckoutSuite) TestValidateDiscount() {
	tests := []struct {
		name     string
		req      request.ValidateDiscountRequest
		valid    bool
		discount float64
		errMsg   string
	}{
		{name: "seeded welcome code", req: request.ValidateDiscountRequest{Code: "welcome10", Subtotal: decimal.RequireFromString("10")}, valid: true, discount: 1},
		{name: "percentage of larger cart", req: request.ValidateDiscountRequest{Code: "WELCOME10", Subtotal: decimal.RequireFromString("123.45")}, valid: true, discount: 12.35},
		{name: "unknown code", req: request.ValidateDiscountRequest{Code: "NOPE", Subtotal: decimal.RequireFromString("10")}, errMsg: "Invalid code"},
		{name: "blank code", req: request.ValidateDiscountRequest{Code: "  ", Subtotal: decimal.RequireFromString("10")}, errMsg: "Code is required"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, tt.req, "")

			var res resdto.ValidateDiscountResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				require.NotNil(t, res.Discount)
				require.InDelta(t, tt.discount, *res.Discount, 0.001)
				return
			}
			require.Nil(t, res.Discount)
			require.Equal(t, tt.errMsg, res.Error)
		})
	}

	s.Run("minimum purchase", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(), `
			INSERT INTO discount_codes (code, type, value, min_purchase, valid_from, valid_until)
			VALUES ('BIGSPEND', 'fixed', 15, 100, NOW() - INTERVAL '1 day', NOW() + INTERVAL '1 day')`)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL,
			request.ValidateDiscountRequest{Code: "BIGSPEND", Subtotal: decimal.RequireFromString("99.99")}, "")

		var res resdto.ValidateDiscountResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.False(t, res.Valid)
		require.Equal(t, "Minimum purchase of £100 required", res.Error)
	})

	s.Run("expired code", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(), `
			INSERT INTO discount_codes (code, type, value, valid_from, valid_until)
			VALUES ('SUMMER', 'percentage', 20, NOW() - INTERVAL '30 days', NOW() - INTERVAL '1 day')`)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL,
			request.ValidateDiscountRequest{Code: "SUMMER", Subtotal: decimal.RequireFromString("50")}, "")

		var res resdto.ValidateDiscountResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.False(t, res.Valid)
		require.Equal(t, "Code expired", res.Error)
	})
}

func (s *CheckoutSuite) TestCreate() {
	s.Run("Normal case: small cart with welcome code", func() {
		t := s.T()
		token := s.login()
		body := builder.NewCheckoutBuilder().
			WithOnlyItem("prod-1", "", "Enamel Mug", "10.00", 1).
			WithDiscountCode("welcome10").
			BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, token)

		var res resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		o := s.onlyOrder()
		require.Equal(t, "https://checkout.test/pay/"+o.Number, res.URL)
		require.True(t, o.Subtotal.Equal(decimal.RequireFromString("10")))
		require.True(t, o.Shipping.Equal(decimal.RequireFromString("4.99")))
		require.True(t, o.Discount.Equal(decimal.RequireFromString("1")))
		require.True(t, o.Total.Equal(decimal.RequireFromString("13.99")))
		require.NotNil(t, o.Code)
		require.Equal(t, "WELCOME10", *o.Code)
		require.Equal(t, "stripe", o.PaymentMethod)
		require.Equal(t, "pending", o.PaymentStatus)
		require.Equal(t, "cs_test_"+o.Number, o.PaymentIntent)
		require.Equal(t, 1, o.Items)
		require.Equal(t, int32(1), dbtest.DiscountUsedCount(t, s.DB, "WELCOME10"))

		sent := s.Checkout.Requests()
		require.Len(t, sent, 1)
		require.Equal(t, "shopper@example.com", sent[0].CustomerEmail)
		require.Equal(t, "WELCOME10", sent[0].DiscountCode)
	})

	s.Run("Normal case: free shipping from 50", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, builder.NewCheckoutBuilder().BuildDTO(), token)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		o := s.onlyOrder()
		require.True(t, o.Shipping.IsZero())
		require.True(t, o.Total.Equal(decimal.RequireFromString("60")))
		require.Nil(t, o.Code)
	})

	s.Run("Error case: code usage limit reached", func() {
		t := s.T()
		token := s.login()
		limit := int32(1)
		dbtest.CreateTestDiscount(t, s.DB, "ONCE", 10, &limit)
		body := builder.NewCheckoutBuilder().WithDiscountCode("ONCE").BuildDTO()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, token)
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, token)
		httptest.AssertErrorResponse(t, second, http.StatusBadRequest, "Code usage limit reached")
		require.Equal(t, int32(1), dbtest.DiscountUsedCount(t, s.DB, "ONCE"))
		require.Equal(t, 1, s.orderCount())
	})

	s.Run("Error case: provider refuses the cart", func() {
		t := s.T()
		token := s.login()
		s.Checkout.RejectWith("Card payments are unavailable")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL,
			builder.NewCheckoutBuilder().WithDiscountCode("WELCOME10").BuildDTO(), token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Card payments are unavailable")
		require.Zero(t, s.orderCount())
		require.Equal(t, int32(0), dbtest.DiscountUsedCount(t, s.DB, "WELCOME10"))
	})

	s.Run("Error case: invalid carts", func() {
		t := s.T()
		token := s.login()

		cases := map[string]request.CreateCheckoutRequest{
			"Cart is empty": builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
				b.Items = nil
			}).BuildDTO(),
			"Invalid cart item": builder.NewCheckoutBuilder().WithOnlyItem("prod-1", "", "Mug", "10.00", 0).BuildDTO(),
			"Shipping address is incomplete": builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
				b.Address.City = ""
			}).BuildDTO(),
			"Invalid code": builder.NewCheckoutBuilder().WithDiscountCode("NOPE").BuildDTO(),
		}
		for msg, body := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, token)
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, msg)
		}
		require.Zero(t, s.orderCount())
		require.Empty(t, s.Checkout.Requests())
	})

	s.Run("Error case: anonymous", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, builder.NewCheckoutBuilder().BuildDTO(), "")

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *CheckoutSuite) TestCreateIdempotency() {
	post := func(body any, key, token string) *nethttptest.ResponseRecorder {
		return httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, checkoutURL, body,
			map[string]string{"Idempotency-Key": key}, token)
	}

	s.Run("Normal case: retry with the same key replays the first session", func() {
		t := s.T()
		token := s.login()
		key := uuid.NewString()
		body := builder.NewCheckoutBuilder().WithDiscountCode("WELCOME10").BuildDTO()

		first := post(body, key, token)
		var firstRes resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, first, http.StatusOK, &firstRes)
		httptest.AssertHeaderAbsent(t, first, "Idempotent-Replayed")

		second := post(body, key, token)
		var secondRes resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, second, http.StatusOK, &secondRes)
		httptest.AssertHeaders(t, second, map[string]string{"Idempotent-Replayed": "true"})

		require.Equal(t, firstRes.URL, secondRes.URL)
		require.Equal(t, 1, s.orderCount())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "idempotency_keys"))
		require.Len(t, s.Checkout.Requests(), 1)
		require.Equal(t, int32(1), dbtest.DiscountUsedCount(t, s.DB, "WELCOME10"))
	})

	s.Run("Normal case: keys are scoped per customer", func() {
		t := s.T()
		key := uuid.NewString()
		body := builder.NewCheckoutBuilder().BuildDTO()

		w := post(body, key, s.login())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		other := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))
		w = post(body, key, other)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertHeaderAbsent(t, w, "Idempotent-Replayed")
		require.Equal(t, 2, s.orderCount())
	})

	s.Run("Normal case: a refused attempt frees the key for a retry", func() {
		t := s.T()
		token := s.login()
		key := uuid.NewString()
		body := builder.NewCheckoutBuilder().BuildDTO()

		s.Checkout.RejectWith("Card payments are unavailable")
		w := post(body, key, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Card payments are unavailable")
		require.Zero(t, dbtest.CountRows(t, s.DB, "idempotency_keys"))

		s.Checkout.RejectWith("")
		w = post(body, key, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertHeaderAbsent(t, w, "Idempotent-Replayed")
		require.Equal(t, 1, s.orderCount())
	})

	s.Run("Error case: same key with a different cart", func() {
		t := s.T()
		token := s.login()
		key := uuid.NewString()

		w := post(builder.NewCheckoutBuilder().BuildDTO(), key, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = post(builder.NewCheckoutBuilder().WithOnlyItem("prod-9", "", "Lamp", "80.00", 1).BuildDTO(), key, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Idempotency-Key was already used for a different cart")
		require.Equal(t, 1, s.orderCount())
	})

	s.Run("Error case: malformed key", func() {
		t := s.T()

		w := post(builder.NewCheckoutBuilder().BuildDTO(), "retry-1", s.login())

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid Idempotency-Key header")
		require.Zero(t, s.orderCount())
	})
}

func (s *CheckoutSuite) TestListOrders() {
	s.Run("Normal case: own orders with items, newest first", func() {
		t := s.T()
		token := s.login()
		for _, price := range []string{"12.00", "70.00"} {
			body := builder.NewCheckoutBuilder().WithOnlyItem("prod-"+price, "", "Item "+price, price, 1).BuildDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
		other := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, builder.NewCheckoutBuilder().BuildDTO(), other)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, token)

		var res resdto.OrderListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Orders, 2)
		require.InDelta(t, 70.0, res.Orders[0].Total, 0.001)
		require.InDelta(t, 16.99, res.Orders[1].Total, 0.001)
		require.Len(t, res.Orders[1].Items, 1)
		require.Equal(t, "Item 12.00", res.Orders[1].Items[0].Product.Name)
		require.Equal(t, "London", res.Orders[1].ShippingAddress.City)
	})

	s.Run("Normal case: no orders", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, token)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"orders":[]}`, w.Body.String())
	})

	s.Run("Error case: anonymous", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
	})
}
