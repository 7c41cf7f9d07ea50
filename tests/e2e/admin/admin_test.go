//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	"gin-storefront/internal/domain/user"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/tests/common/authtest"
	"gin-storefront/tests/common/dbtest"
	"gin-storefront/tests/common/httptest"
	"gin-storefront/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	statsURL    = "/api/admin/stats"
	productsURL = "/api/admin/products"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) adminToken() string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

func (s *AdminSuite) insertOrder(userID uuid.UUID, number, total, paymentStatus string) {
	t := s.T()
	_, err := s.DB.Exec(t.Context(), `
		INSERT INTO orders (id, order_number, user_id, subtotal, shipping, total, shipping_address,
		                    payment_method, payment_status, payment_intent_id)
		VALUES ($1, $2, $3, $4, 0, $4, '{}'::jsonb, 'stripe', $5, 'cs_seed')`,
		uuid.New(), number, userID, total, paymentStatus)
	require.NoError(t, err)
}

func (s *AdminSuite) TestStats() {
	s.Run("Normal case: revenue counts paid orders only", func() {
		t := s.T()
		token := s.adminToken()
		shopper := dbtest.CreateTestUser(t, s.DB, "shopper@example.com", string(user.RoleCustomer))
		dbtest.CreateTestProduct(t, s.DB, dbtest.ProductFixture{Name: "Linen Shirt", Price: "29.99", Inventory: 1, Active: true})
		dbtest.CreateTestProduct(t, s.DB, dbtest.ProductFixture{Name: "Archived Hat", Price: "12.00", Active: false})
		s.insertOrder(shopper, "GC-1", "40.50", "paid")
		s.insertOrder(shopper, "GC-2", "19.49", "paid")
		s.insertOrder(shopper, "GC-3", "99.00", "pending")
		s.insertOrder(shopper, "GC-4", "10.00", "refunded")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, token)

		var res resdto.StatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, int64(2), res.TotalProducts)
		require.Equal(t, int64(4), res.TotalOrders)
		require.Equal(t, int64(2), res.TotalUsers)
		require.InDelta(t, 59.99, res.TotalRevenue, 0.001)
	})

	s.Run("Normal case: empty store", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, token)

		var res resdto.StatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, resdto.StatsResponse{TotalUsers: 1}, res)
	})

	s.Run("Error case: customers are refused", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("Error case: anonymous", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *AdminSuite) TestListProducts() {
	s.Run("Normal case: includes inactive products", func() {
		t := s.T()
		token := s.adminToken()
		dbtest.CreateTestProduct(t, s.DB, dbtest.ProductFixture{Name: "Linen Shirt", Price: "29.99", Inventory: 1, Active: true})
		dbtest.CreateTestProduct(t, s.DB, dbtest.ProductFixture{Name: "Archived Hat", Price: "12.00", Active: false})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil, token)

		var res resdto.ProductListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Products, 2)
		active := map[string]bool{}
		for _, p := range res.Products {
			active[p.Name] = p.IsActive
		}
		require.Equal(t, map[string]bool{"Linen Shirt": true, "Archived Hat": false}, active)
	})

	s.Run("Error case: customers are refused", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
	})
}
