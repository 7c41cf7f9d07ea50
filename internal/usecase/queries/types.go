package queries

import (
	"time"

	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID
	Email     string
	Role      string
	Name      string
	IsActive  bool
	LastLogin *time.Time
}

type ProfileView struct {
	ID             uuid.UUID
	Email          string
	Name           string
	Nickname       string
	Phone          string
	Location       string
	Preferences    string
	FavoriteStyles string
	Address        user.Address
}

type OrderItemView struct {
	ProductID string
	VariantID string
	Name      string
	Image     string
	Quantity  int
	Price     decimal.Decimal
}

type OrderView struct {
	ID              uuid.UUID
	OrderNumber     string
	Subtotal        decimal.Decimal
	Shipping        decimal.Decimal
	Tax             decimal.Decimal
	Discount        decimal.Decimal
	DiscountCode    string
	Total           decimal.Decimal
	ShippingAddress order.ShippingAddress
	PaymentMethod   string
	PaymentStatus   string
	Status          string
	CreatedAt       time.Time
	Items           []OrderItemView
}

type StatsView struct {
	TotalProducts int64
	TotalOrders   int64
	TotalUsers    int64
	TotalRevenue  decimal.Decimal
}
