package order

import (
	"errors"
	"time"

	"gin-storefront/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems            = errors.New("order requires at least one item")
	ErrMissingReference   = errors.New("order requires a checkout reference")
	ErrInvalidPayMethod   = errors.New("invalid payment method")
	ErrNegativeOrderTotal = errors.New("order total cannot be negative")
)

type Order struct {
	id              uuid.UUID
	orderNumber     string
	userID          uuid.UUID
	items           []LineItem
	subtotal        decimal.Decimal
	shipping        decimal.Decimal
	tax             decimal.Decimal
	discount        decimal.Decimal
	discountCode    string
	total           decimal.Decimal
	shippingAddress ShippingAddress
	paymentMethod   PaymentMethod
	paymentStatus   PaymentStatus
	status          Status
	paymentIntentID string
	createdAt       time.Time
	updatedAt       time.Time
}

// Draft is an order whose id and number exist before the checkout session does.
type Draft struct {
	ID          uuid.UUID
	OrderNumber string
	UserID      uuid.UUID
	Items       []LineItem
	Breakdown   pricing.Breakdown
	Code        string
	Address     ShippingAddress
	CreatedAt   time.Time
}

func NewDraft(userID uuid.UUID, items []LineItem, b pricing.Breakdown, code string, addr ShippingAddress, now time.Time) (Draft, error) {
	if len(items) == 0 {
		return Draft{}, ErrNoItems
	}
	if b.Total.IsNegative() {
		return Draft{}, ErrNegativeOrderTotal
	}
	if b.Discount.IsZero() {
		code = ""
	}
	return Draft{
		ID:          uuid.New(),
		OrderNumber: NewOrderNumber(now),
		UserID:      userID,
		Items:       items,
		Breakdown:   b,
		Code:        code,
		Address:     addr,
		CreatedAt:   now,
	}, nil
}

// Place turns a draft into a pending order once the checkout backend has issued a reference.
func (d Draft) Place(method PaymentMethod, reference string) (*Order, error) {
	if method != PaymentMethodStripe && method != PaymentMethodShopify {
		return nil, ErrInvalidPayMethod
	}
	if reference == "" {
		return nil, ErrMissingReference
	}
	return &Order{
		id:              d.ID,
		orderNumber:     d.OrderNumber,
		userID:          d.UserID,
		items:           d.Items,
		subtotal:        d.Breakdown.Subtotal,
		shipping:        d.Breakdown.Shipping,
		tax:             decimal.Zero,
		discount:        d.Breakdown.Discount,
		discountCode:    d.Code,
		total:           d.Breakdown.Total,
		shippingAddress: d.Address,
		paymentMethod:   method,
		paymentStatus:   PaymentPending,
		status:          StatusPending,
		paymentIntentID: reference,
		createdAt:       d.CreatedAt,
		updatedAt:       d.CreatedAt,
	}, nil
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) OrderNumber() string              { return o.orderNumber }
func (o *Order) UserID() uuid.UUID                { return o.userID }
func (o *Order) Items() []LineItem                { return o.items }
func (o *Order) Subtotal() decimal.Decimal        { return o.subtotal }
func (o *Order) Shipping() decimal.Decimal        { return o.shipping }
func (o *Order) Tax() decimal.Decimal             { return o.tax }
func (o *Order) Discount() decimal.Decimal        { return o.discount }
func (o *Order) DiscountCode() string             { return o.discountCode }
func (o *Order) Total() decimal.Decimal           { return o.total }
func (o *Order) ShippingAddress() ShippingAddress { return o.shippingAddress }
func (o *Order) PaymentMethod() PaymentMethod     { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus     { return o.paymentStatus }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) PaymentIntentID() string          { return o.paymentIntentID }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
