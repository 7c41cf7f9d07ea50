package discount

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Evaluation failures, checked in this order.
var (
	ErrCodeRequired    = errors.New("discount code is required")
	ErrInvalidCode     = errors.New("discount code is unknown or inactive")
	ErrCodeExpired     = errors.New("discount code is outside its validity window")
	ErrUsageLimit      = errors.New("discount code usage limit reached")
	ErrMinimumPurchase = errors.New("discount code minimum purchase not met")
)

type MinimumPurchaseError struct {
	Minimum decimal.Decimal
}

func (e *MinimumPurchaseError) Error() string {
	return fmt.Sprintf("discount code requires a minimum purchase of %s", e.Minimum.String())
}

func (e *MinimumPurchaseError) Is(target error) bool {
	return target == ErrMinimumPurchase
}

type DiscountCode struct {
	id          uuid.UUID
	code        Code
	kind        Type
	value       decimal.Decimal
	minPurchase *decimal.Decimal
	maxDiscount *decimal.Decimal
	validFrom   time.Time
	validUntil  time.Time
	usageLimit  *int32
	usedCount   int32
	isActive    bool
}

type Params struct {
	ID          uuid.UUID
	Code        string
	Type        string
	Value       decimal.Decimal
	MinPurchase *decimal.Decimal
	MaxDiscount *decimal.Decimal
	ValidFrom   time.Time
	ValidUntil  time.Time
	UsageLimit  *int32
	UsedCount   int32
	IsActive    bool
}

func NewDiscountCode(p Params) (*DiscountCode, error) {
	code, err := NewCode(p.Code)
	if err != nil {
		return nil, err
	}
	kind, err := NewType(p.Type)
	if err != nil {
		return nil, err
	}
	if p.Value.IsNegative() {
		return nil, ErrNegativeValue
	}
	if kind == TypePercentage && p.Value.GreaterThan(hundred) {
		return nil, ErrPercentageOutOfRange
	}
	if p.ValidUntil.Before(p.ValidFrom) {
		return nil, ErrInvalidWindow
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &DiscountCode{
		id:          id,
		code:        code,
		kind:        kind,
		value:       p.Value,
		minPurchase: p.MinPurchase,
		maxDiscount: p.MaxDiscount,
		validFrom:   p.ValidFrom,
		validUntil:  p.ValidUntil,
		usageLimit:  p.UsageLimit,
		usedCount:   p.UsedCount,
		isActive:    p.IsActive,
	}, nil
}

// Evaluate returns the discount amount for subtotal at now, or the first failing rule.
// It never changes usedCount.
func (d *DiscountCode) Evaluate(now time.Time, subtotal decimal.Decimal) (decimal.Decimal, error) {
	if !d.isActive {
		return decimal.Zero, ErrInvalidCode
	}
	if !d.IsWithinWindow(now) {
		return decimal.Zero, ErrCodeExpired
	}
	if d.IsExhausted() {
		return decimal.Zero, ErrUsageLimit
	}
	if d.minPurchase != nil && !d.minPurchase.IsZero() && subtotal.LessThan(*d.minPurchase) {
		return decimal.Zero, &MinimumPurchaseError{Minimum: *d.minPurchase}
	}
	return d.Amount(subtotal), nil
}

// Amount applies the rule without eligibility checks, rounded half-up to cents.
func (d *DiscountCode) Amount(subtotal decimal.Decimal) decimal.Decimal {
	if d.kind == TypeFixed {
		return d.value.Round(2)
	}

	amount := subtotal.Mul(d.value).Div(hundred)
	if d.maxDiscount != nil && !d.maxDiscount.IsZero() && amount.GreaterThan(*d.maxDiscount) {
		amount = *d.maxDiscount
	}
	return amount.Round(2)
}

// IsWithinWindow treats both bounds as inclusive.
func (d *DiscountCode) IsWithinWindow(now time.Time) bool {
	return !now.Before(d.validFrom) && !now.After(d.validUntil)
}

func (d *DiscountCode) IsExhausted() bool {
	return d.usageLimit != nil && *d.usageLimit > 0 && d.usedCount >= *d.usageLimit
}

func (d *DiscountCode) ID() uuid.UUID                 { return d.id }
func (d *DiscountCode) Code() Code                    { return d.code }
func (d *DiscountCode) Type() Type                    { return d.kind }
func (d *DiscountCode) Value() decimal.Decimal        { return d.value }
func (d *DiscountCode) MinPurchase() *decimal.Decimal { return d.minPurchase }
func (d *DiscountCode) MaxDiscount() *decimal.Decimal { return d.maxDiscount }
func (d *DiscountCode) ValidFrom() time.Time          { return d.validFrom }
func (d *DiscountCode) ValidUntil() time.Time         { return d.validUntil }
func (d *DiscountCode) UsageLimit() *int32            { return d.usageLimit }
func (d *DiscountCode) UsedCount() int32              { return d.usedCount }
func (d *DiscountCode) IsActive() bool                { return d.isActive }
